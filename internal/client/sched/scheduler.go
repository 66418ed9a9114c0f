// Package sched abstracts timers so time-driven behavior (debounce windows,
// periodic resync) can be driven deterministically in tests.
package sched

import "time"

// Scheduler schedules one-shot and repeating callbacks. After returns a
// cancel function; cancelling after the callback fired is a no-op. Every
// returns a stop function that halts further ticks.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
	Every(d time.Duration, fn func()) (stop func())
}

// TimerScheduler runs callbacks on real timers.
type TimerScheduler struct{}

var _ Scheduler = TimerScheduler{}

func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func (TimerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}
