package reconcile

import "sync"

// Guard makes each logical principal transition run at most once, no matter
// how many times the underlying trigger fires. It also keeps a separate
// once-per-process flag for the OAuth callback exchange.
type Guard struct {
	mu               sync.Mutex
	running          bool
	handledPrincipal string
	callbackConsumed bool
}

func NewGuard() *Guard {
	return &Guard{}
}

// Begin claims the transition for principalID. It returns false when a run
// is already in flight or when this principal was already fully handled.
func (g *Guard) Begin(principalID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return false
	}
	if g.handledPrincipal == principalID {
		return false
	}
	g.running = true
	return true
}

// Complete records the principal as handled and releases the run slot.
func (g *Guard) Complete(principalID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handledPrincipal = principalID
	g.running = false
}

// Abort releases the run slot without marking the principal handled, so the
// next trigger reprocesses it.
func (g *Guard) Abort() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = false
}

// Reset forgets the handled principal and the callback flag. Called on
// sign-out.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handledPrincipal = ""
	g.callbackConsumed = false
	g.running = false
}

// ConsumeCallback returns true exactly once until the next Reset, so a
// re-delivered OAuth callback is not exchanged twice.
func (g *Guard) ConsumeCallback() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.callbackConsumed {
		return false
	}
	g.callbackConsumed = true
	return true
}
