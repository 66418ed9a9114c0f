// Package profiles holds the in-memory profile store. It is the single
// source of truth for the ordered profile list and the active selection;
// everything else (cache, remote) holds copies.
package profiles

import (
	"sync"

	"github.com/akozlovs/bizkeeper/internal/client/models"
)

// Snapshot is a point-in-time copy of the store contents.
type Snapshot struct {
	Profiles []models.Profile
	ActiveID string
}

// Active returns the active profile, if any.
func (s Snapshot) Active() (models.Profile, bool) {
	for _, p := range s.Profiles {
		if p.ID == s.ActiveID {
			return p, true
		}
	}
	return models.Profile{}, false
}

// Store keeps the ordered profile list and the active profile id. An empty
// ActiveID means no selection, which is only ever the case when the list
// itself is empty.
type Store struct {
	mu       sync.Mutex
	profiles []models.Profile
	activeID string

	subs []func(Snapshot)
}

func NewStore() *Store {
	return &Store{}
}

// Load returns a copy of the current contents.
func (s *Store) Load() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	out := make([]models.Profile, len(s.profiles))
	copy(out, s.profiles)
	return Snapshot{Profiles: out, ActiveID: s.activeID}
}

// Replace swaps in a new profile list. The requested active id is kept only
// if it is a member of the new list; otherwise the selection falls back to
// the first profile, or to none when the list is empty.
func (s *Store) Replace(list []models.Profile, activeID string) {
	s.mu.Lock()
	s.profiles = make([]models.Profile, len(list))
	copy(s.profiles, list)
	s.activeID = s.clampLocked(activeID)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// Upsert inserts p or, if a profile with the same id exists, replaces it in
// place preserving its position. A profile added to an empty store becomes
// active.
func (s *Store) Upsert(p models.Profile) {
	s.mu.Lock()
	replaced := false
	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.profiles = append(s.profiles, p)
	}
	s.activeID = s.clampLocked(s.activeID)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// Remove deletes the profile with the given id. If it was active, the
// selection moves to the first remaining profile.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			break
		}
	}
	s.activeID = s.clampLocked(s.activeID)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// SetActive selects the profile with the given id and reports whether the
// id was a member of the list. Unknown ids leave the selection unchanged.
func (s *Store) SetActive(id string) bool {
	s.mu.Lock()
	var ok bool
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			ok = true
			break
		}
	}
	if ok {
		s.activeID = id
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	if ok {
		s.notify(snap)
	}
	return ok
}

// ActiveID returns the current selection, or "" when the store is empty.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Clear empties the store.
func (s *Store) Clear() {
	s.Replace(nil, "")
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// Callbacks run on the mutating goroutine and must not call back into the
// store.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Store) clampLocked(want string) string {
	if len(s.profiles) == 0 {
		return ""
	}
	for i := range s.profiles {
		if s.profiles[i].ID == want {
			return want
		}
	}
	return s.profiles[0].ID
}
