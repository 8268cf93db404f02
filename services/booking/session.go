package booking

import (
	"sync"
	"time"
)

// SessionKey identifies one in-progress reservation flow.
type SessionKey struct {
	ChannelLogID string
	UserID       string
}

// Selection holds the dropdown values a user has picked so far. The three
// fields are independently settable and order-independent; submit requires
// all of them.
type Selection struct {
	Room      string
	Start     string
	End       string
	UpdatedAt time.Time
}

// Complete reports whether every selector has a value.
func (s Selection) Complete() bool {
	return s.Room != "" && s.Start != "" && s.End != ""
}

// SessionStore is the per-(conversation, user) map of in-progress selections.
// The full read-modify-write of Set runs under one lock so two near-
// simultaneous updates to different fields of the same key are both retained.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[SessionKey]Selection
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[SessionKey]Selection),
		now:      time.Now,
	}
}

// Set upserts the entry for key and overwrites exactly the named field.
// Unknown field names only refresh the timestamp.
func (s *SessionStore) Set(key SessionKey, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.sessions[key]
	switch field {
	case "room":
		sel.Room = value
	case "start":
		sel.Start = value
	case "end":
		sel.End = value
	}
	sel.UpdatedAt = s.now()
	s.sessions[key] = sel
}

// Get returns the current selection for key, or the zero value when absent.
func (s *SessionStore) Get(key SessionKey) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[key]
}

// Sweep evicts entries not updated within maxAge and returns how many were
// removed. Wired to a periodic scheduler; without it the map grows for the
// process lifetime.
func (s *SessionStore) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	evicted := 0
	for key, sel := range s.sessions {
		if sel.UpdatedAt.Before(cutoff) {
			delete(s.sessions, key)
			evicted++
		}
	}
	return evicted
}
