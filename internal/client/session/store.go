// Package session holds the console's authentication state.
//
// A Store is the single source of truth for the session status and the
// credentials needed to call protected endpoints. It is mutated only through
// its transition methods; every transition notifies subscribed observers
// synchronously, after the new state is committed, so dependents such as the
// route guard never observe a stale status. Concurrent transitions may reach
// observers in a different order than they were committed; observers that
// keep derived state compare Session.Generation and drop older snapshots.
package session

import (
	"sync"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// Observer receives the session snapshot produced by a transition.
type Observer func(models.Session)

// Store is a mutex-guarded session cell. The zero value is not usable; use New.
type Store struct {
	mu        sync.Mutex
	cur       models.Session
	gen       uint64
	observers map[int]Observer
	nextID    int
}

// New returns an anonymous store.
func New() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// Subscribe registers fn for every subsequent transition and returns a func
// that removes it.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Status returns the current status.
func (s *Store) Status() models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Status
}

// Loading reports whether the status is still being determined.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Loading
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Generation is incremented by every transition. Callers capture it before an
// asynchronous call and compare afterwards to detect superseded responses.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// BeginTwoFactor moves Anonymous -> PendingTwoFactor and stores tempToken.
func (s *Store) BeginTwoFactor(tempToken string) error {
	if tempToken == "" {
		return ErrEmptyToken
	}
	return s.transition(func(cur *models.Session) error {
		if cur.Status != models.StatusAnonymous {
			return &InvalidStateError{Op: "BeginTwoFactor", From: cur.Status}
		}
		cur.Status = models.StatusPendingTwoFactor
		cur.TempToken = tempToken
		return nil
	})
}

// CompleteAuthentication moves Anonymous or PendingTwoFactor -> Authenticated,
// clearing the temp token.
func (s *Store) CompleteAuthentication(accessToken, refreshToken string, account models.Admin) error {
	if accessToken == "" || refreshToken == "" {
		return ErrEmptyToken
	}
	return s.transition(func(cur *models.Session) error {
		if cur.Status == models.StatusAuthenticated {
			return &InvalidStateError{Op: "CompleteAuthentication", From: cur.Status}
		}
		acc := account
		cur.Status = models.StatusAuthenticated
		cur.TempToken = ""
		cur.AccessToken = accessToken
		cur.RefreshToken = refreshToken
		cur.Account = &acc
		return nil
	})
}

// RotateTokens replaces the token pair of an authenticated session.
func (s *Store) RotateTokens(accessToken, refreshToken string) error {
	if accessToken == "" || refreshToken == "" {
		return ErrEmptyToken
	}
	return s.transition(func(cur *models.Session) error {
		if cur.Status != models.StatusAuthenticated {
			return &InvalidStateError{Op: "RotateTokens", From: cur.Status}
		}
		cur.AccessToken = accessToken
		cur.RefreshToken = refreshToken
		return nil
	})
}

// Clear drops all tokens and the account. Allowed from any state.
func (s *Store) Clear() {
	_ = s.transition(func(cur *models.Session) error {
		*cur = models.Session{Loading: cur.Loading}
		return nil
	})
}

// SetLoading toggles the "status not yet determined" flag.
func (s *Store) SetLoading(loading bool) {
	_ = s.transition(func(cur *models.Session) error {
		cur.Loading = loading
		return nil
	})
}

func (s *Store) transition(apply func(cur *models.Session) error) error {
	s.mu.Lock()
	next := s.cur
	if err := apply(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cur = next
	s.gen++
	snap := s.snapshotLocked()
	observers := make([]Observer, 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return nil
}

func (s *Store) snapshotLocked() models.Session {
	snap := s.cur
	snap.Generation = s.gen
	if snap.Account != nil {
		acc := *snap.Account
		snap.Account = &acc
	}
	return snap
}
