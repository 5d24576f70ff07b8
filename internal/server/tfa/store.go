// Package tfa issues and checks the one-time codes that confirm a login for
// admins with two-factor authentication enabled.
package tfa

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/shared"
)

const (
	CodeLength  = 6
	MaxAttempts = 3
)

var (
	ErrCodeNotFound    = errors.New("one-time code not found, log in again")
	ErrCodeExpired     = errors.New("one-time code expired, log in again")
	ErrTooManyAttempts = errors.New("too many wrong attempts, log in again")
)

// WrongCodeError reports a mismatching code that still leaves attempts.
type WrongCodeError struct {
	Remaining int
}

func (e *WrongCodeError) Error() string {
	return fmt.Sprintf("wrong one-time code, %d attempts left", e.Remaining)
}

type entry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// Store keeps at most one pending code per admin. Issuing a new code replaces
// the previous one.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
	ttl     time.Duration
	now     func() time.Time
	newCode func() (string, error)
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[int64]*entry),
		ttl:     ttl,
		now:     time.Now,
		newCode: func() (string, error) { return shared.MakeRandDigits(CodeLength) },
	}
}

// TTL is how long an issued code stays valid.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Issue(adminID int64) (string, error) {
	code, err := s.newCode()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[adminID] = &entry{code: code, expiresAt: s.now().Add(s.ttl)}
	return code, nil
}

// Verify consumes the admin's code on success. An expired code or one that
// has used up its attempts is dropped and the admin has to log in again.
func (s *Store) Verify(adminID int64, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[adminID]
	if !ok {
		return ErrCodeNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, adminID)
		return ErrCodeExpired
	}
	if e.attempts >= MaxAttempts {
		delete(s.entries, adminID)
		return ErrTooManyAttempts
	}
	if e.code != code {
		e.attempts++
		return &WrongCodeError{Remaining: MaxAttempts - e.attempts}
	}

	delete(s.entries, adminID)
	return nil
}

// Cleanup drops expired codes and returns how many were removed.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}
