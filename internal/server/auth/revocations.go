package auth

import (
	"sync"
	"time"
)

// Revocations remembers token ids that must no longer be accepted. An entry is
// kept until the token it names would have expired anyway.
type Revocations struct {
	mu  sync.Mutex
	ids map[string]time.Time
	now func() time.Time
}

func NewRevocations() *Revocations {
	return &Revocations{ids: make(map[string]time.Time), now: time.Now}
}

func (r *Revocations) Revoke(id string, expiresAt time.Time) {
	if id == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[id] = expiresAt
	r.pruneLocked()
}

func (r *Revocations) Revoked(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

func (r *Revocations) pruneLocked() {
	now := r.now()
	for id, exp := range r.ids {
		if now.After(exp) {
			delete(r.ids, id)
		}
	}
}
