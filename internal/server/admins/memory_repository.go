package admins

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository keeps admins in process memory. Usernames are matched
// case-insensitively.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]Admin
	nextID int64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[int64]Admin), nextID: 1, now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, admin *Admin) (*Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findLocked(admin.Username); ok {
		return nil, ErrAlreadyExists
	}

	created := *admin
	created.ID = r.nextID
	created.CreatedAt = r.now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.byID[created.ID] = created

	return &created, nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.findLocked(username)
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) List(context.Context) ([]Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Admin, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) findLocked(username string) (Admin, bool) {
	for _, a := range r.byID {
		if strings.EqualFold(a.Username, username) {
			return a, true
		}
	}
	return Admin{}, false
}
