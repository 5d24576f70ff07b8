package tokens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// MemoryRepository keeps the pair for the lifetime of the process. It backs
// consoles started without a token database.
type MemoryRepository struct {
	mu   sync.Mutex
	pair models.TokenPair
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(context.Context) (models.TokenPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pair, nil
}

func (r *MemoryRepository) Save(_ context.Context, pair models.TokenPair) error {
	r.mu.Lock()
	r.pair = pair
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Clear(context.Context) error {
	r.mu.Lock()
	r.pair = models.TokenPair{}
	r.mu.Unlock()
	return nil
}
