package tokens

import (
	"context"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// Repository stores at most one token pair.
type Repository interface {
	Load(ctx context.Context) (models.TokenPair, error)
	Save(ctx context.Context, pair models.TokenPair) error
	Clear(ctx context.Context) error
}
