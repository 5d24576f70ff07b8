package admins

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("admin not found")
	ErrAlreadyExists = errors.New("admin already exists")
)

type Repository interface {
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
}
