package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/dbx"
)

const (
	keyAccess  = "access_token"
	keyRefresh = "refresh_token"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load returns the stored pair. A missing or half-written pair loads as empty.
func (r *SQLiteRepository) Load(ctx context.Context) (models.TokenPair, error) {
	access, err := r.get(ctx, r.db, keyAccess)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := r.get(ctx, r.db, keyRefresh)
	if err != nil {
		return models.TokenPair{}, err
	}
	if access == "" || refresh == "" {
		return models.TokenPair{}, nil
	}
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Save replaces the stored pair in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, pair models.TokenPair) error {
	return dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.Querier) error {
		if err := r.set(ctx, tx, keyAccess, pair.AccessToken); err != nil {
			return err
		}
		return r.set(ctx, tx, keyRefresh, pair.RefreshToken)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tokens`); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) get(ctx context.Context, db dbx.Querier, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get tokens[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, db dbx.Querier, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tokens (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set tokens[%s]: %w", key, err)
	}
	return nil
}
