package admins

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminconsole/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain password with bcrypt.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash []byte, password []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

// Seed creates the configured accounts in repo.
func Seed(ctx context.Context, repo Repository, seeds []config.SeedAdmin) error {
	for _, s := range seeds {
		hash, err := HashPassword(s.Password)
		if err != nil {
			return fmt.Errorf("hash password for %q: %w", s.Username, err)
		}
		_, err = repo.Create(ctx, &Admin{
			Username:     s.Username,
			PasswordHash: hash,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			TelegramID:   s.TelegramID,
		})
		if err != nil {
			return fmt.Errorf("seed admin %q: %w", s.Username, err)
		}
	}
	return nil
}
