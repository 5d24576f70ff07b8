package client

import (
	"context"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// Client is the transport-agnostic contract of the admin API used by the
// console. Implementations never touch session state; they return outcomes
// the caller feeds into the session store.
type Client interface {
	Login(ctx context.Context, username string, password []byte) (*LoginResult, error)
	VerifyTwoFactor(ctx context.Context, tempToken, code string) (*TokenResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResult, error)
	CheckSession(ctx context.Context, accessToken string) (*SessionCheck, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	Get(ctx context.Context, path, accessToken string, out any) error
}

// TwoFactorRequired is the login outcome asking for a one-time code.
type TwoFactorRequired struct {
	TempToken string
	Message   string
}

// TokenResult is the outcome of a successful login, verification or refresh.
type TokenResult struct {
	Tokens    models.TokenPair
	TokenType string
	ExpiresIn int64
	Admin     *models.Admin
}

// LoginResult holds exactly one of TwoFactor or Tokens.
type LoginResult struct {
	TwoFactor *TwoFactorRequired
	Tokens    *TokenResult
}

// SessionCheck is the server's view of an access token.
type SessionCheck struct {
	Valid bool
	Admin *models.Admin
}
