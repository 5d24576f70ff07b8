// Package services contains the dev server's business logic. AuthService
// implements the login flow of the admin API: password check, optional
// Telegram one-time code, access/refresh token pair, refresh and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/dmitrijs2005/adminconsole/internal/server/admins"
	"github.com/dmitrijs2005/adminconsole/internal/server/auth"
	"github.com/dmitrijs2005/adminconsole/internal/server/config"
	"github.com/dmitrijs2005/adminconsole/internal/server/tfa"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidTempToken    = errors.New("temporary token is invalid or expired")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")
	ErrSessionNotFound     = errors.New("session not found, please log in")
	ErrAdminNotFound       = errors.New("admin not found")
)

// TokenPair is an issued access/refresh pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	Admin        *admins.Admin
}

// LoginResult holds TempToken when a one-time code was sent, Tokens otherwise.
type LoginResult struct {
	TempToken string
	Tokens    *TokenPair
}

func (r *LoginResult) RequiresTwoFactor() bool {
	return r.Tokens == nil
}

type AuthService struct {
	admins      admins.Repository
	codes       *tfa.Store
	sender      tfa.Sender
	revocations *auth.Revocations
	logger      logging.Logger

	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo admins.Repository, codes *tfa.Store, sender tfa.Sender, cfg *config.Config, l logging.Logger) *AuthService {
	return &AuthService{
		admins:      repo,
		codes:       codes,
		sender:      sender,
		revocations: auth.NewRevocations(),
		logger:      l.With("component", "auth_service"),
		secret:      []byte(cfg.SecretKey),
		accessTTL:   cfg.AccessTokenValidityDuration,
		refreshTTL:  cfg.RefreshTokenValidityDuration,
	}
}

// Login checks the password. Admins with a Telegram chat get a one-time code
// and a temporary token; everyone else gets a token pair right away.
func (s *AuthService) Login(ctx context.Context, username string, password []byte) (*LoginResult, error) {
	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, admins.ErrNotFound) {
			s.logger.Warn(ctx, "login for unknown admin", "username", username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !admins.CheckPassword(a.PasswordHash, password) {
		s.logger.Warn(ctx, "wrong password", "admin_id", a.ID)
		return nil, ErrInvalidCredentials
	}

	if !a.TwoFactorEnabled() {
		pair, err := s.issuePair(a)
		if err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "admin logged in", "admin_id", a.ID)
		return &LoginResult{Tokens: pair}, nil
	}

	code, err := s.codes.Issue(a.ID)
	if err != nil {
		return nil, err
	}
	if err := s.sender.Send(ctx, a.TelegramID, code); err != nil {
		s.logger.Error(ctx, "one-time code delivery failed", "admin_id", a.ID, "error", err)
		return nil, tfa.ErrDelivery
	}

	temp, err := auth.GenerateToken(a.ID, a.Username, auth.TokenTemp, s.secret, s.codes.TTL())
	if err != nil {
		return nil, fmt.Errorf("generate temp token: %w", err)
	}
	s.logger.Info(ctx, "one-time code sent", "admin_id", a.ID)
	return &LoginResult{TempToken: temp}, nil
}

// VerifyTwoFactor exchanges a temporary token and the matching code for a
// token pair. Code failures are the tfa package's errors.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, tempToken, code string) (*TokenPair, error) {
	claims, err := auth.ParseToken(tempToken, auth.TokenTemp, s.secret)
	if err != nil {
		return nil, ErrInvalidTempToken
	}
	id, err := claims.AdminID()
	if err != nil {
		return nil, ErrInvalidTempToken
	}

	if err := s.codes.Verify(id, code); err != nil {
		s.logger.Warn(ctx, "one-time code rejected", "admin_id", id, "error", err)
		return nil, err
	}

	a, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	s.logger.Info(ctx, "two-factor login confirmed", "admin_id", id)
	return s.issuePair(a)
}

// Refresh issues a new access token. The refresh token itself is returned
// unchanged and stays valid until it expires or the admin logs out.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, auth.TokenRefresh, s.secret)
	if err != nil || s.revocations.Revoked(claims.ID) {
		return nil, ErrInvalidRefreshToken
	}
	id, err := claims.AdminID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	a, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	access, err := auth.GenerateToken(a.ID, a.Username, auth.TokenAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refreshToken, ExpiresIn: s.accessTTL, Admin: a}, nil
}

// Authenticate resolves the admin behind an access token.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*admins.Admin, error) {
	if accessToken == "" {
		return nil, ErrSessionNotFound
	}
	claims, err := auth.ParseToken(accessToken, auth.TokenAccess, s.secret)
	if err != nil || s.revocations.Revoked(claims.ID) {
		return nil, ErrSessionNotFound
	}
	id, err := claims.AdminID()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	a, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return a, nil
}

// Logout revokes whichever of the given tokens are still valid. It never
// fails; unknown or expired tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) {
	if c, err := auth.ParseToken(accessToken, auth.TokenAccess, s.secret); err == nil {
		s.revocations.Revoke(c.ID, c.ExpiresAt.Time)
		s.logger.Info(ctx, "admin logged out", "admin_id", c.Subject)
	}
	if c, err := auth.ParseToken(refreshToken, auth.TokenRefresh, s.secret); err == nil {
		s.revocations.Revoke(c.ID, c.ExpiresAt.Time)
	}
}

func (s *AuthService) issuePair(a *admins.Admin) (*TokenPair, error) {
	access, err := auth.GenerateToken(a.ID, a.Username, auth.TokenAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := auth.GenerateToken(a.ID, a.Username, auth.TokenRefresh, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: s.accessTTL, Admin: a}, nil
}
