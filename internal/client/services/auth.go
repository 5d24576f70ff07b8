// Package services contains application services for the admin console.
// This file defines the authentication controller: it validates input, calls
// the auth gateway, and feeds the outcomes into the session store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/guard"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

// AuthService is the only entry point presentation code uses to change the
// session.
//
// Contract:
//   - SubmitLogin: validate credentials, log in, move to PendingTwoFactor or
//     Authenticated.
//   - SubmitTwoFactorCode: validate the code, verify it, move to Authenticated.
//   - CancelTwoFactor: abandon a pending login.
//   - Logout: end the session on the server (best effort) and locally.
//   - Restore: rebuild the session from stored tokens at startup.
//
// Validation failures return *ValidationError without any network call.
// Gateway failures return *client.AuthError and leave the session untouched.
type AuthService interface {
	SubmitLogin(ctx context.Context, username string, password []byte) (models.Status, error)
	SubmitTwoFactorCode(ctx context.Context, code string) error
	CancelTwoFactor() error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Session() models.Session
	GuardState() guard.State
}

type authService struct {
	client client.Client
	store  *session.Store
	tokens tokens.Repository
	logger logging.Logger

	submitting atomic.Bool

	mu               sync.Mutex
	persisted        models.TokenPair
	wasAuthenticated bool
	persistedGen     uint64
}

// NewAuthService wires the controller and subscribes it to store so the token
// pair is persisted whenever the session gains or loses its tokens.
func NewAuthService(c client.Client, store *session.Store, repo tokens.Repository, logger logging.Logger) AuthService {
	a := &authService{
		client: c,
		store:  store,
		tokens: repo,
		logger: logger.With("component", "auth"),
	}
	store.Subscribe(a.persist)
	return a
}

func (a *authService) Session() models.Session {
	return a.store.Snapshot()
}

func (a *authService) GuardState() guard.State {
	return guard.StateOf(a.store.Snapshot())
}

// SubmitLogin returns the resulting status. The caller owns password and
// should wipe it afterwards.
func (a *authService) SubmitLogin(ctx context.Context, username string, password []byte) (models.Status, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return a.store.Status(), err
	}

	if !a.submitting.CompareAndSwap(false, true) {
		return a.store.Status(), ErrSubmitInProgress
	}
	defer a.submitting.Store(false)

	if st := a.store.Status(); st != models.StatusAnonymous {
		return st, &session.InvalidStateError{Op: "SubmitLogin", From: st}
	}

	gen := a.store.Generation()
	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "username", username, "error", err)
		return a.store.Status(), err
	}
	if a.store.Generation() != gen {
		return a.store.Status(), ErrStale
	}

	if res.TwoFactor != nil {
		err = a.store.BeginTwoFactor(res.TwoFactor.TempToken)
	} else {
		err = a.store.CompleteAuthentication(res.Tokens.Tokens.AccessToken, res.Tokens.Tokens.RefreshToken, *res.Tokens.Admin)
	}
	if err != nil {
		a.logger.Error(ctx, "login transition rejected", "error", err)
		return a.store.Status(), err
	}

	st := a.store.Status()
	a.logger.Info(ctx, "login accepted", "username", username, "status", st.String())
	return st, nil
}

func (a *authService) SubmitTwoFactorCode(ctx context.Context, code string) error {
	if err := validateCode(code); err != nil {
		return err
	}

	if !a.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer a.submitting.Store(false)

	snap := a.store.Snapshot()
	if snap.Status != models.StatusPendingTwoFactor {
		return &session.InvalidStateError{Op: "SubmitTwoFactorCode", From: snap.Status}
	}

	gen := a.store.Generation()
	res, err := a.client.VerifyTwoFactor(ctx, snap.TempToken, code)
	if err != nil {
		a.logger.Warn(ctx, "two-factor verification failed", "error", err)
		return err
	}
	if a.store.Generation() != gen {
		return ErrStale
	}

	if err := a.store.CompleteAuthentication(res.Tokens.AccessToken, res.Tokens.RefreshToken, *res.Admin); err != nil {
		a.logger.Error(ctx, "verification transition rejected", "error", err)
		return err
	}
	a.logger.Info(ctx, "two-factor verification accepted", "admin_id", res.Admin.AdminID)
	return nil
}

func (a *authService) CancelTwoFactor() error {
	if st := a.store.Status(); st != models.StatusPendingTwoFactor {
		return &session.InvalidStateError{Op: "CancelTwoFactor", From: st}
	}
	a.store.Clear()
	return nil
}

// Logout always ends the local session, even when the server call fails.
func (a *authService) Logout(ctx context.Context) error {
	snap := a.store.Snapshot()
	if snap.Status == models.StatusAuthenticated {
		if err := a.client.Logout(ctx, snap.AccessToken, snap.RefreshToken); err != nil {
			a.logger.Warn(ctx, "server logout failed", "error", err)
		}
	}
	a.store.Clear()
	a.logger.Info(ctx, "logged out")
	return nil
}

// Restore marks the session as loading, then validates stored tokens with the
// server. A rejected pair is refreshed once; if that fails too the pair is
// dropped. Transport failures keep the stored pair for the next start.
func (a *authService) Restore(ctx context.Context) error {
	a.store.SetLoading(true)
	defer a.store.SetLoading(false)

	if a.store.Status() != models.StatusAnonymous {
		return nil
	}

	pair, err := a.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored tokens: %w", err)
	}
	if pair.Empty() {
		return nil
	}
	a.mu.Lock()
	a.persisted = pair
	a.mu.Unlock()

	admin, err := a.checkSession(ctx, pair.AccessToken)
	if err != nil && !client.IsUnauthorized(err) {
		return err
	}
	if admin == nil {
		pair, admin, err = a.refreshStored(ctx, pair.RefreshToken)
		if err != nil && !rejected(err) {
			return err
		}
	}
	if admin == nil {
		a.logger.Info(ctx, "stored session expired")
		return a.dropStored(ctx)
	}

	if err := a.store.CompleteAuthentication(pair.AccessToken, pair.RefreshToken, *admin); err != nil {
		return err
	}
	a.logger.Info(ctx, "session restored", "username", admin.Username)
	return nil
}

func (a *authService) checkSession(ctx context.Context, accessToken string) (*models.Admin, error) {
	check, err := a.client.CheckSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if !check.Valid || check.Admin == nil {
		return nil, nil
	}
	return check.Admin, nil
}

func (a *authService) refreshStored(ctx context.Context, refreshToken string) (models.TokenPair, *models.Admin, error) {
	res, err := a.client.Refresh(ctx, refreshToken)
	if err != nil {
		return models.TokenPair{}, nil, err
	}
	admin := res.Admin
	if admin == nil {
		admin, err = a.checkSession(ctx, res.Tokens.AccessToken)
		if err != nil {
			return models.TokenPair{}, nil, err
		}
	}
	return res.Tokens, admin, nil
}

func (a *authService) dropStored(ctx context.Context) error {
	a.mu.Lock()
	a.persisted = models.TokenPair{}
	a.mu.Unlock()
	return a.tokens.Clear(ctx)
}

// persist mirrors the session's token pair into the repository. It runs
// synchronously inside every store transition. A snapshot older than the last
// one handled is ignored, so a late Authenticated snapshot cannot resurrect a
// pair that a later Clear removed.
func (a *authService) persist(snap models.Session) {
	ctx := context.Background()

	a.mu.Lock()
	defer a.mu.Unlock()

	if snap.Generation <= a.persistedGen {
		return
	}
	a.persistedGen = snap.Generation

	authenticated := snap.Status == models.StatusAuthenticated
	defer func() { a.wasAuthenticated = authenticated }()

	switch {
	case authenticated:
		pair := models.TokenPair{AccessToken: snap.AccessToken, RefreshToken: snap.RefreshToken}
		if pair == a.persisted {
			return
		}
		if err := a.tokens.Save(ctx, pair); err != nil {
			a.logger.Warn(ctx, "saving tokens failed", "error", err)
			return
		}
		a.persisted = pair

	case a.wasAuthenticated:
		if err := a.tokens.Clear(ctx); err != nil {
			a.logger.Warn(ctx, "clearing tokens failed", "error", err)
			return
		}
		a.persisted = models.TokenPair{}
	}
}

// rejected reports whether the server answered and refused the request, as
// opposed to being unreachable.
func rejected(err error) bool {
	var ae *client.AuthError
	return errors.As(err, &ae) && ae.Status != 0 && ae.Status < 500
}
