package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/dmitrijs2005/adminconsole/internal/server/admins"
	"github.com/dmitrijs2005/adminconsole/internal/server/auth"
	"github.com/dmitrijs2005/adminconsole/internal/server/config"
	"github.com/dmitrijs2005/adminconsole/internal/server/tfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeSender struct {
	chatID string
	code   string
	err    error
}

func (f *fakeSender) Send(_ context.Context, chatID, code string) error {
	f.chatID, f.code = chatID, code
	return f.err
}

func newTestService(t *testing.T) (*AuthService, *fakeSender) {
	t.Helper()
	ctx := context.Background()

	repo := admins.NewMemoryRepository()
	require.NoError(t, admins.Seed(ctx, repo, []config.SeedAdmin{
		{Username: "admin", Password: "admin123", FirstName: "Ali", TelegramID: "100"},
		{Username: "viewer", Password: "viewer123"},
	}))

	cfg := &config.Config{
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	sender := &fakeSender{}
	return NewAuthService(repo, tfa.NewStore(time.Minute), sender, cfg, logging.Discard()), sender
}

func TestLogin_WithoutTwoFactor(t *testing.T) {
	s, sender := newTestService(t)

	res, err := s.Login(context.Background(), "viewer", []byte("viewer123"))
	require.NoError(t, err)
	assert.False(t, res.RequiresTwoFactor())
	assert.Empty(t, sender.code)
	assert.Equal(t, "viewer", res.Tokens.Admin.Username)
	assert.Equal(t, time.Minute, res.Tokens.ExpiresIn)

	_, err = auth.ParseToken(res.Tokens.AccessToken, auth.TokenAccess, []byte(testSecret))
	assert.NoError(t, err)
	_, err = auth.ParseToken(res.Tokens.RefreshToken, auth.TokenRefresh, []byte(testSecret))
	assert.NoError(t, err)
}

func TestLogin_BadCredentials(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Login(context.Background(), "viewer", []byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(context.Background(), "ghost", []byte("viewer123"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TwoFactorFlow(t *testing.T) {
	ctx := context.Background()
	s, sender := newTestService(t)

	res, err := s.Login(ctx, "admin", []byte("admin123"))
	require.NoError(t, err)
	require.True(t, res.RequiresTwoFactor())
	assert.Equal(t, "100", sender.chatID)
	assert.Len(t, sender.code, tfa.CodeLength)

	wrong := "000000"
	if sender.code == wrong {
		wrong = "111111"
	}
	_, err = s.VerifyTwoFactor(ctx, res.TempToken, wrong)
	var wce *tfa.WrongCodeError
	require.ErrorAs(t, err, &wce)
	assert.Equal(t, 2, wce.Remaining)

	pair, err := s.VerifyTwoFactor(ctx, res.TempToken, sender.code)
	require.NoError(t, err)
	assert.Equal(t, "admin", pair.Admin.Username)

	_, err = s.VerifyTwoFactor(ctx, res.TempToken, sender.code)
	assert.ErrorIs(t, err, tfa.ErrCodeNotFound)
}

func TestLogin_DeliveryFailure(t *testing.T) {
	s, sender := newTestService(t)
	sender.err = errors.New("bot down")

	_, err := s.Login(context.Background(), "admin", []byte("admin123"))
	assert.ErrorIs(t, err, tfa.ErrDelivery)
}

func TestVerifyTwoFactor_RejectsOtherTokenTypes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	res, err := s.Login(ctx, "viewer", []byte("viewer123"))
	require.NoError(t, err)

	_, err = s.VerifyTwoFactor(ctx, res.Tokens.AccessToken, "123456")
	assert.ErrorIs(t, err, ErrInvalidTempToken)
	_, err = s.VerifyTwoFactor(ctx, "garbage", "123456")
	assert.ErrorIs(t, err, ErrInvalidTempToken)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	res, err := s.Login(ctx, "viewer", []byte("viewer123"))
	require.NoError(t, err)

	pair, err := s.Refresh(ctx, res.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, res.Tokens.RefreshToken, pair.RefreshToken)
	assert.NotEqual(t, res.Tokens.AccessToken, pair.AccessToken)

	_, err = s.Refresh(ctx, res.Tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthenticateAndLogout(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	res, err := s.Login(ctx, "viewer", []byte("viewer123"))
	require.NoError(t, err)

	a, err := s.Authenticate(ctx, res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "viewer", a.Username)

	_, err = s.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s.Logout(ctx, res.Tokens.AccessToken, res.Tokens.RefreshToken)
	s.Logout(ctx, "junk", "")

	_, err = s.Authenticate(ctx, res.Tokens.AccessToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Refresh(ctx, res.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
