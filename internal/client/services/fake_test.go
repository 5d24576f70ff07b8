package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// fakeClient implements client.Client and records every call.
type fakeClient struct {
	loginRes *client.LoginResult
	loginErr error

	verifyRes *client.TokenResult
	verifyErr error

	refreshRes *client.TokenResult
	refreshErr error

	checkRes *client.SessionCheck
	checkErr error

	logoutErr error

	// getErrs is consumed one per Get call; getBody is copied into out on success
	getErrs []error
	getBody func(out any)

	loginCalls, verifyCalls, refreshCalls, checkCalls, logoutCalls, getCalls int

	lastUsername     string
	lastPassword     string
	lastTempToken    string
	lastCode         string
	lastRefreshToken string
	getTokens        []string
	checkTokens      []string
	logoutTokens     []string

	// onLogin runs inside Login, before it returns
	onLogin func()
}

func (f *fakeClient) Login(_ context.Context, username string, password []byte) (*client.LoginResult, error) {
	f.loginCalls++
	f.lastUsername, f.lastPassword = username, string(password)
	if f.onLogin != nil {
		f.onLogin()
	}
	return f.loginRes, f.loginErr
}

func (f *fakeClient) VerifyTwoFactor(_ context.Context, tempToken, code string) (*client.TokenResult, error) {
	f.verifyCalls++
	f.lastTempToken, f.lastCode = tempToken, code
	return f.verifyRes, f.verifyErr
}

func (f *fakeClient) Refresh(_ context.Context, refreshToken string) (*client.TokenResult, error) {
	f.refreshCalls++
	f.lastRefreshToken = refreshToken
	return f.refreshRes, f.refreshErr
}

func (f *fakeClient) CheckSession(_ context.Context, accessToken string) (*client.SessionCheck, error) {
	f.checkCalls++
	f.checkTokens = append(f.checkTokens, accessToken)
	return f.checkRes, f.checkErr
}

func (f *fakeClient) Logout(_ context.Context, accessToken, refreshToken string) error {
	f.logoutCalls++
	f.logoutTokens = append(f.logoutTokens, accessToken, refreshToken)
	return f.logoutErr
}

func (f *fakeClient) Get(_ context.Context, _ string, accessToken string, out any) error {
	f.getCalls++
	f.getTokens = append(f.getTokens, accessToken)
	if len(f.getErrs) > 0 {
		err := f.getErrs[0]
		f.getErrs = f.getErrs[1:]
		if err != nil {
			return err
		}
	}
	if f.getBody != nil {
		f.getBody(out)
	}
	return nil
}

var alice = models.Admin{AdminID: 1, Username: "alice", FirstName: "Alice", TelegramID: "42"}

func tokenResult(access, refresh string) *client.TokenResult {
	admin := alice
	return &client.TokenResult{
		Tokens: models.TokenPair{AccessToken: access, RefreshToken: refresh},
		Admin:  &admin,
	}
}

func authErr(status int, msg string) error {
	ae := &client.AuthError{Status: status, Message: msg}
	if status == http.StatusUnauthorized {
		ae.Err = client.ErrUnauthorized
	}
	return ae
}
