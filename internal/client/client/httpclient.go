package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	opLogin        = "login"
	opVerify       = "verify2fa"
	opRefresh      = "refresh"
	opCheckSession = "check-session"
	opLogout       = "logout"
	opGet          = "get"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	maxErrorBody = 64 << 10
)

const (
	PathLogin        = "/auth/login"
	PathVerify2FA    = "/auth/2fa-verify"
	PathRefresh      = "/auth/refresh"
	PathCheckSession = "/auth/check-session"
	PathLogout       = "/auth/logout"
)

// HTTPClient talks JSON to the admin API. Each call is a single round trip;
// nothing is retried here.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for baseURL (e.g. https://host/api/v1).
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Requires2FA  bool          `json:"requires_2fa"`
	TempToken    string        `json:"temp_token"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Admin        *models.Admin `json:"admin"`
	Message      string        `json:"message"`
}

type verifyRequest struct {
	TempToken string `json:"temp_token"`
	OTPCode   string `json:"otp_code"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	Admin        *models.Admin `json:"admin"`
}

// the backend answers {"authenticated": ...}, the web types expect {"valid": ...}
type sessionCheckResponse struct {
	Valid         *bool         `json:"valid"`
	Authenticated *bool         `json:"authenticated"`
	Admin         *models.Admin `json:"admin"`
}

func (r *tokenResponse) result() *TokenResult {
	return &TokenResult{
		Tokens:    models.TokenPair{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken},
		TokenType: r.TokenType,
		ExpiresIn: r.ExpiresIn,
		Admin:     r.Admin,
	}
}

// Login submits credentials. A 2xx body either asks for a one-time code or
// carries the full token pair with the account.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*LoginResult, error) {
	var resp loginResponse
	req := loginRequest{Username: username, Password: string(password)}
	if err := c.do(ctx, opLogin, http.MethodPost, PathLogin, "", req, &resp); err != nil {
		return nil, err
	}

	switch {
	case resp.Requires2FA && resp.TempToken != "":
		return &LoginResult{TwoFactor: &TwoFactorRequired{TempToken: resp.TempToken, Message: resp.Message}}, nil
	case resp.AccessToken != "" && resp.RefreshToken != "" && resp.Admin != nil:
		tr := tokenResponse{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken, Admin: resp.Admin}
		return &LoginResult{Tokens: tr.result()}, nil
	default:
		return nil, &AuthError{Op: opLogin, Status: http.StatusOK, Message: "unexpected login response"}
	}
}

// VerifyTwoFactor exchanges the temp token and a 6-digit code for tokens.
// The code is expected to be validated by the caller.
func (c *HTTPClient) VerifyTwoFactor(ctx context.Context, tempToken, code string) (*TokenResult, error) {
	var resp tokenResponse
	req := verifyRequest{TempToken: tempToken, OTPCode: code}
	if err := c.do(ctx, opVerify, http.MethodPost, PathVerify2FA, "", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" || resp.Admin == nil {
		return nil, &AuthError{Op: opVerify, Status: http.StatusOK, Message: "unexpected verification response"}
	}
	return resp.result(), nil
}

// Refresh trades a refresh token for a new pair.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*TokenResult, error) {
	var resp tokenResponse
	if err := c.do(ctx, opRefresh, http.MethodPost, PathRefresh, "", refreshRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &AuthError{Op: opRefresh, Status: http.StatusOK, Message: "unexpected refresh response"}
	}
	if resp.RefreshToken == "" {
		resp.RefreshToken = refreshToken
	}
	return resp.result(), nil
}

// CheckSession asks the server whether accessToken still identifies a session.
func (c *HTTPClient) CheckSession(ctx context.Context, accessToken string) (*SessionCheck, error) {
	var resp sessionCheckResponse
	if err := c.do(ctx, opCheckSession, http.MethodGet, PathCheckSession, accessToken, nil, &resp); err != nil {
		return nil, err
	}
	valid := (resp.Valid != nil && *resp.Valid) || (resp.Authenticated != nil && *resp.Authenticated)
	return &SessionCheck{Valid: valid, Admin: resp.Admin}, nil
}

// Logout tells the server to end the session and revoke refreshToken.
func (c *HTTPClient) Logout(ctx context.Context, accessToken, refreshToken string) error {
	return c.do(ctx, opLogout, http.MethodPost, PathLogout, accessToken, refreshRequest{RefreshToken: refreshToken}, nil)
}

// Get performs a protected GET of path and decodes the JSON body into out.
func (c *HTTPClient) Get(ctx context.Context, path, accessToken string, out any) error {
	return c.do(ctx, opGet, http.MethodGet, path, accessToken, nil, out)
}

func (c *HTTPClient) do(ctx context.Context, op, method, path, accessToken string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeaderName, uuid.NewString())
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &AuthError{Op: op, Message: fallbackMessage(op), Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(op, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &AuthError{Op: op, Status: resp.StatusCode, Message: fallbackMessage(op), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func responseError(op string, resp *http.Response) error {
	ae := &AuthError{Op: op, Status: resp.StatusCode, Message: fallbackMessage(op)}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		ae.Err = ErrUnauthorized
	case resp.StatusCode >= 500:
		ae.Err = ErrUnavailable
	default:
		ae.Err = fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if msg := detailMessage(raw); msg != "" {
		ae.Message = msg
	}
	return ae
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

// detailMessage extracts "detail" from an error body. FastAPI sends either a
// string or a list of {loc,msg,type} items.
func detailMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []validationItem
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
