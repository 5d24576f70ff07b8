package client

import (
	"errors"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthError is returned by every failed gateway call. Message is the server's
// "detail" text when the response carried one, otherwise a fixed fallback for
// the operation.
type AuthError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the server rejected the credentials or token.
func (e *AuthError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsUnauthorized reports whether err is an AuthError for a rejected token.
func IsUnauthorized(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae) && ae.Unauthorized()
}

var fallbackMessages = map[string]string{
	opLogin:        "login failed",
	opVerify:       "two-factor verification failed",
	opRefresh:      "session refresh failed",
	opCheckSession: "session check failed",
	opLogout:       "logout failed",
	opGet:          "request failed",
}

func fallbackMessage(op string) string {
	if m, ok := fallbackMessages[op]; ok {
		return m
	}
	return "request failed"
}
