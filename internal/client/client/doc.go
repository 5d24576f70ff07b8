// Package client contains the network side of the admin console.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     admin auth endpoints: Login, VerifyTwoFactor, Refresh, CheckSession,
//     Logout, plus a generic protected Get used by analytics reads.
//  2. A JSON-over-HTTP implementation (see HTTPClient). It performs exactly one
//     round trip per call and never mutates session state; outcomes are
//     returned to the caller.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns *AuthError. Its Message is the server's "detail"
// text when present, otherwise a fixed fallback for the operation. The wrapped
// error can be matched with errors.Is against ErrUnauthorized (401/403) or
// ErrUnavailable (transport failure or 5xx).
package client
