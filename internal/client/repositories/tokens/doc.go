// Package tokens persists the console's current token pair in a local SQLite
// key/value table so a restarted console can restore its session.
//
// Schema
//
//	CREATE TABLE tokens (
//	  key   TEXT PRIMARY KEY,
//	  value TEXT NOT NULL
//	);
//
// Only the access and refresh tokens are stored. The temp token of a pending
// two-factor login and the account record are never written.
package tokens
