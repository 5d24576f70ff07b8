package models

// Status is the authentication state of the console session.
type Status int

const (
	StatusAnonymous Status = iota
	StatusPendingTwoFactor
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusPendingTwoFactor:
		return "pending-2fa"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a read-only copy of the session cell.
//
// Exactly one of the following holds, matching Status:
//   - Anonymous: no tokens, no account
//   - PendingTwoFactor: TempToken only
//   - Authenticated: AccessToken, RefreshToken and Account
type Session struct {
	Status       Status
	TempToken    string
	AccessToken  string
	RefreshToken string
	Account      *Admin
	Loading      bool

	// Generation is the store generation that produced this copy. Observers
	// may receive snapshots out of commit order; a lower Generation is older.
	Generation uint64
}

// Consistent reports whether the token fields match Status.
func (s Session) Consistent() bool {
	switch s.Status {
	case StatusAnonymous:
		return s.TempToken == "" && s.AccessToken == "" && s.RefreshToken == "" && s.Account == nil
	case StatusPendingTwoFactor:
		return s.TempToken != "" && s.AccessToken == "" && s.RefreshToken == "" && s.Account == nil
	case StatusAuthenticated:
		return s.TempToken == "" && s.AccessToken != "" && s.RefreshToken != "" && s.Account != nil
	default:
		return false
	}
}
