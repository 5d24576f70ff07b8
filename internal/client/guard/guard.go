// Package guard decides whether a requested view may render for the current
// session.
//
// Three kinds of destination exist. Protected views need an authenticated
// session. The login view is public but bounces authenticated users to the
// landing page. The two-factor view is the one public page that a session
// waiting for its one-time code may reach; without a pending login it sends
// the user back to the login view.
//
// While the session status is still being determined every destination
// yields Loading and no navigation decision is made.
package guard

import (
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

const (
	LoginPath     = "/login"
	TwoFactorPath = "/2fa-verify"
	LandingPath   = "/dashboard"
)

// Kind classifies a destination.
type Kind int

const (
	KindProtected Kind = iota
	KindPublic
	KindTwoFactor
)

// Outcome is the guard's verdict for one navigation attempt.
type Outcome int

const (
	OutcomeLoading Outcome = iota
	OutcomeAllow
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeAllow:
		return "allow"
	case OutcomeRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// State is what the guard needs to know about the session.
type State struct {
	Status  models.Status
	Loading bool
}

// StateOf extracts the guard state from a session snapshot.
func StateOf(s models.Session) State {
	return State{Status: s.Status, Loading: s.Loading}
}

// Decision is the result of Decide. For redirects to the login view From holds
// the originally requested location so it can be restored after login.
type Decision struct {
	Outcome Outcome
	To      string
	From    string
}

// Classify maps a path to its destination kind. Anything unknown is protected.
func Classify(path string) Kind {
	switch strings.TrimRight(path, "/") {
	case LoginPath:
		return KindPublic
	case TwoFactorPath:
		return KindTwoFactor
	default:
		return KindProtected
	}
}

// Decide applies the decision tables to a navigation attempt for location
// (path plus optional query).
func Decide(location string, st State) Decision {
	if st.Loading {
		return Decision{Outcome: OutcomeLoading}
	}

	path := location
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	switch Classify(path) {
	case KindPublic:
		if st.Status == models.StatusAuthenticated {
			return Decision{Outcome: OutcomeRedirect, To: LandingPath}
		}
		return Decision{Outcome: OutcomeAllow}

	case KindTwoFactor:
		switch st.Status {
		case models.StatusAuthenticated:
			return Decision{Outcome: OutcomeRedirect, To: LandingPath}
		case models.StatusPendingTwoFactor:
			return Decision{Outcome: OutcomeAllow}
		default:
			return Decision{Outcome: OutcomeRedirect, To: LoginPath}
		}

	default:
		if st.Status == models.StatusAuthenticated {
			return Decision{Outcome: OutcomeAllow}
		}
		return Decision{Outcome: OutcomeRedirect, To: LoginPath, From: location}
	}
}

// AfterLogin returns where to go once authenticated: the recorded location
// if it is a protected local path, else the landing page.
func AfterLogin(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return LandingPath
	}
	path := from
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if Classify(path) != KindProtected {
		return LandingPath
	}
	return from
}
