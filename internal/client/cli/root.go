package cli

import (
	"context"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

func (a *App) promptStatus() string {
	snap := a.auth.Session()
	switch snap.Status {
	case models.StatusAuthenticated:
		return "(" + snap.Account.Username + ")"
	case models.StatusPendingTwoFactor:
		return "(awaiting code)"
	default:
		return ""
	}
}

// Run restores the previous session and runs the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Gastro Analytics admin console (type 'help' for commands)")

	if err := a.auth.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
		a.println("Could not restore the previous session:", err)
	}
	if a.status() == models.StatusAuthenticated {
		a.welcome()
	}

	runREPL(ctx, a, a.promptStatus, a.reader, a.out)
}
