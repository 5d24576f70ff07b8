package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/guard"
)

// Open navigates to a route through the guard and shows the view the guard
// lets through.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: open <route>, e.g. open /dashboard")
		return nil
	}
	location := args[0]
	if !strings.HasPrefix(location, "/") {
		location = "/" + location
	}

	d := guard.Decide(location, a.auth.GuardState())
	switch d.Outcome {
	case guard.OutcomeLoading:
		a.println("Session is still loading, try again in a moment.")
		return nil

	case guard.OutcomeRedirect:
		a.println("Redirected to", d.To)
		if d.To == guard.LoginPath && d.From != "" {
			a.println("Log in to continue to", d.From)
		}
		location = d.To
	}

	return a.render(ctx, location)
}

func (a *App) render(ctx context.Context, location string) error {
	path := location
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	switch strings.TrimRight(path, "/") {
	case guard.LoginPath:
		a.println("Use 'login' to sign in.")
		return nil
	case guard.TwoFactorPath:
		a.println("Use 'verify <code>' to enter your one-time code, or 'cancel'.")
		return nil
	case guard.LandingPath:
		return a.KPIs(ctx)
	case "/analytics/products/top-revenue":
		return a.Top(ctx, nil)
	default:
		a.println("Nothing to show at", path)
		return nil
	}
}
