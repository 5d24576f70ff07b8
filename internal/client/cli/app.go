package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

// maxPasswordAttempts bounds how often login re-prompts for the password
// before giving up and returning to the prompt.
const maxPasswordAttempts = 3

type App struct {
	auth      services.AuthService
	analytics services.AnalyticsService
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(auth services.AuthService, analytics services.AnalyticsService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		auth:      auth,
		analytics: analytics,
		logger:    logger.With("component", "cli"),
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

func (a *App) status() models.Status {
	return a.auth.Session().Status
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints err the way the user should see it. Contract violations are
// logged at error level as well.
func (a *App) report(ctx context.Context, err error) {
	var (
		ve  *services.ValidationError
		ae  *client.AuthError
		ise *session.InvalidStateError
	)
	switch {
	case errors.As(err, &ve):
		names := make([]string, 0, len(ve.Fields))
		for name := range ve.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			a.println("  " + ve.Fields[name])
		}
	case errors.As(err, &ae):
		a.println("Error:", ae.Message)
	case errors.As(err, &ise):
		a.logger.Error(ctx, "invalid session transition", "op", ise.Op, "from", ise.From.String())
		a.println("Error:", err)
	case errors.Is(err, services.ErrNotAuthenticated):
		a.println("You are not logged in. Use 'login' first.")
	default:
		a.println("Error:", err)
	}
}
