package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	status() models.Status
	Login(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Cancel(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	KPIs(ctx context.Context) error
	Top(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. The prompt shows statusFn(). Handlers print their own
// errors, so returned errors are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "admin %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText(a.status()))

		case "login":
			_ = a.Login(ctx)

		case "verify":
			_ = a.Verify(ctx, args)

		case "cancel":
			_ = a.Cancel(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "kpis":
			_ = a.KPIs(ctx)

		case "top":
			_ = a.Top(ctx, args)

		case "open":
			_ = a.Open(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func helpText(st models.Status) string {
	switch st {
	case models.StatusAuthenticated:
		return "Available commands: kpis, top [n], open <route>, status, logout, exit"
	case models.StatusPendingTwoFactor:
		return "Available commands: verify [code], cancel, status, exit"
	default:
		return "Available commands: login, open <route>, status, exit"
	}
}
