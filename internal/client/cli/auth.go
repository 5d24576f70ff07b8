package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/otp"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/shared"
)

// Login prompts for credentials and submits them. A rejected password is
// asked for again while the username is kept. When the account needs a
// one-time code the flow continues straight into Verify.
func (a *App) Login(ctx context.Context) error {
	switch snap := a.auth.Session(); snap.Status {
	case models.StatusAuthenticated:
		a.println("Already logged in as", snap.Account.DisplayName()+". Use 'logout' first.")
		return nil
	case models.StatusPendingTwoFactor:
		a.println("A login is waiting for its code. Use 'verify' or 'cancel'.")
		return nil
	}

	var username string
	for attempt := 0; attempt < maxPasswordAttempts; attempt++ {
		if username == "" {
			u, err := getSimpleText(a.reader, "Username", a.out)
			if err != nil {
				return err
			}
			username = u
		}

		password, err := getPassword(a.reader, a.out)
		if err != nil {
			return err
		}
		st, err := a.auth.SubmitLogin(ctx, username, password)
		shared.WipeByteArray(password)

		if err == nil {
			if st == models.StatusPendingTwoFactor {
				a.println("A 6-digit code was sent to your Telegram.")
				return a.Verify(ctx, nil)
			}
			a.welcome()
			return nil
		}

		a.report(ctx, err)

		var ve *services.ValidationError
		if errors.As(err, &ve) {
			if _, bad := ve.Fields["username"]; bad {
				username = ""
			}
			continue
		}
		var ae *client.AuthError
		if errors.As(err, &ae) {
			continue
		}
		return err
	}

	a.println("Too many attempts.")
	return nil
}

// Verify submits the one-time code given in args, or prompts for it. A
// rejected code resets the slots and asks again.
func (a *App) Verify(ctx context.Context, args []string) error {
	if a.status() != models.StatusPendingTwoFactor {
		a.println("No login is waiting for a code. Use 'login' first.")
		return nil
	}

	input := strings.Join(args, "")
	for attempt := 0; attempt < maxPasswordAttempts; attempt++ {
		if input == "" {
			s, err := getSimpleText(a.reader, "Enter the 6-digit code", a.out)
			if err != nil {
				return err
			}
			input = strings.ReplaceAll(s, " ", "")
		}

		if len(input) > otp.Length {
			a.printf("The code has %d digits, got %d characters.\n", otp.Length, len(input))
			input = ""
			continue
		}
		code, _ := otp.ParseCode(input)
		input = ""

		err := a.auth.SubmitTwoFactorCode(ctx, code.Assembled())
		if err == nil {
			a.welcome()
			return nil
		}
		a.report(ctx, err)
		code.Reset()

		var ve *services.ValidationError
		var ae *client.AuthError
		if !errors.As(err, &ve) && !errors.As(err, &ae) {
			return err
		}
		if a.status() != models.StatusPendingTwoFactor {
			return nil
		}
	}

	a.println("Too many attempts. Use 'verify' to try again or 'cancel' to start over.")
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.auth.CancelTwoFactor(); err != nil {
		a.report(ctx, err)
		return err
	}
	a.println("Login cancelled.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if a.status() == models.StatusAnonymous {
		a.println("Not logged in.")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		a.report(ctx, err)
		return err
	}
	a.println("Logged out.")
	return nil
}

// Status prints the session state and, when logged in, the account and the
// access token expiry.
func (a *App) Status(ctx context.Context) error {
	snap := a.auth.Session()
	a.println("Status:", snap.Status.String())
	if snap.Status != models.StatusAuthenticated {
		return nil
	}

	acc := snap.Account
	a.printf("Account: %s (@%s, id %d)\n", acc.DisplayName(), acc.Username, acc.AdminID)
	if acc.TwoFactorEnabled() {
		a.println("Two-factor: telegram")
	} else {
		a.println("Two-factor: off")
	}
	if exp, ok := client.TokenExpiry(snap.AccessToken); ok {
		a.printf("Access token expires: %s (in %s)\n", exp.Local().Format(time.RFC1123), time.Until(exp).Round(time.Second))
	}
	return nil
}

func (a *App) welcome() {
	snap := a.auth.Session()
	if snap.Account != nil {
		a.println("Welcome,", snap.Account.DisplayName()+"!")
	}
}
