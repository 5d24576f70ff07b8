// Package admins stores the dev server's administrator accounts.
package admins

import "time"

type Admin struct {
	ID           int64
	Username     string
	PasswordHash []byte
	FirstName    string
	LastName     string
	TelegramID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TwoFactorEnabled reports whether a login must be confirmed with a code sent
// to the admin's Telegram chat.
func (a *Admin) TwoFactorEnabled() bool {
	return a.TelegramID != ""
}
