// Package models defines client-side data models used by the admin console.
package models

import "strings"

// Admin is the identity record returned by the auth endpoints.
// Field names follow the wire format of the admin API.
type Admin struct {
	AdminID    int64  `json:"adminId"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	TelegramID string `json:"telegram_id"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// DisplayName returns "First Last", or the username when both are empty.
func (a *Admin) DisplayName() string {
	if a == nil {
		return ""
	}
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}

// TwoFactorEnabled reports whether the account has a linked Telegram chat.
func (a *Admin) TwoFactorEnabled() bool {
	return a != nil && a.TelegramID != "" && a.TelegramID != "0"
}
