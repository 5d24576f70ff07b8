package httpapi

import (
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/server/admins"
	"github.com/dmitrijs2005/adminconsole/internal/server/services"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type verifyRequest struct {
	TempToken string `json:"temp_token" validate:"required"`
	OTPCode   string `json:"otp_code" validate:"required,len=6,numeric"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type adminResponse struct {
	AdminID    int64   `json:"adminId"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	TelegramID *string `json:"telegram_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type loginResponse struct {
	Requires2FA  bool           `json:"requires_2fa"`
	TempToken    *string        `json:"temp_token"`
	AccessToken  *string        `json:"access_token"`
	RefreshToken *string        `json:"refresh_token"`
	Admin        *adminResponse `json:"admin"`
	Message      string         `json:"message"`
}

type tokenResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
	Admin        *adminResponse `json:"admin"`
}

type sessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	Admin         *adminResponse `json:"admin"`
}

type messageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type reportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Count   int    `json:"count"`
}

func toAdminResponse(a *admins.Admin) *adminResponse {
	if a == nil {
		return nil
	}
	r := &adminResponse{
		AdminID:   a.ID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
	if a.TelegramID != "" {
		id := a.TelegramID
		r.TelegramID = &id
	}
	return r
}

func toTokenResponse(p *services.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(p.ExpiresIn / time.Second),
		Admin:        toAdminResponse(p.Admin),
	}
}
