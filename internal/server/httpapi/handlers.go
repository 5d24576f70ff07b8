package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/adminconsole/internal/server/analytics"
	"github.com/dmitrijs2005/adminconsole/internal/server/services"
	"github.com/dmitrijs2005/adminconsole/internal/server/tfa"
	"github.com/dmitrijs2005/adminconsole/internal/shared"
	"github.com/goccy/go-json"
)

const msgInternal = "internal server error"

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer shared.WipeByteArray(password)

	res, err := s.auth.Login(r.Context(), req.Username, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, tfa.ErrDelivery):
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, err.Error())
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	if res.RequiresTwoFactor() {
		writeJSON(w, http.StatusOK, loginResponse{
			Requires2FA: true,
			TempToken:   &res.TempToken,
			Message:     "one-time code sent via Telegram",
		})
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:  &res.Tokens.AccessToken,
		RefreshToken: &res.Tokens.RefreshToken,
		Admin:        toAdminResponse(res.Tokens.Admin),
		Message:      "login successful",
	})
}

func (s *Server) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := s.auth.VerifyTwoFactor(r.Context(), req.TempToken, req.OTPCode)
	if err != nil {
		var wrong *tfa.WrongCodeError
		switch {
		case errors.Is(err, services.ErrInvalidTempToken), errors.Is(err, tfa.ErrCodeExpired):
			writeDetail(w, http.StatusUnauthorized, err.Error())
		case errors.As(err, &wrong),
			errors.Is(err, tfa.ErrCodeNotFound),
			errors.Is(err, tfa.ErrTooManyAttempts),
			errors.Is(err, services.ErrAdminNotFound):
			writeDetail(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error(r.Context(), "two-factor verification failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}
	writeJSON(w, http.StatusOK, toTokenResponse(pair))
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := s.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRefreshToken), errors.Is(err, services.ErrAdminNotFound):
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, err.Error())
		default:
			s.logger.Error(r.Context(), "refresh failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}
	writeJSON(w, http.StatusOK, toTokenResponse(pair))
}

// checkSession always answers 200; a missing or invalid token is reported as
// unauthenticated.
func (s *Server) checkSession(w http.ResponseWriter, r *http.Request) {
	a, err := s.auth.Authenticate(r.Context(), bearerToken(r))
	if err != nil {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Admin: toAdminResponse(a)})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	// the body is optional
	_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)

	s.auth.Logout(r.Context(), bearerToken(r), req.RefreshToken)
	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out", Success: true})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toAdminResponse(adminFromContext(r.Context())))
}

func (s *Server) businessKPIs(w http.ResponseWriter, r *http.Request) {
	rows := s.analytics.BusinessKPIs()
	writeJSON(w, http.StatusOK, reportResponse{
		Success: true,
		Message: "business KPIs",
		Data:    rows,
		Count:   len(rows),
	})
}

func (s *Server) topRevenueProducts(w http.ResponseWriter, r *http.Request) {
	limit := analytics.DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > analytics.MaxTopLimit {
			writeIssues(w, []validationIssue{{
				Loc:  []string{"query", "limit"},
				Msg:  "limit must be an integer between 1 and " + strconv.Itoa(analytics.MaxTopLimit),
				Type: "value_error",
			}})
			return
		}
		limit = n
	}

	rows := s.analytics.TopRevenueProducts(limit)
	writeJSON(w, http.StatusOK, reportResponse{
		Success: true,
		Message: "top revenue products",
		Data:    rows,
		Count:   len(rows),
	})
}
