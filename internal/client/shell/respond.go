package shell

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/goccy/go-json"
)

type errorBody struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// respondError maps controller and gateway errors to HTTP statuses.
func (s *Server) respondError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		ve  *services.ValidationError
		ae  *client.AuthError
		ise *session.InvalidStateError
	)
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: "validation failed", Fields: ve.Fields})

	case errors.As(err, &ae):
		status := ae.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		respondJSON(w, status, errorBody{Detail: ae.Message})

	case errors.As(err, &ise):
		s.logger.Error(ctx, "invalid session transition", "op", ise.Op, "from", ise.From.String())
		respondJSON(w, http.StatusConflict, errorBody{Detail: err.Error()})

	case errors.Is(err, services.ErrSubmitInProgress), errors.Is(err, services.ErrStale):
		respondJSON(w, http.StatusConflict, errorBody{Detail: err.Error()})

	case errors.Is(err, services.ErrNotAuthenticated):
		respondJSON(w, http.StatusUnauthorized, errorBody{Detail: err.Error()})

	default:
		s.logger.Error(ctx, "request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Detail: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(v); err != nil {
		return &services.ValidationError{Fields: map[string]string{"body": "malformed JSON body"}}
	}
	return nil
}
