package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrStale            = errors.New("session changed while the request was in flight")
)

// ValidationError is raised before any network call when user input is
// incomplete or malformed. Fields maps an input name to its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
