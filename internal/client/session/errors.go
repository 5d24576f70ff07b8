package session

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// ErrEmptyToken is returned when a transition is given a blank token.
var ErrEmptyToken = errors.New("empty token")

// InvalidStateError reports a transition attempted from a state that does not
// allow it. It signals a programming error in the caller, not a user error.
type InvalidStateError struct {
	Op   string
	From models.Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("session: %s not allowed in state %s", e.Op, e.From)
}
