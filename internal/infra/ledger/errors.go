package ledger

import (
	"encoding/json"
	"fmt"

	"greenlake/internal/errors"
)

// Error is a non-success answer from the token ledger.
type Error struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("ledger %s failed with status %d", e.Operation, e.StatusCode)
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

// AsError extracts a ledger error from an error chain.
func AsError(err error) (*Error, bool) {
	return errors.AsType[*Error](err)
}

// errorBody is the ledger's failure payload.
type errorBody struct {
	Error   string          `json:"error"`
	Code    string          `json:"code,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}
