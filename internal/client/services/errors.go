package services

import (
	"errors"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
)

// ErrInvalidID is returned for operations addressed to an empty user id.
var ErrInvalidID = errors.New("invalid user id")

// OperationError is the single failure kind surfaced to the presentation
// layer. Error returns the human message; the cause stays reachable through
// errors.Is / errors.As.
type OperationError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// failure prefers the server-supplied message and falls back to the
// operation default.
func failure(op, fallback string, err error) *OperationError {
	msg := fallback
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return &OperationError{Op: op, Message: msg, Err: err}
}
