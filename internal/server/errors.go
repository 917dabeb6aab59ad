package server

import (
	"errors"
	"fmt"
)

// ErrMiddlewareGone is returned when awaiting a result from a middleware
// whose task has already exited.
var ErrMiddlewareGone = errors.New("connection middleware exited")

// MiddlewareError reports a result whose shape did not match the issued
// command. It indicates an implementation bug rather than a peer fault.
type MiddlewareError struct {
	Request CommandRequest
	Result  CommandResult
}

func (e *MiddlewareError) Error() string {
	return fmt.Sprintf("middleware error; requested %v, got %v", e.Request.Kind, e.Result.Kind)
}
