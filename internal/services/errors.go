package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to handlers. Services return them wrapped in a message
// naming the offending entity; callers test with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)

type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }
func (e *serviceError) Unwrap() error { return e.kind }

func notFoundf(format string, args ...interface{}) error {
	return &serviceError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...interface{}) error {
	return &serviceError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func badRequestf(format string, args ...interface{}) error {
	return &serviceError{kind: ErrBadRequest, msg: fmt.Sprintf(format, args...)}
}

func isServiceError(err error) bool {
	var svcErr *serviceError
	return errors.As(err, &svcErr)
}
