package jobmanager

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID       = errors.New("invalid job id")
	ErrInvalidCommand  = errors.New("invalid command")
	ErrCommandNotFound = errors.New("command not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrJobExists       = errors.New("job already exists")
	ErrJobNotFound     = errors.New("job not found")
	ErrJobInProgress   = errors.New("job in progress")
)

// IOError is returned when an OS-level operation on a Job fails for a reason
// not covered by the other errors, e.g. permissions or resource exhaustion
// when creating the output file or starting the process.
type IOError struct {
	Op  string
	Err error
}

func (e IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e IOError) Unwrap() error {
	return e.Err
}

func NewIOError(op string, err error) IOError {
	return IOError{op, err}
}
