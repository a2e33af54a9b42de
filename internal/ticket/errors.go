package ticket

import (
	"errors"
	"fmt"
)

var (
	ErrMarkerNotFound = errors.New("payload marker not found")
	ErrInvalidRound   = errors.New("invalid round number")
)

// DecodeError wraps a decode failure with the step that failed.
type DecodeError struct {
	Op    string
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("decode %s", e.Op)
	if e.Input != "" {
		msg += fmt.Sprintf(" (input=%q)", truncate(e.Input, 48))
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
