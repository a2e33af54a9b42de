package prize

import "errors"

var (
	ErrLineIndexOutOfRange = errors.New("line index out of range")
	ErrInvalidTier         = errors.New("invalid prize tier")
	ErrNumberOutOfRange    = errors.New("ticket number out of range")
	ErrNumberPoolExhausted = errors.New("no admissible number left to draw")
	ErrTierNotReached      = errors.New("chosen line did not score the requested tier")
)
