package seqhash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMissingArgument = errors.New("provide test sequence index")
var ErrInvalidArgument = errors.New("invalid test sequence index")

// exit codes
const (
	ExitOK      = 0
	ExitMissing = 1
	ExitInvalid = 2
)

// ParseIndex takes the positional arguments left after
// flag parsing and returns the sequence length N from
// the last one. N must be a positive base-10 integer.
func ParseIndex(args []string) (index int64, err error) {
	if len(args) == 0 {
		return 0, ErrMissingArgument
	}
	last := strings.TrimSpace(args[len(args)-1])
	index, err = strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: '%v' is not an integer", ErrInvalidArgument, last)
	}
	if index <= 0 {
		return 0, fmt.Errorf("%w: %v is not positive", ErrInvalidArgument, index)
	}
	return index, nil
}

// ExitCode maps the argument errors to their process
// exit status. A nil err is ExitOK; anything that is
// not an argument error is reported as invalid.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingArgument):
		return ExitMissing
	default:
		return ExitInvalid
	}
}

// UserMessage is the one line shown on stdout for an
// argument error; the wrapped detail goes to the debug log.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingArgument):
		return ErrMissingArgument.Error()
	case errors.Is(err, ErrInvalidArgument):
		return ErrInvalidArgument.Error()
	}
	return err.Error()
}
