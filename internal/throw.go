package internal

import "github.com/pkg/errors"

// Threading errors up and down all the fitting stages would add a ton of
// complexity to the code for conditions that indicate bugs rather than bad
// input. Instead, we use panics, and the public API recovers to convert to an
// error. Bad input is never a panic: it is either a warning or one of the
// sentinel errors below.

type RegularizeError error

var (
	// The input had no curve that survived validation and simplification.
	ErrEmptyInput = errors.New("empty or entirely degenerate input")
	// A configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Panic with a RegularizeError.
func fatalf(format string, args ...interface{}) {
	panic(RegularizeError(errors.Errorf(format, args...)))
}

func HandleRegularizePanicRecover(r interface{}) error {
	if r != nil {
		if regularizeError, ok := r.(RegularizeError); ok {
			return regularizeError
		}
		panic(r)
	}
	return nil
}
