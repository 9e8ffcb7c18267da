package internal

import "github.com/pkg/errors"

// Threading errors through the scan and solver would add noise to code whose
// only failure modes are bad input and broken invariants. Instead, we use
// panics, and the public API recovers to convert to an error.

var ErrInvalidInput = errors.New("invalid input")

// Wrapper so that recovery only swallows our own panics. A bare error type
// would also catch runtime errors such as index out of range.
type MixError struct {
	error
}

func (e MixError) Unwrap() error {
	return e.error
}

// Panic with a MixError.
func fatalf(format string, args ...interface{}) {
	panic(MixError{errors.Errorf(format, args...)})
}

// Panic with a MixError wrapping ErrInvalidInput.
func invalidf(format string, args ...interface{}) {
	panic(MixError{errors.Wrapf(ErrInvalidInput, format, args...)})
}

func HandleMixPanicRecover(r interface{}) error {
	if r != nil {
		if mixError, ok := r.(MixError); ok {
			return mixError.error
		}
		panic(r)
	}
	return nil
}
