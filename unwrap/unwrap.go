// Package unwrap holds the panic value raised when an option or result is unwrapped on the wrong
// variant, and helpers to turn those panics back into errors at an API boundary.
package unwrap

import (
	"github.com/pkg/errors"
)

// Error is what Unwrap, Expect and friends panic with.
type Error struct {
	Msg string
	// Set when the payload that was found in place of the expected one is itself an error.
	Err error
}

func (me *Error) Error() string {
	return me.Msg
}

func (me *Error) Unwrap() error {
	return me.Err
}

// Panic raises an *Error with the given message. If payload is an error it's kept so callers that
// recover can get at it with errors.Is and errors.As.
func Panic(msg string, payload any) {
	e := &Error{Msg: msg}
	if err, ok := payload.(error); ok {
		e.Err = err
	}
	panic(e)
}

// Recover must be deferred directly. It stores an unwrap panic in *errp, and lets any other panic
// continue.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	*errp = errors.WithStack(e)
}

// Catch runs f, returning the *Error it panicked with, if any.
func Catch(f func()) (err error) {
	defer Recover(&err)
	f()
	return
}
