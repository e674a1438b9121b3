// Package result provides T, a value that is either Ok holding a V, or Err holding an E. It's for
// recoverable failure where the caller chooses explicitly between propagating (Unwrap) and
// handling (Map, AndThen, UnwrapOrElse ...).
package result

import (
	"iter"

	"github.com/anacrolix/patina/internal/cmpx"
	"github.com/anacrolix/patina/internal/stringsx"
	"github.com/anacrolix/patina/option"
	"github.com/anacrolix/patina/unwrap"
)

// The zero value is Ok of V's zero value.
type T[V, E any] struct {
	failed bool
	// Only the field for the active variant may be non-zero.
	value V
	err   E
}

func Ok[V, E any](value V) T[V, E] {
	return T[V, E]{value: value}
}

func Err[V, E any](err E) T[V, E] {
	return T[V, E]{failed: true, err: err}
}

func (me T[V, E]) IsOk() bool {
	return !me.failed
}

func (me T[V, E]) IsErr() bool {
	return me.failed
}

func (me T[V, E]) IsOkAnd(pred func(V) bool) bool {
	return !me.failed && pred(me.value)
}

func (me T[V, E]) IsErrAnd(pred func(E) bool) bool {
	return me.failed && pred(me.err)
}

// Get returns the Ok value in comma-ok form.
func (me T[V, E]) Get() (V, bool) {
	return me.value, !me.failed
}

// GetErr returns the Err value in comma-ok form.
func (me T[V, E]) GetErr() (E, bool) {
	return me.err, me.failed
}

// Ok converts to an option of the success value, discarding any error.
func (me T[V, E]) Ok() option.T[V] {
	return option.FromTuple(me.value, !me.failed)
}

func (me T[V, E]) Err() option.T[E] {
	return option.FromTuple(me.err, me.failed)
}

// Match calls exactly one of the functions depending on the variant.
func (me T[V, E]) Match(ok func(V), err func(E)) {
	if me.failed {
		err(me.err)
	} else {
		ok(me.value)
	}
}

func (me T[V, E]) Inspect(f func(V)) T[V, E] {
	if !me.failed {
		f(me.value)
	}
	return me
}

func (me T[V, E]) InspectErr(f func(E)) T[V, E] {
	if me.failed {
		f(me.err)
	}
	return me
}

// Iter yields the Ok value, if any. Each call returns a new sequence.
func (me T[V, E]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		if !me.failed {
			yield(me.value)
		}
	}
}

func (me T[V, E]) UnwrapOr(or V) V {
	if me.failed {
		return or
	}
	return me.value
}

// UnwrapOrElse computes a value from the error, only if there is one.
func (me T[V, E]) UnwrapOrElse(f func(E) V) V {
	if me.failed {
		return f(me.err)
	}
	return me.value
}

func (me T[V, E]) UnwrapOrDefault() V {
	return me.value
}

// Expect returns the Ok value, or panics with msg and the error.
func (me T[V, E]) Expect(msg string) V {
	if me.failed {
		unwrap.Panic(msg+": "+stringsx.Repr(me.err), me.err)
	}
	return me.value
}

// Unwrap returns the Ok value, or panics with an *unwrap.Error describing the error. If E is an
// error type, the *unwrap.Error wraps it.
func (me T[V, E]) Unwrap() V {
	if me.failed {
		unwrap.Panic("called `Result.Unwrap` on an `Err` value: "+stringsx.Repr(me.err), me.err)
	}
	return me.value
}

func (me T[V, E]) ExpectErr(msg string) E {
	if !me.failed {
		unwrap.Panic(msg+": "+stringsx.Repr(me.value), nil)
	}
	return me.err
}

func (me T[V, E]) UnwrapErr() E {
	if !me.failed {
		unwrap.Panic("called `Result.UnwrapErr` on an `Ok` value: "+stringsx.Repr(me.value), nil)
	}
	return me.err
}

// Equal compares variants, and payloads structurally.
func (me T[V, E]) Equal(other T[V, E]) bool {
	if me.failed != other.failed {
		return false
	}
	if me.failed {
		return cmpx.Equal(me.err, other.err)
	}
	return cmpx.Equal(me.value, other.value)
}

func (me T[V, E]) String() string {
	if me.failed {
		return "Err(" + stringsx.Repr(me.err) + ")"
	}
	return "Ok(" + stringsx.Repr(me.value) + ")"
}
