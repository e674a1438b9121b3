package result

import (
	"github.com/anacrolix/patina/option"
)

// OkOr maps Some(v) to Ok(v) and None to Err(err). err is evaluated eagerly.
func OkOr[V, E any](o option.T[V], err E) T[V, E] {
	if v, ok := o.Get(); ok {
		return Ok[V, E](v)
	}
	return Err[V](err)
}

// OkOrElse is OkOr with the error only computed for None.
func OkOrElse[V, E any](o option.T[V], f func() E) T[V, E] {
	if v, ok := o.Get(); ok {
		return Ok[V, E](v)
	}
	return Err[V](f())
}

// Transpose turns a result of an option into an option of a result. Ok(None) becomes None.
func Transpose[V, E any](r T[option.T[V], E]) option.T[T[V, E]] {
	if r.failed {
		return option.Some(Err[V](r.err))
	}
	return option.Map(r.value, Ok[V, E])
}

// TransposeOption is the inverse of Transpose. None becomes Ok(None).
func TransposeOption[V, E any](o option.T[T[V, E]]) T[option.T[V], E] {
	r, ok := o.Get()
	if !ok {
		return Ok[option.T[V], E](option.None[V]())
	}
	if r.failed {
		return Err[option.T[V]](r.err)
	}
	return Ok[option.T[V], E](option.Some(r.value))
}

// From adapts the usual (value, error) return pair. A nil err gives Ok.
func From[V any](v V, err error) T[V, error] {
	if err != nil {
		return Err[V](err)
	}
	return Ok[V, error](v)
}

// Try is From for a function, so the call can be deferred.
func Try[V any](f func() (V, error)) T[V, error] {
	return From(f())
}

// Unpack is the inverse of From.
func Unpack[V any](r T[V, error]) (V, error) {
	return r.value, r.err
}
