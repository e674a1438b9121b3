package result

// Map applies f to the Ok value, passing an Err through untouched.
func Map[V, U, E any](r T[V, E], f func(V) U) T[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr applies f to the Err value, passing an Ok through untouched.
func MapErr[V, E, F any](r T[V, E], f func(E) F) T[V, F] {
	if r.failed {
		return Err[V](f(r.err))
	}
	return Ok[V, F](r.value)
}

func MapOr[V, U, E any](r T[V, E], or U, f func(V) U) U {
	if r.failed {
		return or
	}
	return f(r.value)
}

// MapOrElse maps the Ok value with f, or the Err value with or.
func MapOrElse[V, U, E any](r T[V, E], or func(E) U, f func(V) U) U {
	if r.failed {
		return or(r.err)
	}
	return f(r.value)
}

// AndThen chains an operation that may fail on the success channel.
func AndThen[V, U, E any](r T[V, E], f func(V) T[U, E]) T[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return f(r.value)
}

// And returns res if r is Ok, otherwise r's error.
func And[V, U, E any](r T[V, E], res T[U, E]) T[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return res
}

// OrElse chains a recovery on the error channel.
func OrElse[V, E, F any](r T[V, E], f func(E) T[V, F]) T[V, F] {
	if !r.failed {
		return Ok[V, F](r.value)
	}
	return f(r.err)
}

// Or returns r if it's Ok, otherwise res. res is evaluated eagerly.
func Or[V, E, F any](r T[V, E], res T[V, F]) T[V, F] {
	if !r.failed {
		return Ok[V, F](r.value)
	}
	return res
}

func Flatten[V, E any](r T[T[V, E], E]) T[V, E] {
	if r.failed {
		return Err[V](r.err)
	}
	return r.value
}

// Compare orders any Ok before any Err, then by payload.
func Compare[V, E any](a, b T[V, E], cmpValue func(V, V) int, cmpErr func(E, E) int) int {
	switch {
	case a.failed && b.failed:
		return cmpErr(a.err, b.err)
	case a.failed:
		return 1
	case b.failed:
		return -1
	default:
		return cmpValue(a.value, b.value)
	}
}
