package option

// Map applies f to the contained value, if any.
func Map[V, U any](o T[V], f func(V) U) T[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOr's default is evaluated eagerly. See MapOrElse.
func MapOr[V, U any](o T[V], or U, f func(V) U) U {
	if !o.ok {
		return or
	}
	return f(o.value)
}

func MapOrElse[V, U any](o T[V], or func() U, f func(V) U) U {
	if !o.ok {
		return or()
	}
	return f(o.value)
}

// AndThen returns None if the option is None, otherwise the result of f on the value. Some
// languages call this flatmap.
func AndThen[V, U any](o T[V], f func(V) T[U]) T[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// And returns None if o is None, otherwise optb.
func And[V, U any](o T[V], optb T[U]) T[U] {
	if !o.ok {
		return None[U]()
	}
	return optb
}

// Zip returns Some of both values if both options are Some.
func Zip[A, B any](a T[A], b T[B]) T[Pair[A, B]] {
	return ZipWith(a, b, NewPair[A, B])
}

func ZipWith[A, B, R any](a T[A], b T[B], f func(A, B) R) T[R] {
	if !a.ok || !b.ok {
		return None[R]()
	}
	return Some(f(a.value, b.value))
}

// Unzip is the inverse of Zip.
func Unzip[A, B any](o T[Pair[A, B]]) (T[A], T[B]) {
	if !o.ok {
		return None[A](), None[B]()
	}
	return Some(o.value.Left), Some(o.value.Right)
}

// Flatten removes one level of nesting.
func Flatten[V any](o T[T[V]]) T[V] {
	if !o.ok {
		return None[V]()
	}
	return o.value
}

// Compare orders None before any Some, and Somes by their values.
func Compare[V any](a, b T[V], cmp func(V, V) int) int {
	switch {
	case a.ok && b.ok:
		return cmp(a.value, b.value)
	case a.ok:
		return 1
	case b.ok:
		return -1
	default:
		return 0
	}
}

// AsPtr returns Some of a pointer into o. The pointer is invalidated by anything that makes o None.
func AsPtr[V any](o *T[V]) T[*V] {
	if !o.ok {
		return None[*V]()
	}
	return Some(&o.value)
}
