package option

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the constraint for Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// Collect returns Some of all the values, or None as soon as a None is encountered.
func Collect[V any](seq iter.Seq[T[V]]) T[[]V] {
	var ret []V
	for o := range seq {
		if !o.ok {
			return None[[]V]()
		}
		ret = append(ret, o.value)
	}
	return Some(ret)
}

// Values yields the contained values, skipping Nones.
func Values[V any](seq iter.Seq[T[V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for o := range seq {
			if o.ok && !yield(o.value) {
				return
			}
		}
	}
}

// Sum adds the values, stopping at the first None. An empty sequence sums to Some(0).
func Sum[N Number](seq iter.Seq[T[N]]) T[N] {
	var sum N
	for o := range seq {
		if !o.ok {
			return None[N]()
		}
		sum += o.value
	}
	return Some(sum)
}

// Product is like Sum, with an empty product of Some(1).
func Product[N Number](seq iter.Seq[T[N]]) T[N] {
	var prod N = 1
	for o := range seq {
		if !o.ok {
			return None[N]()
		}
		prod *= o.value
	}
	return Some(prod)
}
