package result

import (
	"iter"
)

// Collect returns Ok of all the values, or the first Err. Iteration stops at the first Err.
func Collect[V, E any](seq iter.Seq[T[V, E]]) T[[]V, E] {
	var ret []V
	for r := range seq {
		if r.failed {
			return Err[[]V](r.err)
		}
		ret = append(ret, r.value)
	}
	return Ok[[]V, E](ret)
}

// Partition splits the sequence into its Ok and Err payloads, in order.
func Partition[V, E any](seq iter.Seq[T[V, E]]) (oks []V, errs []E) {
	for r := range seq {
		if r.failed {
			errs = append(errs, r.err)
		} else {
			oks = append(oks, r.value)
		}
	}
	return
}
