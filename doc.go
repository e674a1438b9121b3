/*
Package patina provides Rust's Option and Result types, and a HashMap with the entry API, for Go.

The types live in subpackages:

	option.T[V]     Some(value) or None
	result.T[V, E]  Ok(value) or Err(err)
	hashmap.Map     lookups returning options, and Entry for in-place access

Simple example:

	func divide(numerator, denominator float64) option.T[float64] {
		if denominator == 0 {
			return option.None[float64]()
		}
		return option.Some(numerator / denominator)
	}

	if q, ok := divide(2, 3).Get(); ok {
		fmt.Println("Result:", q)
	}

Unwrapping the wrong variant panics with an *unwrap.Error. Use unwrap.Catch or unwrap.Recover at
an API boundary to get it back as an error.
*/
package patina
