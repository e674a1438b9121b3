package testx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a small language extension for panicing on the common
// value, error return pattern. only used in tests.
func Must[T any](v T, err error) func(t testing.TB) T {
	return func(t testing.TB) T {
		require.NoError(t, err)
		return v
	}
}

// Producer returns a closure yielding v that counts its calls in *calls. Used to check the
// laziness of the *OrElse style combinators.
func Producer[V any](calls *int, v V) func() V {
	return func() V {
		*calls++
		return v
	}
}

// Counted wraps f, counting calls in *calls.
func Counted[A, R any](calls *int, f func(A) R) func(A) R {
	return func(a A) R {
		*calls++
		return f(a)
	}
}

// Never returns a function that fails the test if it's called.
func Never[A, R any](t testing.TB) func(A) R {
	return func(A) R {
		t.Helper()
		require.FailNow(t, "function should not have been called")
		panic("unreachable")
	}
}
