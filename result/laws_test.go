package result

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"
)

func fromFuzz(s string, ok bool) T[string, int] {
	if ok {
		return Ok[string, int](s)
	}
	return Err[string](len(s))
}

func FuzzFunctorLaws(f *testing.F) {
	f.Add("", true)
	f.Add("hello", false)
	f.Add("42", true)
	f.Fuzz(func(t *testing.T, s string, ok bool) {
		r := fromFuzz(s, ok)
		qt.Assert(t, qt.Equals(Map(r, func(s string) string { return s }), r))
		strlen := func(s string) int { return len(s) }
		qt.Assert(t, qt.Equals(
			Map(Map(r, strlen), strconv.Itoa),
			Map(r, func(s string) string { return strconv.Itoa(strlen(s)) }),
		))
		neg := func(i int) int { return -i }
		qt.Assert(t, qt.Equals(MapErr(MapErr(r, neg), neg), r))
	})
}

func FuzzMonadLaws(f *testing.F) {
	f.Add("", false)
	f.Add("7", true)
	f.Add("8", true)
	f.Add("x", true)
	f.Fuzz(func(t *testing.T, s string, ok bool) {
		atoi := func(s string) T[int, int] {
			i, err := strconv.Atoi(s)
			if err != nil {
				return Err[int](-1)
			}
			return Ok[int, int](i)
		}
		half := func(i int) T[int, int] {
			if i%2 != 0 {
				return Err[int](i)
			}
			return Ok[int, int](i / 2)
		}
		// Left identity.
		qt.Assert(t, qt.Equals(AndThen(Ok[string, int](s), atoi), atoi(s)))
		r := fromFuzz(s, ok)
		// Right identity.
		qt.Assert(t, qt.Equals(AndThen(r, Ok[string, int]), r))
		// Associativity.
		qt.Assert(t, qt.Equals(
			AndThen(AndThen(r, atoi), half),
			AndThen(r, func(s string) T[int, int] { return AndThen(atoi(s), half) }),
		))
		// Identity laws on the Err side, for OrElse.
		retry := func(e int) T[string, int] {
			if e%2 == 0 {
				return Ok[string, int](strconv.Itoa(e))
			}
			return Err[string](e + 1)
		}
		qt.Assert(t, qt.Equals(OrElse(Err[string](len(s)), retry), retry(len(s))))
		qt.Assert(t, qt.Equals(OrElse(r, Err[string, int]), r))
	})
}
