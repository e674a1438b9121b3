package option

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"
)

func identity[V any](v V) V { return v }

func fromFuzz(s string, some bool) T[string] {
	return FromTuple(s, some)
}

func FuzzFunctorLaws(f *testing.F) {
	f.Add("", false)
	f.Add("hello", true)
	f.Add("42", true)
	f.Fuzz(func(t *testing.T, s string, some bool) {
		o := fromFuzz(s, some)
		qt.Assert(t, qt.Equals(Map(o, identity[string]), o))
		strlen := func(s string) int { return len(s) }
		itoa := strconv.Itoa
		qt.Assert(t, qt.Equals(
			Map(Map(o, strlen), itoa),
			Map(o, func(s string) string { return itoa(strlen(s)) }),
		))
	})
}

func FuzzMonadLaws(f *testing.F) {
	f.Add("", false)
	f.Add("7", true)
	f.Add("x", true)
	f.Fuzz(func(t *testing.T, s string, some bool) {
		atoi := func(s string) T[int] {
			i, err := strconv.Atoi(s)
			return FromTuple(i, err == nil)
		}
		half := func(i int) T[int] {
			if i%2 != 0 {
				return None[int]()
			}
			return Some(i / 2)
		}
		// Left identity.
		qt.Assert(t, qt.Equals(AndThen(Some(s), atoi), atoi(s)))
		o := fromFuzz(s, some)
		// Right identity.
		qt.Assert(t, qt.Equals(AndThen(o, Some[string]), o))
		// Associativity.
		qt.Assert(t, qt.Equals(
			AndThen(AndThen(o, atoi), half),
			AndThen(o, func(s string) T[int] { return AndThen(atoi(s), half) }),
		))
	})
}
