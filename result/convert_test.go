package result

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/anacrolix/patina/internal/testx"
	"github.com/anacrolix/patina/option"
)

func TestOkOr(t *testing.T) {
	qt.Check(t, qt.Equals(OkOr(option.Some("foo"), 0), Ok[string, int]("foo")))
	qt.Check(t, qt.Equals(OkOr(option.None[string](), 0), Err[string](0)))
}

func TestOkOrElseLaziness(t *testing.T) {
	var calls int
	qt.Check(t, qt.Equals(OkOrElse(option.Some("foo"), testx.Producer(&calls, 0)), Ok[string, int]("foo")))
	qt.Check(t, qt.Equals(calls, 0))
	qt.Check(t, qt.Equals(OkOrElse(option.None[string](), testx.Producer(&calls, 0)), Err[string](0)))
	qt.Check(t, qt.Equals(calls, 1))
}

func TestOkRoundTrip(t *testing.T) {
	for _, v := range []string{"", "a", "xyz"} {
		qt.Check(t, qt.Equals(Ok[string, int](v).Ok(), option.Some(v)))
		qt.Check(t, qt.Equals(OkOr(Ok[string, int](v).Ok(), 1), Ok[string, int](v)))
	}
	qt.Check(t, qt.Equals(Err[string](5).Ok(), option.None[string]()))
}

func TestTranspose(t *testing.T) {
	x := Ok[option.T[int], string](option.Some(5))
	y := option.Some(Ok[int, string](5))
	qt.Check(t, qt.Equals(Transpose(x), y))
	qt.Check(t, qt.Equals(TransposeOption(y), x))

	none := Ok[option.T[int], string](option.None[int]())
	qt.Check(t, qt.Equals(Transpose(none), option.None[T[int, string]]()))
	qt.Check(t, qt.Equals(TransposeOption(option.None[T[int, string]]()), none))

	bad := Err[option.T[int]]("bad")
	qt.Check(t, qt.Equals(Transpose(bad), option.Some(Err[int]("bad"))))
	qt.Check(t, qt.Equals(TransposeOption(option.Some(Err[int]("bad"))), bad))
}

func TestFromUnpack(t *testing.T) {
	r := From(strconv.Atoi("12"))
	qt.Check(t, qt.Equals(r.Unwrap(), 12))
	v, err := Unpack(r)
	qt.Check(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(v, 12))

	r = Try(func() (int, error) { return strconv.Atoi("twelve") })
	qt.Check(t, qt.IsTrue(r.IsErr()))
	v, err = Unpack(r)
	qt.Check(t, qt.Equals(v, 0))
	var numErr *strconv.NumError
	qt.Check(t, qt.ErrorAs(err, &numErr))
}

func TestCollectShortCircuits(t *testing.T) {
	var visited int
	seq := func(yield func(T[int, error]) bool) {
		for _, s := range []string{"1", "two", "3"} {
			visited++
			if !yield(From(strconv.Atoi(s))) {
				return
			}
		}
	}
	r := Collect(seq)
	qt.Check(t, qt.IsTrue(r.IsErr()))
	qt.Check(t, qt.Equals(visited, 2))

	good := Collect(slices.Values([]T[int, error]{Ok[int, error](1), Ok[int, error](3)}))
	qt.Check(t, qt.DeepEquals(good.Unwrap(), []int{1, 3}))
}

func TestPartition(t *testing.T) {
	e := errors.New("nope")
	oks, errs := Partition(slices.Values([]T[int, error]{
		Ok[int, error](1), Err[int](e), Ok[int, error](3),
	}))
	qt.Check(t, qt.DeepEquals(oks, []int{1, 3}))
	qt.Check(t, qt.HasLen(errs, 1))
	qt.Check(t, qt.ErrorIs(errs[0], e))
}
