package stringsx

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestRepr(t *testing.T) {
	qt.Assert(t, qt.Equals(Repr("foo"), `"foo"`))
	qt.Assert(t, qt.Equals(Repr(42), "42"))
	qt.Assert(t, qt.Equals(Repr([]byte("hi")), `"hi"`))
	qt.Assert(t, qt.Equals(Repr(errors.New("emergency failure")), `"emergency failure"`))
	qt.Assert(t, qt.Equals(Repr([]int{1, 2}), "[1 2]"))
	qt.Assert(t, qt.Equals(Repr(nil), "<nil>"))
}
