package option

import (
	"fmt"

	"github.com/anacrolix/patina/internal/stringsx"
)

// Pair is the tuple produced by Zip, and used for key-value results elsewhere.
type Pair[L, R any] struct {
	Left  L
	Right R
}

func NewPair[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{left, right}
}

func (me Pair[L, R]) Unpack() (L, R) {
	return me.Left, me.Right
}

func (me Pair[L, R]) Flip() Pair[R, L] {
	return Pair[R, L]{me.Right, me.Left}
}

func (me Pair[L, R]) String() string {
	return fmt.Sprintf("(%s, %s)", stringsx.Repr(me.Left), stringsx.Repr(me.Right))
}
