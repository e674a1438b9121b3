// Package option provides T, an optional value: every T is either Some and contains a value, or
// None and does not.
//
// Combinators that keep the contained type are methods. Ones that change it (Map, AndThen, Zip
// and so on) are functions in this package taking the option as the first argument.
package option

import (
	"iter"

	g "github.com/anacrolix/generics"

	"github.com/anacrolix/patina/internal/cmpx"
	"github.com/anacrolix/patina/internal/stringsx"
	"github.com/anacrolix/patina/unwrap"
)

const unwrapNoneMsg = "called `Option.Unwrap` on a `None` value"

// The zero value is None.
type T[V any] struct {
	ok bool
	// Must be zeroed when ok is false so == stays deterministic.
	value V
}

func Some[V any](value V) T[V] {
	return T[V]{ok: true, value: value}
}

func None[V any]() T[V] {
	return T[V]{}
}

// FromPtr returns None for a nil pointer, otherwise Some of the pointed to value.
func FromPtr[V any](p *V) T[V] {
	if p == nil {
		return None[V]()
	}
	return Some(*p)
}

// FromTuple adapts the comma-ok idiom.
func FromTuple[V any](value V, ok bool) T[V] {
	if !ok {
		return None[V]()
	}
	return Some(value)
}

func FromGeneric[V any](o g.Option[V]) T[V] {
	return FromTuple(o.Value, o.Ok)
}

func (me T[V]) Generic() g.Option[V] {
	return g.OptionFromTuple(me.value, me.ok)
}

func (me T[V]) IsSome() bool {
	return me.ok
}

func (me T[V]) IsNone() bool {
	return !me.ok
}

// IsSomeAnd returns true if the option is Some and the value satisfies pred.
func (me T[V]) IsSomeAnd(pred func(V) bool) bool {
	return me.ok && pred(me.value)
}

// IsNoneOr returns true if the option is None, or the value satisfies pred.
func (me T[V]) IsNoneOr(pred func(V) bool) bool {
	return !me.ok || pred(me.value)
}

// Get destructures the option into the comma-ok form.
func (me T[V]) Get() (V, bool) {
	return me.value, me.ok
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (me T[V]) Ptr() *V {
	if !me.ok {
		return nil
	}
	v := me.value
	return &v
}

// Match calls exactly one of the functions depending on the variant.
func (me T[V]) Match(some func(V), none func()) {
	if me.ok {
		some(me.value)
	} else {
		none()
	}
}

func (me T[V]) Expect(msg string) V {
	if !me.ok {
		unwrap.Panic(msg, nil)
	}
	return me.value
}

// Unwrap returns the value, and panics with an *unwrap.Error if there isn't one. Prefer Get,
// UnwrapOr or UnwrapOrElse.
func (me T[V]) Unwrap() V {
	if !me.ok {
		unwrap.Panic(unwrapNoneMsg, nil)
	}
	return me.value
}

// UnwrapOr's argument is evaluated eagerly. Use UnwrapOrElse if computing it is expensive.
func (me T[V]) UnwrapOr(or V) V {
	if me.ok {
		return me.value
	}
	return or
}

func (me T[V]) UnwrapOrElse(f func() V) V {
	if me.ok {
		return me.value
	}
	return f()
}

func (me T[V]) UnwrapOrDefault() V {
	return me.value
}

// Filter returns None if the option is None or pred returns false for the value.
func (me T[V]) Filter(pred func(V) bool) T[V] {
	if me.ok && pred(me.value) {
		return me
	}
	return None[V]()
}

// Or returns the option if it is Some, otherwise optb.
func (me T[V]) Or(optb T[V]) T[V] {
	if me.ok {
		return me
	}
	return optb
}

func (me T[V]) OrElse(f func() T[V]) T[V] {
	if me.ok {
		return me
	}
	return f()
}

// Xor returns Some if exactly one of the options is Some.
func (me T[V]) Xor(optb T[V]) T[V] {
	switch {
	case me.ok && !optb.ok:
		return me
	case !me.ok && optb.ok:
		return optb
	default:
		return None[V]()
	}
}

// Inspect calls f with the value if there is one, and returns the option unchanged.
func (me T[V]) Inspect(f func(V)) T[V] {
	if me.ok {
		f(me.value)
	}
	return me
}

// Iter yields the value if there is one. Each call returns a new sequence.
func (me T[V]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		if me.ok {
			yield(me.value)
		}
	}
}

// Equal compares variants, and values structurally. It's also what go-cmp uses when comparing
// types that contain options.
func (me T[V]) Equal(other T[V]) bool {
	if me.ok != other.ok {
		return false
	}
	return !me.ok || cmpx.Equal(me.value, other.value)
}

func (me T[V]) String() string {
	if !me.ok {
		return "None"
	}
	return "Some(" + stringsx.Repr(me.value) + ")"
}

// Take moves the value out, leaving None in its place.
func (me *T[V]) Take() T[V] {
	ret := *me
	me.SetNone()
	return ret
}

// TakeIf takes the value only if pred returns true for it. pred may modify the value first.
func (me *T[V]) TakeIf(pred func(*V) bool) T[V] {
	if me.ok && pred(&me.value) {
		return me.Take()
	}
	return None[V]()
}

// Replace puts value in the option, returning the old one.
func (me *T[V]) Replace(value V) T[V] {
	ret := *me
	*me = Some(value)
	return ret
}

// Insert puts value in the option, discarding any old one, and returns a pointer to it.
func (me *T[V]) Insert(value V) *V {
	*me = Some(value)
	return &me.value
}

func (me *T[V]) GetOrInsert(value V) *V {
	if !me.ok {
		*me = Some(value)
	}
	return &me.value
}

// GetOrInsertWith only calls f if the option is None.
func (me *T[V]) GetOrInsertWith(f func() V) *V {
	if !me.ok {
		*me = Some(f())
	}
	return &me.value
}

func (me *T[V]) GetOrInsertDefault() *V {
	if !me.ok {
		*me = Some(g.ZeroValue[V]())
	}
	return &me.value
}

func (me *T[V]) Set(value V) {
	*me = Some(value)
}

func (me *T[V]) SetNone() {
	*me = None[V]()
}
