// Package hashmap wraps a map with the Rust HashMap API: lookups and removals return options
// instead of comma-ok pairs, and Entry gives in-place access to a single slot.
//
// Iteration follows insertion order.
package hashmap

import (
	"iter"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/anacrolix/patina/internal/cmpx"
	"github.com/anacrolix/patina/internal/stringsx"
	"github.com/anacrolix/patina/option"
)

// The zero value is an empty map ready to use. Pointers to values returned by the map stay valid
// until their key is removed.
type Map[K comparable, V any] struct {
	inner *orderedmap.OrderedMap[K, V]
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{inner: orderedmap.NewOrderedMap[K, V]()}
}

// FromIter builds a map from key-value pairs. Later pairs replace earlier ones with the same key.
func FromIter[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	ret := New[K, V]()
	ret.Extend(seq)
	return ret
}

func (me *Map[K, V]) lazyInit() *orderedmap.OrderedMap[K, V] {
	if me.inner == nil {
		me.inner = orderedmap.NewOrderedMap[K, V]()
	}
	return me.inner
}

func (me *Map[K, V]) Len() int {
	return me.lazyInit().Len()
}

func (me *Map[K, V]) IsEmpty() bool {
	return me.Len() == 0
}

func (me *Map[K, V]) Get(key K) option.T[V] {
	return option.FromTuple(me.lazyInit().Get(key))
}

func (me *Map[K, V]) GetKeyValue(key K) option.T[option.Pair[K, V]] {
	el := me.lazyInit().GetElement(key)
	if el == nil {
		return option.None[option.Pair[K, V]]()
	}
	return option.Some(option.NewPair(el.Key, el.Value))
}

// GetMut returns a pointer to the value for key, which can be used to modify it in place.
func (me *Map[K, V]) GetMut(key K) option.T[*V] {
	el := me.lazyInit().GetElement(key)
	if el == nil {
		return option.None[*V]()
	}
	return option.Some(&el.Value)
}

func (me *Map[K, V]) ContainsKey(key K) bool {
	return me.lazyInit().GetElement(key) != nil
}

// Insert sets the value for key, returning the previous value if there was one. An existing key
// keeps its position in the iteration order.
func (me *Map[K, V]) Insert(key K, value V) option.T[V] {
	m := me.lazyInit()
	if el := m.GetElement(key); el != nil {
		old := el.Value
		el.Value = value
		return option.Some(old)
	}
	m.Set(key, value)
	return option.None[V]()
}

func (me *Map[K, V]) Remove(key K) option.T[V] {
	return option.Map(me.RemoveEntry(key), func(p option.Pair[K, V]) V {
		return p.Right
	})
}

// RemoveEntry removes key, returning the stored key and value.
func (me *Map[K, V]) RemoveEntry(key K) option.T[option.Pair[K, V]] {
	m := me.lazyInit()
	el := m.GetElement(key)
	if el == nil {
		return option.None[option.Pair[K, V]]()
	}
	ret := option.NewPair(el.Key, el.Value)
	m.Delete(key)
	return option.Some(ret)
}

// Retain removes every entry for which f returns false. f may modify the values it keeps.
func (me *Map[K, V]) Retain(f func(K, *V) bool) {
	m := me.lazyInit()
	for el := m.Front(); el != nil; {
		// Deleting clears the element's links.
		next := el.Next()
		if !f(el.Key, &el.Value) {
			m.Delete(el.Key)
		}
		el = next
	}
}

func (me *Map[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		me.Insert(k, v)
	}
}

func (me *Map[K, V]) Clear() {
	me.inner = orderedmap.NewOrderedMap[K, V]()
}

// Drain empties the map immediately, and returns the removed entries.
func (me *Map[K, V]) Drain() iter.Seq2[K, V] {
	old := me.lazyInit()
	me.Clear()
	return func(yield func(K, V) bool) {
		for el := old.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}

// All yields the entries in insertion order. The map must not be modified during iteration.
func (me *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for el := me.lazyInit().Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}

// IterMut is All with pointers to the values.
func (me *Map[K, V]) IterMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for el := me.lazyInit().Front(); el != nil; el = el.Next() {
			if !yield(el.Key, &el.Value) {
				return
			}
		}
	}
}

func (me *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range me.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (me *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range me.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (me *Map[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for _, v := range me.IterMut() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether both maps have the same keys with structurally equal values. Order
// doesn't matter.
func (me *Map[K, V]) Equal(other *Map[K, V]) bool {
	if me.Len() != other.Len() {
		return false
	}
	for k, v := range me.All() {
		ov, ok := other.lazyInit().Get(k)
		if !ok || !cmpx.Equal(v, ov) {
			return false
		}
	}
	return true
}

func (me *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("HashMap{")
	first := true
	for k, v := range me.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(stringsx.Repr(k))
		sb.WriteString(": ")
		sb.WriteString(stringsx.Repr(v))
	}
	sb.WriteString("}")
	return sb.String()
}
