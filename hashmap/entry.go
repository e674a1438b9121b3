package hashmap

import (
	"fmt"

	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/elliotchance/orderedmap/v2"

	"github.com/anacrolix/patina/internal/stringsx"
	"github.com/anacrolix/patina/option"
)

// Entry is a view into a single slot of a Map. It's implemented only by *OccupiedEntry and
// *VacantEntry, so a type switch over those two is exhaustive.
type Entry[K comparable, V any] interface {
	Key() K
	// Ensures a value is in the entry by inserting the default if empty, and returns a pointer to
	// the value.
	OrInsert(V) *V
	OrInsertWith(func() V) *V
	// Like OrInsertWith, but the function is given the key.
	OrInsertWithKey(func(K) V) *V
	OrDefault() *V
	// Calls f with a pointer to the value if the entry is occupied.
	AndModify(f func(*V)) Entry[K, V]
	// Sets the value and returns the now occupied entry.
	InsertEntry(V) *OccupiedEntry[K, V]
	String() string
	sealed()
}

// Entry gets the slot for key for in-place manipulation.
func (me *Map[K, V]) Entry(key K) Entry[K, V] {
	if el := me.lazyInit().GetElement(key); el != nil {
		return &OccupiedEntry[K, V]{m: me, el: el}
	}
	return &VacantEntry[K, V]{m: me, key: key}
}

type OccupiedEntry[K comparable, V any] struct {
	m  *Map[K, V]
	el *orderedmap.Element[K, V]
	// Set once the entry has been removed from the map.
	removed bool
}

func (me *OccupiedEntry[K, V]) sealed() {}

func (me *OccupiedEntry[K, V]) Key() K {
	return me.el.Key
}

// The entry is dead once removed, whether through it or through the map.
func (me *OccupiedEntry[K, V]) checkLive() {
	panicif.True(me.removed)
	panicif.NotEq(me.m.lazyInit().GetElement(me.el.Key), me.el)
}

func (me *OccupiedEntry[K, V]) Get() V {
	me.checkLive()
	return me.el.Value
}

func (me *OccupiedEntry[K, V]) GetMut() *V {
	me.checkLive()
	return &me.el.Value
}

// Insert replaces the value, returning the old one.
func (me *OccupiedEntry[K, V]) Insert(value V) V {
	me.checkLive()
	old := me.el.Value
	me.el.Value = value
	return old
}

// Remove takes the value out of the map. The entry can't be used afterwards.
func (me *OccupiedEntry[K, V]) Remove() V {
	return me.RemoveEntry().Right
}

func (me *OccupiedEntry[K, V]) RemoveEntry() option.Pair[K, V] {
	me.checkLive()
	me.removed = true
	return me.m.RemoveEntry(me.el.Key).Unwrap()
}

func (me *OccupiedEntry[K, V]) OrInsert(V) *V {
	return me.GetMut()
}

func (me *OccupiedEntry[K, V]) OrInsertWith(func() V) *V {
	return me.GetMut()
}

func (me *OccupiedEntry[K, V]) OrInsertWithKey(func(K) V) *V {
	return me.GetMut()
}

func (me *OccupiedEntry[K, V]) OrDefault() *V {
	return me.GetMut()
}

func (me *OccupiedEntry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	f(me.GetMut())
	return me
}

func (me *OccupiedEntry[K, V]) InsertEntry(value V) *OccupiedEntry[K, V] {
	me.Insert(value)
	return me
}

func (me *OccupiedEntry[K, V]) String() string {
	return fmt.Sprintf("OccupiedEntry(key=%s, value=%s)", stringsx.Repr(me.el.Key), stringsx.Repr(me.el.Value))
}

type VacantEntry[K comparable, V any] struct {
	m   *Map[K, V]
	key K
	// Set once a value has been inserted through this entry.
	used bool
}

func (me *VacantEntry[K, V]) sealed() {}

func (me *VacantEntry[K, V]) Key() K {
	return me.key
}

// Insert sets the value with the entry's key, and returns a pointer to it.
func (me *VacantEntry[K, V]) Insert(value V) *V {
	return me.InsertEntry(value).GetMut()
}

func (me *VacantEntry[K, V]) InsertEntry(value V) *OccupiedEntry[K, V] {
	panicif.True(me.used)
	m := me.m.lazyInit()
	// The key may have been inserted through the map after the entry was taken.
	panicif.NotNil(m.GetElement(me.key))
	me.used = true
	m.Set(me.key, value)
	return &OccupiedEntry[K, V]{m: me.m, el: m.GetElement(me.key)}
}

func (me *VacantEntry[K, V]) OrInsert(value V) *V {
	return me.Insert(value)
}

// OrInsertWith only calls f because the entry is vacant.
func (me *VacantEntry[K, V]) OrInsertWith(f func() V) *V {
	return me.Insert(f())
}

func (me *VacantEntry[K, V]) OrInsertWithKey(f func(K) V) *V {
	return me.Insert(f(me.key))
}

func (me *VacantEntry[K, V]) OrDefault() *V {
	var zero V
	return me.Insert(zero)
}

func (me *VacantEntry[K, V]) AndModify(func(*V)) Entry[K, V] {
	return me
}

func (me *VacantEntry[K, V]) String() string {
	return fmt.Sprintf("VacantEntry(key=%s)", stringsx.Repr(me.key))
}
