package typeinfo

import (
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Lookup indexes values by types. Identical types share one entry even when
// they are different [types.Type] instances.
type Lookup[V any] struct {
	m *typeutil.Map
}

// NewLookup creates a new [Lookup].
func NewLookup[V any]() *Lookup[V] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Lookup[V]{m}
}

// Put adds a value for the type. If the type already has a value, it keeps
// the old one and returns it with false.
func (l *Lookup[V]) Put(t Type, v V) (V, bool) {
	if old, ok := l.m.At(t.Type()).(V); ok {
		return old, false
	}
	l.m.Set(t.Type(), v)
	return *new(V), true
}

// Get finds the value for the type.
func (l *Lookup[V]) Get(t Type) (V, bool) {
	if l == nil {
		return *new(V), false
	}
	v, ok := l.m.At(t.Type()).(V)
	return v, ok
}

// Len returns the number of indexed types.
func (l *Lookup[V]) Len() int {
	if l == nil {
		return 0
	}
	return l.m.Len()
}

// Range iterates all indexed types and their values in no particular order.
func (l *Lookup[V]) Range() iter.Seq2[Type, V] {
	return func(yield func(Type, V) bool) {
		if l == nil {
			return
		}
		for _, k := range l.m.Keys() {
			v, ok := l.m.At(k).(V)
			if !ok {
				continue
			}
			if !yield(TypeOf(k), v) {
				return
			}
		}
	}
}
