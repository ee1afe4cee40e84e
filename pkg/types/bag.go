package types

import (
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Bag is an open, string-keyed property store layered with a separate
// boolean flag store. The two stores are independent namespaces: the same
// key may hold data and a flag with unrelated values.
//
// The zero value is an empty Bag ready to use, so host types can embed a
// Bag by value. A Bag is not safe for concurrent use; callers sharing one
// across goroutines must synchronize externally.
type Bag struct {
	data     map[string]any
	keys     []string // insertion order of data
	flags    map[string]bool
	flagKeys []string // insertion order of flags
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// GetData returns the value stored at key, or nil if key is not present.
// An empty key returns a copy of the whole data store.
// A stored nil and a missing key both yield nil; use HasData or Lookup to
// tell them apart.
func (b *Bag) GetData(key string) any {
	if key == "" {
		return b.Data()
	}
	return b.data[key]
}

// SetData stores value at key, replacing any previous value, and returns
// the bag for chaining.
func (b *Bag) SetData(key string, value any) *Bag {
	if b.data == nil {
		b.data = make(map[string]any)
	}
	if _, ok := b.data[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.data[key] = value
	return b
}

// HasData reports whether key is present, including keys mapped to nil.
// An empty key reports whether the data store holds anything at all.
func (b *Bag) HasData(key string) bool {
	if key == "" {
		return len(b.data) > 0
	}
	_, ok := b.data[key]
	return ok
}

// UnsetData removes key from the data store, or clears the whole data
// store when key is empty. It returns the bag for chaining.
func (b *Bag) UnsetData(key string) *Bag {
	if key == "" {
		b.data = nil
		b.keys = nil
		return b
	}
	if _, ok := b.data[key]; !ok {
		return b
	}
	delete(b.data, key)
	b.keys = slices.DeleteFunc(b.keys, func(k string) bool { return k == key })
	return b
}

// MergeData appends value to the sequence accumulated at key.
//
// When key holds nothing (missing or nil), a one-element sequence is stored
// and value itself is returned, not the sequence. When key holds a scalar,
// the scalar is wrapped into a sequence before appending. In both of the
// latter cases the full resulting sequence is returned.
//
// Sequences are stored as []any. A stored slice of another element type is
// converted to []any before appending.
func (b *Bag) MergeData(key string, value any) any {
	current := b.data[key]
	if current == nil {
		b.SetData(key, []any{value})
		return value
	}

	seq, ok := asSequence(current)
	if !ok {
		seq = []any{current}
	}
	seq = append(seq, value)
	b.data[key] = seq
	return slices.Clone(seq)
}

// IsFlag reads or writes the flag stored at key.
//
// With an empty key it returns a copy of the whole flag store as a
// map[string]bool. Without a value, or with a nil value, it returns the
// stored flag as a bool, false when the flag was never set. With a non-nil
// value it stores Truthy(value) and returns nil.
func (b *Bag) IsFlag(key string, value ...any) any {
	if key == "" {
		return b.Flags()
	}
	if len(value) == 0 || value[0] == nil {
		return b.Flag(key)
	}
	b.SetFlag(key, value[0])
	return nil
}

// Lookup returns the value stored at key and whether it was present.
func (b *Bag) Lookup(key string) (any, bool) {
	v, ok := b.data[key]
	return v, ok
}

// Data returns a copy of the data store. It never returns nil.
func (b *Bag) Data() map[string]any {
	if b.data == nil {
		return map[string]any{}
	}
	return maps.Clone(b.data)
}

// Keys returns the data keys in insertion order.
func (b *Bag) Keys() []string {
	return slices.Clone(b.keys)
}

// All iterates over the data store in insertion order.
func (b *Bag) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range b.keys {
			if !yield(k, b.data[k]) {
				return
			}
		}
	}
}

// Len returns the number of data entries.
func (b *Bag) Len() int {
	return len(b.data)
}

// Flag returns the flag stored at key, false when unset.
func (b *Bag) Flag(key string) bool {
	return b.flags[key]
}

// SetFlag stores the truthiness of value as the flag at key.
func (b *Bag) SetFlag(key string, value any) *Bag {
	if b.flags == nil {
		b.flags = make(map[string]bool)
	}
	if _, ok := b.flags[key]; !ok {
		b.flagKeys = append(b.flagKeys, key)
	}
	b.flags[key] = Truthy(value)
	return b
}

// Flags returns a copy of the flag store. It never returns nil.
func (b *Bag) Flags() map[string]bool {
	if b.flags == nil {
		return map[string]bool{}
	}
	return maps.Clone(b.flags)
}

// FlagKeys returns the flag keys in insertion order.
func (b *Bag) FlagKeys() []string {
	return slices.Clone(b.flagKeys)
}

// Reset clears both the data and the flag store.
func (b *Bag) Reset() *Bag {
	*b = Bag{}
	return b
}

// PropertyBag returns b, so a *Bag is its own Host.
func (b *Bag) PropertyBag() *Bag {
	return b
}

// Call resolves a convention-named operation against b with b as the host.
func (b *Bag) Call(name string, args ...any) (any, error) {
	return Call(b, name, args...)
}

// asSequence returns v as a fresh []any when v is a slice or array.
// Byte slices are treated as scalars.
func asSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return slices.Clone(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	seq := make([]any, rv.Len(), rv.Len()+1)
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, true
}
