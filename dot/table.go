package dot

import (
	"iter"
	"slices"
)

// table is the insertion-ordered storage shared by Dict and AutoDict.
// The zero value is an empty table ready to use.
type table struct {
	keys   []string
	values map[string]any
}

// Len returns the number of entries.
func (t *table) Len() int {
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *table) Keys() []string {
	return slices.Clone(t.keys)
}

// Values returns the values in key insertion order.
func (t *table) Values() []any {
	out := make([]any, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.values[k])
	}

	return out
}

// Has reports whether key is present.
func (t *table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Lookup returns the value stored under key. It never creates entries.
func (t *table) Lookup(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Set stores value under key as is. A new key goes to the end of the order,
// an existing key keeps its position.
func (t *table) Set(key string, value any) {
	if t.values == nil {
		t.values = make(map[string]any)
	}

	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}

	t.values[key] = value
}

// Delete removes key and reports whether it was present.
func (t *table) Delete(key string) bool {
	if _, exists := t.values[key]; !exists {
		return false
	}

	delete(t.values, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })

	return true
}

// Clear removes all entries.
func (t *table) Clear() {
	t.keys = nil
	t.values = nil
}

// All iterates over the entries in insertion order.
// Keys deleted during iteration are skipped, keys added during iteration are not visited.
func (t *table) All() iter.Seq2[string, any] {
	keys := slices.Clone(t.keys)

	return func(yield func(string, any) bool) {
		for _, k := range keys {
			v, ok := t.values[k]
			if !ok {
				continue
			}

			if !yield(k, v) {
				return
			}
		}
	}
}
