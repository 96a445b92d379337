package dot

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// ToDot converts value into the container form of E.
//
//   - a mapping becomes a new *E built from its entries, unless force is false and value is
//     already a *E, which is returned as is
//   - a slice or array becomes a fresh sequence with every element converted with the same force
//   - anything else is returned unchanged
//
// Nested mappings of a newly built container are always converted with force set, so they end
// up as *E too.
func ToDot[E any, P Ptr[E]](value any, force bool) any {
	switch Shape(value) {
	case ShapeMapping:
		if c, ok := value.(P); ok && !force {
			return c
		}

		return fromMapping[E, P](value)

	case ShapeSequence:
		return mapSequence(reflect.ValueOf(value), func(elem any) any {
			return ToDot[E, P](elem, force)
		})
	}

	return value
}

// ToPlain converts value back into plain form.
//
//   - a mapping becomes a new map[string]any with every value converted, unless force is false
//     and value is exactly a map[string]any, which is returned as is
//   - a slice or array becomes a fresh sequence with every element converted
//   - anything else is returned unchanged
func ToPlain(value any, force bool) any {
	switch Shape(value) {
	case ShapeMapping:
		if m, ok := value.(map[string]any); ok && !force {
			return m
		}

		out := make(map[string]any)
		for k, v := range entries(value) {
			out[k] = ToPlain(v, force)
		}

		return out

	case ShapeSequence:
		return mapSequence(reflect.ValueOf(value), func(elem any) any {
			return ToPlain(elem, force)
		})
	}

	return value
}

func fromMapping[E any, P Ptr[E]](m any) P {
	out := P(new(E))
	for k, v := range entries(m) {
		out.Set(k, ToDot[E, P](v, true))
	}

	return out
}

// mapSequence builds a fresh sequence of rv's type from the converted elements of rv.
// When a converted element no longer fits the element type the result is a []any.
func mapSequence(rv reflect.Value, convert func(any) any) any {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return rv.Interface()
	}

	n := rv.Len()
	elemType := rv.Type().Elem()
	elems := make([]any, n)
	fits := true

	for i := range n {
		elems[i] = convert(rv.Index(i).Interface())
		fits = fits && assignable(elems[i], elemType)
	}

	if !fits {
		return elems
	}

	var out reflect.Value
	if rv.Kind() == reflect.Array {
		out = reflect.New(rv.Type()).Elem()
	} else {
		out = reflect.MakeSlice(rv.Type(), n, n)
	}

	for i, elem := range elems {
		out.Index(i).Set(valueFor(elem, elemType))
	}

	return out.Interface()
}

func assignable(value any, t reflect.Type) bool {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		}

		return false
	}

	return reflect.TypeOf(value).AssignableTo(t)
}

// valueFor wraps value for assignment into a slot of type t; nil becomes the zero value of t.
func valueFor(value any, t reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(t)
	}

	return reflect.ValueOf(value)
}

// entries iterates over a mapping. Go maps carry no order, so their keys are visited sorted.
func entries(m any) iter.Seq2[string, any] {
	switch x := m.(type) {
	case Container:
		return x.All()

	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))

		return func(yield func(string, any) bool) {
			for _, k := range keys {
				if !yield(k, x[k]) {
					return
				}
			}
		}
	}

	rv := reflect.ValueOf(m)
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})

	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(k.String(), rv.MapIndex(k).Interface()) {
				return
			}
		}
	}
}

// lookup reads key from a mapping without creating it.
func lookup(m any, key string) (any, bool) {
	switch x := m.(type) {
	case Container:
		return x.Lookup(key)

	case map[string]any:
		v, ok := x[key]
		return v, ok
	}

	rv := reflect.ValueOf(m)
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}

	return v.Interface(), true
}

// length returns the number of entries of a mapping.
func length(m any) int {
	if c, ok := m.(Container); ok {
		return c.Len()
	}

	return reflect.ValueOf(m).Len()
}
