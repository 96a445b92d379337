package dot

import (
	"fmt"
	"iter"
	"reflect"
)

// Pair is a single key/value entry. Pairs passed directly to New, NewAuto or Update act as
// named arguments and are applied after the positional source.
type Pair struct {
	Key   string
	Value any
}

// KV returns the pair key: value.
func KV(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// build creates a *E from construction arguments: at most one positional source (a mapping or
// a sequence of pairs) followed by any number of Pair arguments.
func build[E any, P Ptr[E]](args []any) (P, error) {
	var (
		source  any
		sources int
		named   []Pair
	)

	for _, arg := range args {
		if p, ok := arg.(Pair); ok {
			named = append(named, p)
			continue
		}

		source = arg
		sources++
	}

	if sources > 1 {
		return nil, fmt.Errorf("%w for %s: expected at most 1 source, got %d",
			ErrUnsupportedConstruction, typeName[P](), sources)
	}

	out := P(new(E))

	if sources == 1 {
		pairs, ok := pairsOf(source)
		if !ok {
			return nil, fmt.Errorf("%w for %s: %T", ErrUnsupportedConstruction, typeName[P](), source)
		}

		for _, p := range pairs {
			out.Set(p.Key, ToDot[E, P](p.Value, true))
		}
	}

	for _, p := range named {
		out.Set(p.Key, ToDot[E, P](p.Value, true))
	}

	return out, nil
}

// pairsOf lists the entries of a positional construction source.
// Accepted: mappings, []Pair, iter.Seq2[string, any], and slices or arrays whose elements are
// Pairs or two-element sequences starting with a string key.
func pairsOf(source any) ([]Pair, bool) {
	if IsMapping(source) {
		var out []Pair
		for k, v := range entries(source) {
			out = append(out, Pair{Key: k, Value: v})
		}

		return out, true
	}

	switch x := source.(type) {
	case []Pair:
		return x, true

	case iter.Seq2[string, any]:
		return collect(x), true

	case func(func(string, any) bool):
		return collect(x), true
	}

	rv := reflect.ValueOf(source)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]Pair, 0, rv.Len())
	for i := range rv.Len() {
		p, ok := pairOf(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}

		out = append(out, p)
	}

	return out, true
}

func pairOf(elem any) (Pair, bool) {
	if p, ok := elem.(Pair); ok {
		return p, true
	}

	rv := reflect.ValueOf(elem)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array || rv.Len() != 2 {
		return Pair{}, false
	}

	key, ok := rv.Index(0).Interface().(string)
	if !ok {
		return Pair{}, false
	}

	return Pair{Key: key, Value: rv.Index(1).Interface()}, true
}

func collect(seq iter.Seq2[string, any]) []Pair {
	var out []Pair
	for k, v := range seq {
		out = append(out, Pair{Key: k, Value: v})
	}

	return out
}
