package dot

import (
	"fmt"
	"maps"
	"reflect"
)

// memo maps a source container, map or slice to its copy.
// A copy is registered before its children are copied, which keeps cycles finite.
type memo map[any]any

// ref identifies a map or slice; they are not comparable themselves.
type ref struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

func shallowCopy[E any, P Ptr[E]](src P) P {
	out := P(new(E))
	for k, v := range src.All() {
		out.Set(k, v)
	}

	return out
}

func deepCopyContainer[E any, P Ptr[E]](src P, seen memo) P {
	if c, ok := seen[src]; ok {
		return c.(P)
	}

	out := P(new(E))
	seen[src] = out

	for k, v := range src.All() {
		out.Set(k, deepCopy(v, seen))
	}

	return out
}

// deepCopy duplicates containers, maps, slices and arrays. Other values are shared.
func deepCopy(value any, seen memo) any {
	switch x := value.(type) {
	case *Dict:
		if x == nil {
			return x
		}
		return deepCopyContainer(x, seen)

	case *AutoDict:
		if x == nil {
			return x
		}
		return deepCopyContainer(x, seen)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return value
		}

		key := ref{typ: rv.Type(), ptr: rv.Pointer()}
		if c, ok := seen[key]; ok {
			return c
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		seen[key] = out.Interface()

		elemType := rv.Type().Elem()
		for it := rv.MapRange(); it.Next(); {
			out.SetMapIndex(it.Key(), valueFor(deepCopy(it.Value().Interface(), seen), elemType))
		}

		return out.Interface()

	case reflect.Slice:
		if rv.IsNil() {
			return value
		}

		n := rv.Len()
		key := ref{typ: rv.Type(), ptr: rv.Pointer(), n: n}
		if n > 0 {
			if c, ok := seen[key]; ok {
				return c
			}
		}

		out := reflect.MakeSlice(rv.Type(), n, n)
		if n > 0 {
			seen[key] = out.Interface()
		}

		copyElems(out, rv, seen)

		return out.Interface()

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		copyElems(out, rv, seen)

		return out.Interface()
	}

	return value
}

func copyElems(dst, src reflect.Value, seen memo) {
	elemType := src.Type().Elem()
	for i := range src.Len() {
		dst.Index(i).Set(valueFor(deepCopy(src.Index(i).Interface(), seen), elemType))
	}
}

func merge[E any, P Ptr[E]](self P, other any) (P, error) {
	if !IsMapping(other) {
		return nil, fmt.Errorf("%w: %s | %T", ErrUnsupportedOperation, typeName[P](), other)
	}

	out := shallowCopy[E](self)
	detach(out, other)

	if err := out.Update(other); err != nil {
		return nil, err
	}

	return out, nil
}

func reverseMerge[E any, P Ptr[E]](self P, other any) (P, error) {
	if !IsMapping(other) {
		return nil, fmt.Errorf("%w: %T | %s", ErrUnsupportedOperation, other, typeName[P]())
	}

	var out P
	if same, ok := other.(P); ok {
		out = shallowCopy[E](same)
		detach(out, self)
	} else {
		out = fromMapping[E, P](other)
	}

	if err := out.Update(self); err != nil {
		return nil, err
	}

	return out, nil
}

// detach replaces the nested mappings of dst that an AutoDict update with src would merge
// into by shallow copies, so the update cannot reach values dst shares with another container.
func detach(dst Container, src any) {
	if _, deep := dst.(*AutoDict); !deep {
		return
	}

	for k, v := range entries(src) {
		if !IsMapping(v) {
			continue
		}

		switch cur, _ := dst.Lookup(k); x := cur.(type) {
		case *AutoDict:
			if x == nil {
				continue
			}

			cp := x.Copy()
			dst.Set(k, cp)
			detach(cp, v)

		case *Dict:
			if x != nil {
				dst.Set(k, x.Copy())
			}

		case map[string]any:
			if x != nil {
				dst.Set(k, maps.Clone(x))
			}
		}
	}
}
