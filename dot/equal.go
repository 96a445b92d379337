package dot

import "reflect"

// visit is a pair of mappings or sequences under comparison.
type visit struct {
	ta, tb reflect.Type
	pa, pb uintptr
}

// Equal reports whether a and b hold the same structure.
//
// Mappings are equal when they have the same keys with equal values, whatever their concrete
// type and insertion order. Sequences are compared element by element, whatever their concrete
// type. Other values are compared with reflect.DeepEqual.
func Equal(a, b any) bool {
	return equal(a, b, map[visit]bool{})
}

func equal(a, b any, seen map[visit]bool) bool {
	shape := Shape(a)
	if shape != Shape(b) {
		return false
	}

	switch shape {
	case ShapeMapping:
		if v, ok := visitOf(a, b); ok {
			if seen[v] {
				return true
			}
			seen[v] = true
		}

		if length(a) != length(b) {
			return false
		}

		for k, x := range entries(a) {
			y, ok := lookup(b, k)
			if !ok || !equal(x, y, seen) {
				return false
			}
		}

		return true

	case ShapeSequence:
		if v, ok := visitOf(a, b); ok {
			if seen[v] {
				return true
			}
			seen[v] = true
		}

		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ra.Len() != rb.Len() {
			return false
		}

		for i := range ra.Len() {
			if !equal(ra.Index(i).Interface(), rb.Index(i).Interface(), seen) {
				return false
			}
		}

		return true
	}

	return reflect.DeepEqual(a, b)
}

func visitOf(a, b any) (visit, bool) {
	pa, ok := identity(a)
	if !ok {
		return visit{}, false
	}

	pb, ok := identity(b)
	if !ok {
		return visit{}, false
	}

	return visit{ta: reflect.TypeOf(a), tb: reflect.TypeOf(b), pa: pa, pb: pb}, true
}

// identity returns the address behind a pointer, map or non-empty slice.
func identity(value any) (uintptr, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return rv.Pointer(), true
	case reflect.Slice:
		if rv.Len() > 0 {
			return rv.Pointer(), true
		}
	}

	return 0, false
}
