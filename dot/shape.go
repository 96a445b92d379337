package dot

import "reflect"

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

type ShapeEnum int

const (
	_ ShapeEnum = iota // skip zero value, it marks an unclassified value

	ShapeMapping
	ShapeSequence
	ShapeScalar

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Shape classifies value the way the conversion helpers see it.
//
// Mappings are containers of this package and Go maps with a string key kind.
// Sequences are Go slices and arrays. Everything else, nil pointers included, is a scalar.
func Shape(value any) ShapeEnum {
	switch x := value.(type) {
	case nil:
		return ShapeScalar
	case *Dict:
		if x == nil {
			return ShapeScalar
		}
		return ShapeMapping
	case *AutoDict:
		if x == nil {
			return ShapeScalar
		}
		return ShapeMapping
	case map[string]any:
		return ShapeMapping
	case []any:
		return ShapeSequence
	case Container:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ShapeScalar
		}
		return ShapeMapping
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return ShapeMapping
		}
	case reflect.Slice, reflect.Array:
		return ShapeSequence
	}

	return ShapeScalar
}

// IsMapping reports whether value is mapping-like: a Container or a string-keyed Go map.
func IsMapping(value any) bool {
	return Shape(value) == ShapeMapping
}
