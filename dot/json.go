package dot

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes d as a JSON object in insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	return marshalJSON(d)
}

// UnmarshalJSON replaces the content of d with a JSON object, keeping document order.
// Nested objects become *Dict, arrays []any, integers int64 and other numbers float64.
func (d *Dict) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(d, data)
}

// MarshalJSON encodes a as a JSON object in insertion order.
func (a *AutoDict) MarshalJSON() ([]byte, error) {
	return marshalJSON(a)
}

// UnmarshalJSON replaces the content of a with a JSON object, see Dict.UnmarshalJSON.
func (a *AutoDict) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(a, data)
}

func marshalJSON(c Container) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	if err := writeJSON(stream, c, map[uintptr]bool{}); err != nil {
		return nil, err
	}

	if stream.Error != nil {
		return nil, stream.Error
	}

	return slices.Clone(stream.Buffer()), nil
}

// writeJSON writes mappings and sequences itself, so a container met again below itself is
// reported as ErrCircularReference. Everything else goes through jsoniter.
func writeJSON(stream *jsoniter.Stream, value any, active map[uintptr]bool) error {
	shape := Shape(value)
	if shape == ShapeScalar || opaque(value) {
		stream.WriteVal(value)
		return stream.Error
	}

	if isNilCollection(value) {
		stream.WriteNil()
		return nil
	}

	if p, ok := identity(value); ok {
		if active[p] {
			return fmt.Errorf("%w: %T", ErrCircularReference, value)
		}

		active[p] = true
		defer delete(active, p)
	}

	if shape == ShapeMapping {
		stream.WriteObjectStart()

		first := true
		for k, v := range entries(value) {
			if !first {
				stream.WriteMore()
			}

			stream.WriteObjectField(k)
			if err := writeJSON(stream, v, active); err != nil {
				return err
			}

			first = false
		}

		stream.WriteObjectEnd()

		return nil
	}

	rv := reflect.ValueOf(value)

	stream.WriteArrayStart()

	for i := range rv.Len() {
		if i > 0 {
			stream.WriteMore()
		}

		if err := writeJSON(stream, rv.Index(i).Interface(), active); err != nil {
			return err
		}
	}

	stream.WriteArrayEnd()

	return nil
}

// opaque reports byte slices, which both codecs encode as a whole rather than element-wise.
func opaque(value any) bool {
	t := reflect.TypeOf(value)
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func isNilCollection(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return rv.IsNil()
	}

	return false
}

func unmarshalJSON[E any, P Ptr[E]](dst P, data []byte) error {
	it := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(it)

	if next := it.WhatIsNext(); next != jsoniter.ObjectValue {
		return fmt.Errorf("dot: cannot unmarshal JSON %s into %s", jsonKind(next), typeName[P]())
	}

	dst.Clear()
	readObject[E](it, dst)

	// A truncated document stops with io.EOF; a complete one never reads past its closing brace.
	if it.Error != nil {
		return fmt.Errorf("dot: failed to parse JSON: %w", it.Error)
	}

	it.WhatIsNext()
	if !errors.Is(it.Error, io.EOF) {
		return errors.New("dot: unexpected data after JSON object")
	}

	return nil
}

func readObject[E any, P Ptr[E]](it *jsoniter.Iterator, dst P) {
	it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		dst.Set(key, readValue[E, P](it))
		return it.Error == nil
	})
}

func readValue[E any, P Ptr[E]](it *jsoniter.Iterator) any {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
		child := P(new(E))
		readObject[E](it, child)

		return child

	case jsoniter.ArrayValue:
		items := []any{}
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, readValue[E, P](it))
			return it.Error == nil
		})

		return items

	case jsoniter.StringValue:
		return it.ReadString()

	case jsoniter.NumberValue:
		n := it.ReadNumber()
		if i, err := n.Int64(); err == nil {
			return i
		}

		f, err := n.Float64()
		if err != nil {
			it.ReportError("read number", err.Error())
		}

		return f

	case jsoniter.BoolValue:
		return it.ReadBool()

	case jsoniter.NilValue:
		it.ReadNil()
		return nil
	}

	it.ReportError("read value", "unexpected JSON token")

	return nil
}

func jsonKind(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.ObjectValue:
		return "object"
	}

	return "input"
}
