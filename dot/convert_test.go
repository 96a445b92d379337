package dot

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  ShapeEnum
	}{
		{"nil", nil, ShapeScalar},
		{"int", 1, ShapeScalar},
		{"string", "s", ShapeScalar},
		{"struct", struct{}{}, ShapeScalar},
		{"plain map", map[string]any{}, ShapeMapping},
		{"typed map", map[string]int{}, ShapeMapping},
		{"int keyed map", map[int]any{}, ShapeScalar},
		{"slice", []any{}, ShapeSequence},
		{"typed slice", []int{1}, ShapeSequence},
		{"array", [2]int{}, ShapeSequence},
		{"dict", &Dict{}, ShapeMapping},
		{"auto dict", &AutoDict{}, ShapeMapping},
		{"nil dict", (*Dict)(nil), ShapeScalar},
		{"nil auto dict", (*AutoDict)(nil), ShapeScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shape(tt.value))
		})
	}

	assert.Equal(t, "ShapeMapping", ShapeMapping.String())
	assert.Equal(t, "ShapeEnum(0)", ShapeEnum(0).String())
	assert.Equal(t, 4, ShapeTotal)
}

func TestToDotWrapsNested(t *testing.T) {
	src := map[string]any{
		"h": map[string]any{"k": 1},
		"l": []any{map[string]any{"x": 1}, 2},
	}

	d, ok := ToDot[Dict](src, false).(*Dict)
	require.True(t, ok)

	h, _ := d.Lookup("h")
	assert.IsType(t, &Dict{}, h)

	l, _ := d.Lookup("l")
	list, ok := l.([]any)
	require.True(t, ok, spew.Sdump(l))
	assert.IsType(t, &Dict{}, list[0])
	assert.Equal(t, 2, list[1])

	src["l"].([]any)[1] = 3
	assert.Equal(t, 2, list[1], "sequences must not be aliased")
}

func TestToDotForce(t *testing.T) {
	d := MustNew(map[string]any{"a": 1})

	assert.Same(t, d, ToDot[Dict](d, false))

	forced, ok := ToDot[Dict](d, true).(*Dict)
	require.True(t, ok)
	assert.NotSame(t, d, forced)
	assert.True(t, d.Equal(forced))

	auto, ok := ToDot[AutoDict](d, false).(*AutoDict)
	require.True(t, ok, "a Dict is not an AutoDict and must be converted")
	assert.True(t, auto.Equal(d))
}

func TestToDotSequences(t *testing.T) {
	ints := []int{1, 2}
	got := ToDot[Dict](ints, false)
	assert.Equal(t, []int{1, 2}, got)

	ints[0] = 9
	assert.Equal(t, []int{1, 2}, got)

	typed := []map[string]int{{"a": 1}}
	converted, ok := ToDot[Dict](typed, false).([]any)
	require.True(t, ok, "typed sequences that cannot hold containers fall back to []any")
	assert.IsType(t, &Dict{}, converted[0])

	arr, ok := ToDot[Dict]([2]any{map[string]any{"a": 1}, "b"}, false).([2]any)
	require.True(t, ok)
	assert.IsType(t, &Dict{}, arr[0])
	assert.Equal(t, "b", arr[1])

	assert.Nil(t, ToDot[Dict]([]any(nil), true))
}

func TestToDotSharesScalars(t *testing.T) {
	p := &struct{ N int }{N: 1}

	assert.Same(t, p, ToDot[Dict](p, true))

	d := MustNew(map[string]any{"p": p})
	v, _ := d.Lookup("p")
	assert.Same(t, p, v)
}

func TestToPlain(t *testing.T) {
	src := map[string]any{
		"a": 1,
		"h": map[string]any{"k": []any{1, map[string]any{"x": 2}}},
	}

	plain, ok := ToPlain(MustNew(src), true).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, src, plain)

	assert.NotEqual(t,
		reflect.ValueOf(src["h"]).Pointer(),
		reflect.ValueOf(plain["h"]).Pointer(),
	)
}

func TestToPlainForce(t *testing.T) {
	inner := map[string]any{"a": 1}

	d := &Dict{}
	d.Set("m", inner)

	shared := d.ToMap(false)
	assert.Equal(t, reflect.ValueOf(inner).Pointer(), reflect.ValueOf(shared["m"]).Pointer())

	copied := d.ToMap(true)
	assert.NotEqual(t, reflect.ValueOf(inner).Pointer(), reflect.ValueOf(copied["m"]).Pointer())
	assert.Equal(t, inner, copied["m"])

	assert.Equal(t, reflect.ValueOf(inner).Pointer(), reflect.ValueOf(ToPlain(inner, false)).Pointer())
}
