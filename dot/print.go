package dot

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// format renders value as {"key": value, ...} and [elem, ...] in iteration order.
// A mapping or slice that contains itself is printed as {...} or [...] at the point of recursion.
func format(value any) string {
	var b strings.Builder
	writeValue(&b, value, map[uintptr]bool{})

	return b.String()
}

func writeValue(b *strings.Builder, value any, active map[uintptr]bool) {
	shape := Shape(value)
	if shape == ShapeScalar {
		if s, ok := value.(string); ok {
			b.WriteString(strconv.Quote(s))
		} else {
			fmt.Fprint(b, value)
		}

		return
	}

	open, closing, recursion := "[", "]", "[...]"
	if shape == ShapeMapping {
		open, closing, recursion = "{", "}", "{...}"
	}

	if p, ok := identity(value); ok {
		if active[p] {
			b.WriteString(recursion)
			return
		}

		active[p] = true
		defer delete(active, p)
	}

	b.WriteString(open)

	if shape == ShapeMapping {
		i := 0
		for k, v := range entries(value) {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			writeValue(b, v, active)
			i++
		}
	} else {
		rv := reflect.ValueOf(value)
		for i := range rv.Len() {
			if i > 0 {
				b.WriteString(", ")
			}

			writeValue(b, rv.Index(i).Interface(), active)
		}
	}

	b.WriteString(closing)
}
