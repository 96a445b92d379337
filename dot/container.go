package dot

import (
	"iter"
	"reflect"
	"strings"
)

// Container is the behavior shared by Dict and AutoDict.
type Container interface {
	Len() int
	Keys() []string
	Values() []any
	Has(key string) bool
	Lookup(key string) (any, bool)
	Set(key string, value any)
	Delete(key string) bool
	Clear()
	All() iter.Seq2[string, any]

	Attr(name string) (any, error)
	SetAttr(name string, value any) error
	DelAttr(name string) error

	Update(args ...any) error
	ToMap(force bool) map[string]any
}

// Ptr is satisfied by pointers to the container types, e.g. *Dict for E = Dict.
// Generic helpers use it to build new containers of the caller's own type.
type Ptr[E any] interface {
	*E
	Container
}

var (
	_ Container = (*Dict)(nil)
	_ Container = (*AutoDict)(nil)
)

// typeName returns the bare type name behind P, e.g. "Dict" for *Dict.
func typeName[P any]() string {
	t := reflect.TypeFor[P]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}

// isMember reports whether name collides with a method of P, ignoring case.
func isMember[P any](name string) bool {
	t := reflect.TypeFor[P]()
	for i := range t.NumMethod() {
		if strings.EqualFold(t.Method(i).Name, name) {
			return true
		}
	}

	return false
}

func setAttr[P Container](c P, name string, value any) error {
	if isMember[P](name) {
		return &AttributeError{Type: typeName[P](), Name: name, Err: ErrReadOnlyAttribute}
	}

	c.Set(name, value)

	return nil
}

func delAttr[P Container](c P, name string) error {
	if !c.Delete(name) {
		return missingAttr(typeName[P](), name, c.Keys())
	}

	return nil
}
