package dot

import "fmt"

// AutoDict is a Dict variant that creates missing keys on read and merges nested mappings
// on Update.
//
//	a := &AutoDict{}
//	a.Child("b").Set("c", "x") // a == {"b": {"c": "x"}}
//
// The zero value is an empty AutoDict ready to use.
type AutoDict struct {
	table
}

// NewAuto builds an AutoDict with the same arguments as New.
// Every nested mapping becomes an *AutoDict.
func NewAuto(args ...any) (*AutoDict, error) {
	return build[AutoDict](args)
}

// MustNewAuto is like NewAuto but panics on unsupported arguments.
func MustNewAuto(args ...any) *AutoDict {
	a, err := NewAuto(args...)
	if err != nil {
		panic(err)
	}

	return a
}

// Get returns the value under key. A missing key is first bound to a new empty AutoDict.
func (a *AutoDict) Get(key string) any {
	if v, ok := a.Lookup(key); ok {
		return v
	}

	child := &AutoDict{}
	a.Set(key, child)

	return child
}

// Child is Get for keys holding nested AutoDicts. It panics if key holds anything else.
func (a *AutoDict) Child(key string) *AutoDict {
	v := a.Get(key)

	child, ok := v.(*AutoDict)
	if !ok {
		panic(fmt.Sprintf("dot: AutoDict key %q holds %T, not *AutoDict", key, v))
	}

	return child
}

// Attr is Get; it never fails.
func (a *AutoDict) Attr(name string) (any, error) {
	return a.Get(name), nil
}

// SetAttr stores value under name unless name is a method of AutoDict.
func (a *AutoDict) SetAttr(name string, value any) error {
	return setAttr(a, name, value)
}

// DelAttr removes name, failing with ErrNoSuchAttribute when it is absent.
func (a *AutoDict) DelAttr(name string) error {
	return delAttr(a, name)
}

// Copy returns a new AutoDict sharing a's values.
func (a *AutoDict) Copy() *AutoDict {
	return shallowCopy(a)
}

// DeepCopy returns a fully independent copy of a. Cycles are reproduced in the copy.
func (a *AutoDict) DeepCopy() *AutoDict {
	return deepCopyContainer(a, memo{})
}

// Add returns other when a is empty (a + other), which makes a freshly created level act as
// the additive identity:
//
//	sum, _ := a.Child("x").Add(1) // 1
//
// A non-empty a yields ErrUnsupportedOperation.
func (a *AutoDict) Add(other any) (any, error) {
	if a.Len() == 0 {
		return other, nil
	}

	return nil, fmt.Errorf("%w: non-empty AutoDict + %T", ErrUnsupportedOperation, other)
}

// Update converts its arguments like NewAuto and merges them into a. A key whose current and
// incoming values are both mappings is merged recursively through the current value's own
// Update; any other key is overwritten.
func (a *AutoDict) Update(args ...any) error {
	other, err := NewAuto(args...)
	if err != nil {
		return err
	}

	for k, v := range other.All() {
		cur, exists := a.Lookup(k)
		if !exists || !mergeable(cur) || !IsMapping(v) {
			a.Set(k, v)
			continue
		}

		if err := mergeInto(cur, v); err != nil {
			return fmt.Errorf("failed to update key %q: %w", k, err)
		}
	}

	return nil
}

// Merge returns a copy of a updated with other (a | other). Neither operand is modified.
func (a *AutoDict) Merge(other any) (*AutoDict, error) {
	return merge(a, other)
}

// ReverseMerge returns other updated with a (other | a). Neither operand is modified.
func (a *AutoDict) ReverseMerge(other any) (*AutoDict, error) {
	return reverseMerge(a, other)
}

// MergeInPlace updates a with other (a |= other).
func (a *AutoDict) MergeInPlace(other any) error {
	return a.Update(other)
}

// ToMap exports a as plain maps and fresh sequences, see Dict.ToMap.
func (a *AutoDict) ToMap(force bool) map[string]any {
	m, _ := ToPlain(a, force).(map[string]any)
	return m
}

// Equal reports whether a and other hold the same entries, see Equal.
func (a *AutoDict) Equal(other any) bool {
	return Equal(a, other)
}

func (a *AutoDict) String() string {
	if a == nil {
		return "<nil>"
	}

	return format(a)
}

// mergeable reports whether a nested mapping can absorb entries in place.
// Typed Go maps cannot hold containers, so they are overwritten instead.
func mergeable(m any) bool {
	switch x := m.(type) {
	case Container:
		return IsMapping(x)
	case map[string]any:
		return x != nil
	}

	return false
}

func mergeInto(dst, src any) error {
	switch d := dst.(type) {
	case Container:
		return d.Update(src)

	case map[string]any:
		for k, v := range entries(src) {
			d[k] = v
		}
	}

	return nil
}
