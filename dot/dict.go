package dot

// Dict is an insertion-ordered string-keyed map with attribute-style access.
// Its Update overwrites top-level keys; see AutoDict for the deep-merging variant.
//
// The zero value is an empty Dict ready to use.
type Dict struct {
	table
}

// New builds a Dict from at most one source (a mapping or a sequence of key/value pairs)
// plus any number of KV pairs. Every nested mapping becomes a *Dict and every nested sequence
// is copied.
func New(args ...any) (*Dict, error) {
	return build[Dict](args)
}

// MustNew is like New but panics on unsupported arguments.
func MustNew(args ...any) *Dict {
	d, err := New(args...)
	if err != nil {
		panic(err)
	}

	return d
}

// Attr returns the value under name, or an *AttributeError wrapping ErrNoSuchAttribute
// that suggests the closest existing key.
//
// Attr only reads keys: Attr("keys") returns the value stored under "keys", never the Keys
// method. Such names are read-only for SetAttr, so they can only be stored with Set.
func (d *Dict) Attr(name string) (any, error) {
	if v, ok := d.Lookup(name); ok {
		return v, nil
	}

	return nil, missingAttr(typeName[*Dict](), name, d.keys)
}

// SetAttr stores value under name unless name is a method of Dict.
func (d *Dict) SetAttr(name string, value any) error {
	return setAttr(d, name, value)
}

// DelAttr removes name, failing with ErrNoSuchAttribute when it is absent.
func (d *Dict) DelAttr(name string) error {
	return delAttr(d, name)
}

// Copy returns a new Dict sharing d's values.
func (d *Dict) Copy() *Dict {
	return shallowCopy(d)
}

// DeepCopy returns a fully independent copy of d. Cycles are reproduced in the copy.
func (d *Dict) DeepCopy() *Dict {
	return deepCopyContainer(d, memo{})
}

// Update converts its arguments like New and assigns every resulting top-level entry to d.
// Nested mappings replace the existing ones wholesale.
func (d *Dict) Update(args ...any) error {
	other, err := New(args...)
	if err != nil {
		return err
	}

	for k, v := range other.All() {
		d.Set(k, v)
	}

	return nil
}

// Merge returns a copy of d updated with other (d | other). Neither operand is modified.
func (d *Dict) Merge(other any) (*Dict, error) {
	return merge(d, other)
}

// ReverseMerge returns other updated with d (other | d). Neither operand is modified.
func (d *Dict) ReverseMerge(other any) (*Dict, error) {
	return reverseMerge(d, other)
}

// MergeInPlace updates d with other (d |= other).
func (d *Dict) MergeInPlace(other any) error {
	return d.Update(other)
}

// ToMap exports d as plain maps and fresh sequences. With force unset, nested values that are
// already map[string]any are reused instead of copied.
func (d *Dict) ToMap(force bool) map[string]any {
	m, _ := ToPlain(d, force).(map[string]any)
	return m
}

// Equal reports whether d and other hold the same entries, see Equal.
func (d *Dict) Equal(other any) bool {
	return Equal(d, other)
}

func (d *Dict) String() string {
	if d == nil {
		return "<nil>"
	}

	return format(d)
}
