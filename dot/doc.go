// Package dot provides dictionary containers whose entries are reachable both by key and by
// attribute-style name, with recursive wrapping of nested mappings and sequences.
//
// Two containers implement Container:
//   - Dict: ordered string-keyed storage with attribute access, copies, merges and a flat Update
//   - AutoDict: a Dict variant whose missing keys spring into existence as empty AutoDicts
//     and whose Update merges nested mappings field by field
//
// # Conversion
//
// ToDot wraps plain values into containers and ToPlain unwraps them back into map[string]any.
// Both walk nested mappings and sequences and always build fresh containers and sequences,
// while scalar leaves and other objects are shared by reference:
//
//	d := dot.MustNew(map[string]any{"h": []any{map[string]any{"k": 1}}})
//	d.ToMap(true) // map[string]any{"h": []any{map[string]any{"k": 1}}}
//
// # Attribute access
//
// Attr, SetAttr and DelAttr translate names into keys. Names matching a method of the
// container type (compared case-insensitively) are read-only, so a key like "update" can only
// be written with Set.
//
// # Auto-vivification
//
//	a := &dot.AutoDict{}
//	a.Child("server").Child("tls").Set("enabled", true)
//	dot.SetPath(a, "server.port", 8080)
//
// # Operators
//
// The merge operators of a mapping are spelled as methods:
//   - Merge: a | b
//   - ReverseMerge: b | a
//   - MergeInPlace: a |= b
//   - AutoDict.Add: a + b, where an empty AutoDict is the additive identity
//
// An operand that is not mapping-like yields ErrUnsupportedOperation.
package dot
