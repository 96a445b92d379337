package dot

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes d as a YAML mapping in insertion order.
func (d *Dict) MarshalYAML() (any, error) {
	return marshalYAML(d)
}

// UnmarshalYAML replaces the content of d with a YAML mapping, keeping document order.
// Aliases and merge keys are resolved; nested mappings become *Dict and sequences []any.
func (d *Dict) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAML(d, value)
}

// MarshalYAML encodes a as a YAML mapping in insertion order.
func (a *AutoDict) MarshalYAML() (any, error) {
	return marshalYAML(a)
}

// UnmarshalYAML replaces the content of a with a YAML mapping, see Dict.UnmarshalYAML.
func (a *AutoDict) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAML(a, value)
}

func marshalYAML(c Container) (*yaml.Node, error) {
	return encodeYAML(c, map[uintptr]bool{})
}

// encodeYAML builds nodes for mappings and sequences itself, so a container met again below
// itself is reported as ErrCircularReference. Everything else is encoded by yaml.v3.
func encodeYAML(value any, active map[uintptr]bool) (*yaml.Node, error) {
	shape := Shape(value)
	if shape == ShapeScalar || opaque(value) || isNilCollection(value) {
		var node yaml.Node
		if err := node.Encode(value); err != nil {
			return nil, fmt.Errorf("dot: failed to encode %T: %w", value, err)
		}

		return &node, nil
	}

	if p, ok := identity(value); ok {
		if active[p] {
			return nil, fmt.Errorf("%w: %T", ErrCircularReference, value)
		}

		active[p] = true
		defer delete(active, p)
	}

	if shape == ShapeMapping {
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for k, v := range entries(value) {
			child, err := encodeYAML(v, active)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		}

		return node, nil
	}

	rv := reflect.ValueOf(value)
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for i := range rv.Len() {
		child, err := encodeYAML(rv.Index(i).Interface(), active)
		if err != nil {
			return nil, err
		}

		node.Content = append(node.Content, child)
	}

	return node, nil
}

func unmarshalYAML[E any, P Ptr[E]](dst P, node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = resolveAlias(node.Content[0])
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("dot: cannot unmarshal YAML %s at line %d into %s", node.ShortTag(), node.Line, typeName[P]())
	}

	dst.Clear()

	return fillYAML[E](dst, node)
}

func fillYAML[E any, P Ptr[E]](dst P, node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := resolveAlias(node.Content[i]), node.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("dot: unsupported YAML mapping key at line %d", key.Line)
		}

		if key.ShortTag() == "!!merge" {
			if err := mergeYAML[E](dst, value); err != nil {
				return err
			}

			continue
		}

		decoded, err := decodeYAML[E, P](value)
		if err != nil {
			return err
		}

		dst.Set(key.Value, decoded)
	}

	return nil
}

// mergeYAML applies a "<<" merge key: merged entries never override explicit ones.
func mergeYAML[E any, P Ptr[E]](dst P, value *yaml.Node) error {
	value = resolveAlias(value)

	sources := []*yaml.Node{value}
	if value.Kind == yaml.SequenceNode {
		sources = value.Content
	}

	for _, source := range sources {
		source = resolveAlias(source)
		if source.Kind != yaml.MappingNode {
			return fmt.Errorf("dot: YAML merge at line %d expects a mapping", source.Line)
		}

		merged := P(new(E))
		if err := fillYAML[E](merged, source); err != nil {
			return err
		}

		for k, v := range merged.All() {
			if !dst.Has(k) {
				dst.Set(k, v)
			}
		}
	}

	return nil
}

func decodeYAML[E any, P Ptr[E]](node *yaml.Node) (any, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.MappingNode:
		child := P(new(E))
		if err := fillYAML[E](child, node); err != nil {
			return nil, err
		}

		return child, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, elem := range node.Content {
			decoded, err := decodeYAML[E, P](elem)
			if err != nil {
				return nil, err
			}

			items = append(items, decoded)
		}

		return items, nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("dot: failed to decode YAML at line %d: %w", node.Line, err)
	}

	return value, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
