package dot

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// PathSegment is one step of a Path: a mapping key or a sequence index.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a value nested in mappings and sequences.
type Path struct {
	Segments []PathSegment
}

// ParsePath parses a dotted path string into a Path.
// Supports: "key", "nested.key", "items[0]", "items[0].name", "matrix[1][2]".
// Keys containing '.', '[' or ']' cannot be addressed by a path.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var segments []PathSegment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		}

		key, rest := part, ""
		if i := strings.IndexByte(part, '['); i >= 0 {
			key, rest = part[:i], part[i:]
		}

		if key == "" {
			return Path{}, fmt.Errorf("%w %q: index without key", ErrInvalidPath, path)
		}

		if strings.ContainsRune(key, ']') {
			return Path{}, fmt.Errorf("%w %q: unbalanced brackets in %q", ErrInvalidPath, path, part)
		}

		segments = append(segments, PathSegment{Key: key})

		for rest != "" {
			end := strings.IndexByte(rest, ']')
			if rest[0] != '[' || end < 0 {
				return Path{}, fmt.Errorf("%w %q: unbalanced brackets in %q", ErrInvalidPath, path, part)
			}

			index, err := strconv.Atoi(rest[1:end])
			if err != nil || index < 0 {
				return Path{}, fmt.Errorf("%w %q: invalid index %q", ErrInvalidPath, path, rest[1:end])
			}

			segments = append(segments, PathSegment{Index: index, IsIndex: true})
			rest = rest[end+1:]
		}
	}

	return Path{Segments: segments}, nil
}

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p.Segments {
		switch {
		case seg.IsIndex:
			b.WriteString("[" + strconv.Itoa(seg.Index) + "]")
		case i > 0:
			b.WriteString("." + seg.Key)
		default:
			b.WriteString(seg.Key)
		}
	}

	return b.String()
}

// GetPath reads the value at path below root. It never creates entries, even in an AutoDict.
func GetPath(root any, path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	cur := root
	for i, seg := range p.Segments {
		next, ok := step(cur, seg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, Path{Segments: p.Segments[:i+1]})
		}

		cur = next
	}

	return cur, nil
}

// SetPath assigns value at path below root. Missing keys on the way are created when the
// mapping that lacks them is an *AutoDict; anywhere else they fail with ErrNoSuchKey.
// The value is stored as is, like Set.
func SetPath(root Container, path string, value any) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}

	last := len(p.Segments) - 1
	cur := any(root)

	for i, seg := range p.Segments[:last] {
		next, ok := step(cur, seg)
		if !ok {
			auto, isAuto := cur.(*AutoDict)
			if seg.IsIndex || !isAuto {
				return fmt.Errorf("%w: %s", ErrNoSuchKey, Path{Segments: p.Segments[:i+1]})
			}

			next = auto.Get(seg.Key)
		}

		cur = next
	}

	if err := assign(cur, p.Segments[last], value); err != nil {
		return fmt.Errorf("%w: %s", err, p)
	}

	return nil
}

func step(cur any, seg PathSegment) (any, bool) {
	if seg.IsIndex {
		if Shape(cur) != ShapeSequence {
			return nil, false
		}

		rv := reflect.ValueOf(cur)
		if seg.Index >= rv.Len() {
			return nil, false
		}

		return rv.Index(seg.Index).Interface(), true
	}

	if Shape(cur) != ShapeMapping {
		return nil, false
	}

	return lookup(cur, seg.Key)
}

func assign(cur any, seg PathSegment, value any) error {
	if seg.IsIndex {
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Slice {
			return ErrNoSuchKey
		}

		if seg.Index >= rv.Len() {
			return ErrNoSuchKey
		}

		elemType := rv.Type().Elem()
		if !assignable(value, elemType) {
			return fmt.Errorf("%w: cannot store %T in %s", ErrUnsupportedOperation, value, rv.Type())
		}

		rv.Index(seg.Index).Set(valueFor(value, elemType))

		return nil
	}

	switch x := cur.(type) {
	case Container:
		if !IsMapping(x) {
			return ErrNoSuchKey
		}

		x.Set(seg.Key, value)

		return nil

	case map[string]any:
		if x == nil {
			return ErrNoSuchKey
		}

		x[seg.Key] = value

		return nil
	}

	rv := reflect.ValueOf(cur)
	if Shape(cur) != ShapeMapping || rv.IsNil() {
		return ErrNoSuchKey
	}

	elemType := rv.Type().Elem()
	if !assignable(value, elemType) {
		return fmt.Errorf("%w: cannot store %T in %s", ErrUnsupportedOperation, value, rv.Type())
	}

	rv.SetMapIndex(reflect.ValueOf(seg.Key).Convert(rv.Type().Key()), valueFor(value, elemType))

	return nil
}
