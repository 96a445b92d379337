package dot

import (
	"errors"
	"fmt"

	"dotdict/internal/match"
)

var (
	ErrNoSuchAttribute         = errors.New("no such attribute")
	ErrReadOnlyAttribute       = errors.New("attribute is read-only")
	ErrUnsupportedConstruction = errors.New("unsupported construction arguments")
	ErrUnsupportedOperation    = errors.New("unsupported operand")
	ErrNoSuchKey               = errors.New("no such key")
	ErrInvalidPath             = errors.New("invalid path")
	ErrCircularReference       = errors.New("circular reference")
)

// AttributeError reports a failed attribute read, write or delete.
// Err is ErrNoSuchAttribute or ErrReadOnlyAttribute.
type AttributeError struct {
	Type string // container type name, e.g. "Dict"
	Name string
	Err  error

	// Suggestion is the closest existing key for a missing attribute, if any.
	Suggestion string
}

func (e *AttributeError) Error() string {
	if errors.Is(e.Err, ErrReadOnlyAttribute) {
		return fmt.Sprintf("%s object attribute %q is read-only", e.Type, e.Name)
	}

	if e.Suggestion != "" {
		return fmt.Sprintf("%s object has no attribute %q; did you mean %q?", e.Type, e.Name, e.Suggestion)
	}

	return fmt.Sprintf("%s object has no attribute %q", e.Type, e.Name)
}

func missingAttr(typ, name string, keys []string) *AttributeError {
	suggestion, _ := match.Suggest(name, keys)

	return &AttributeError{Type: typ, Name: name, Err: ErrNoSuchAttribute, Suggestion: suggestion}
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
