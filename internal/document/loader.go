package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"dotdict/dot"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatDump Format = "dump"
)

var ErrUnknownFormat = errors.New("unknown document format")

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// FormatOf derives the document format from the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// LoadFile loads and parses the document at path.
func LoadFile(path string) (*dot.AutoDict, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses data in the given format. Empty YAML input yields an empty document.
func Parse(data []byte, format Format) (*dot.AutoDict, error) {
	doc := &dot.AutoDict{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}

	case FormatJSON:
		if err := doc.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: cannot parse %q", ErrUnknownFormat, format)
	}

	return doc, nil
}

// Marshal serializes c in the given format.
func Marshal(c dot.Container, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML document: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML document: %w", err)
		}

		return buf.Bytes(), nil

	case FormatJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON document: %w", err)
		}

		// jsoniter writes Marshaler output verbatim, so indent the whole document afterwards.
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent JSON document: %w", err)
		}

		buf.WriteByte('\n')

		return buf.Bytes(), nil

	case FormatDump:
		return []byte(dumper.Sdump(c.ToMap(true))), nil
	}

	return nil, fmt.Errorf("%w: cannot marshal %q", ErrUnknownFormat, format)
}

// WriteFile writes c to path in the format matching its extension.
func WriteFile(c dot.Container, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(c, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}
