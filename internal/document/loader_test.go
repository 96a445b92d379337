package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotdict/dot"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"dir/config.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatOf(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	_, err := FormatOf("config.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParse(t *testing.T) {
	yamlDoc, err := Parse([]byte("server:\n  host: a\n  port: 80\n"), FormatYAML)
	require.NoError(t, err)

	jsonDoc, err := Parse([]byte(`{"server":{"port":8080,"tls":true}}`), FormatJSON)
	require.NoError(t, err)

	require.NoError(t, yamlDoc.Update(jsonDoc))

	assert.Equal(t, []string{"host", "port", "tls"}, yamlDoc.Child("server").Keys())

	port, err := dot.GetPath(yamlDoc, "server.port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	empty, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = Parse([]byte("- 1\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"server":{"port":80`), FormatJSON)
	assert.Error(t, err, "truncated document")

	_, err = Parse([]byte("{}"), FormatDump)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshal(t *testing.T) {
	doc := dot.MustNewAuto([]dot.Pair{dot.KV("b", 1), dot.KV("a", map[string]any{"k": "v"})})

	data, err := Marshal(doc, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "b: 1\na:\n  k: v\n", string(data))

	data, err = Marshal(doc, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": {\n    \"k\": \"v\"\n  }\n}\n", string(data))

	data, err = Marshal(doc, FormatDump)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k": (string) (len=1) "v"`)

	_, err = Marshal(doc, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(src, []byte("z: 1\na:\n  - x: 1\n"), 0644))

	doc, err := LoadFile(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, doc.Keys())

	dst := filepath.Join(dir, "out.json")
	require.NoError(t, WriteFile(doc, dst))

	back, err := LoadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, back.Keys())

	x, err := dot.GetPath(back, "a[0].x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), x)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(filepath.Join(dir, "in.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.ErrorIs(t, WriteFile(doc, filepath.Join(dir, "out.ini")), ErrUnknownFormat)
}
