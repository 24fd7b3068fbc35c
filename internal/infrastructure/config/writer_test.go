package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[logging]")
	assert.Contains(t, string(content), "[typing]")
	assert.Contains(t, string(content), "caret_policy = 'after-replacement'")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestWriteDefault_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "# mine\n")

	err := WriteDefault(path)
	assert.ErrorIs(t, err, ErrConfigExists)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "# mine\n", string(content))
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[typing]
caret_policy = 'legacy'

[logging]
level = 'info'
`

	expected := `title = 'x'

[logging]
level = 'info'

[typing]
caret_policy = 'legacy'
`

	assert.Equal(t, expected, sortTOMLSections(input))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "smartkeys configuration", doc["title"])

	assert.Contains(t, string(data), `"caret_policy"`)
	assert.Contains(t, string(data), `"after-replacement"`)
	assert.Contains(t, string(data), `"legacy"`)

	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, WriteSchema(path))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(written))
}
