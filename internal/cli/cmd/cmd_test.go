package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/smartkeys/internal/infrastructure/config"
)

func resetFlags() {
	configFile, logLevel = "", ""
	typeSurface, typeInitial, typeHTML, typeLegacyCaret = surfaceField, "", false, false
	decideText, decideLookback, decideCaret, decideCtrl, decideShift = "", "", -1, false, false
	configInitForce = false
	app = nil
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	return filepath.Join(home, "smartkeys", "config.toml")
}

func TestTypeCommand_Field(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "", "type", `It's "done" -- finally...`)
	require.NoError(t, err)
	assert.Equal(t, "It’s “done” — finally…\n", out)
}

func TestTypeCommand_Stdin(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "'quoted'\n", "type")
	require.NoError(t, err)
	assert.Equal(t, "‘quoted’\n", out)
}

func TestTypeCommand_RegionHTML(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "", "type", "--surface", "region", "--initial", "<b>Wait..</b>", "--html", ".")
	require.NoError(t, err)
	assert.Equal(t, "<b>Wait…</b>\n", out)
}

func TestTypeCommand_UnknownSurface(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "", "type", "--surface", "canvas", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown surface")
}

func TestDecideCommand(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "", "decide", "'", "--lookback", "(")
	require.NoError(t, err)
	assert.Contains(t, out, "single-quote")
	assert.Contains(t, out, "(‘")

	out, err = execute(t, "", "decide", "31", "--ctrl")
	require.NoError(t, err)
	assert.Contains(t, out, "literal-hyphen")

	out, err = execute(t, "", "decide", "a", "--text", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "none, inserted as typed")

	_, err = execute(t, "", "decide", "ab")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	path := isolateConfig(t)

	out, err := execute(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = execute(t, "", "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "config.schema.json"))

	_, err = execute(t, "", "config", "init")
	assert.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "caret_policy = 'after-replacement'")

	out, err = execute(t, "", "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"caret_policy"`)
}

func TestConfigFlag_LegacyCaretFromFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[typing]\ncaret_policy = 'legacy'\n"), 0o644))

	out, err := execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "caret_policy = 'legacy'")
}

func TestConfigFlag_InvalidFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[typing]\ncaret_policy = 'sideways'\n"), 0o644))

	_, err := execute(t, "", "--config", path, "type", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typing.caret_policy")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "smartkeys")
	assert.Contains(t, out, "github.com/bnema/smartkeys")
}
