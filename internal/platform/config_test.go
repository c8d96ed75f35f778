package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, "notes.json", cfg.NotesFile)
	assert.Equal(t, "notes_export.txt", cfg.ExportFile)
	assert.Equal(t, "token.txt", cfg.TokenFile)
	assert.Equal(t, 60, cfg.PollTimeout)
	assert.False(t, cfg.ReadOnly)
	assert.Equal(t, filepath.Join(dir, "notes.json"), cfg.NotesPath())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "notes_file: data.json\npoll_timeout: 5\nread_only: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notebot.yaml"), []byte(content), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "data.json", cfg.NotesFile)
	assert.Equal(t, 5, cfg.PollTimeout)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, "notes_export.txt", cfg.ExportFile)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notebot.yaml"), []byte("poll_timeout: 5\n"), 0644))
	t.Setenv("NOTEBOT_POLL_TIMEOUT", "30")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.PollTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notebot.yaml"), []byte("export_file: notes.json\n"), 0644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notebot.yaml"), []byte("poll_timeout: [\n"), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfig_YAMLMasksToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Token = "123:secret"

	data, err := cfg.YAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "<set>", decoded["token"])
	assert.Equal(t, "notes.json", decoded["notes_file"])
}
