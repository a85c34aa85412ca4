package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMap_Defaults(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "Images/app.ico", cfg.IconPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
	assert.NotEmpty(t, cfg.PluginDir, "plugin dir should default to the executable directory")
}

func TestLoadFromMap_Overrides(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"HELLOWORLD_PLUGIN_DIR": "/opt/flow/plugins/hello",
		"HELLOWORLD_LANGUAGE":   "de",
		"HELLOWORLD_ICON_PATH":  "Images/other.png",
		"HELLOWORLD_LOG_LEVEL":  "debug",
		"HELLOWORLD_LOG_FILE":   "/tmp/hello.log",
		"HELLOWORLD_DEBUG":      "true",
		"LANGUAGE":              "fr",
	})
	require.NoError(t, err)

	assert.Equal(t, "/opt/flow/plugins/hello", cfg.PluginDir)
	assert.Equal(t, "de", cfg.Language, "unprefixed variables are ignored")
	assert.Equal(t, "Images/other.png", cfg.IconPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/hello.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
}

func TestLoadFromMap_InvalidBool(t *testing.T) {
	_, err := LoadFromMap(map[string]string{"HELLOWORLD_DEBUG": "maybe"})
	assert.Error(t, err)
}

func TestResolveIcon(t *testing.T) {
	assert.Equal(t, "Images/app.ico", (&Config{}).ResolveIcon())
	assert.Equal(t, "Images/x.png", (&Config{IconPath: "Images/x.png"}).ResolveIcon())
}

func TestLoadMetadata(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMetadata(dir)
	assert.True(t, errors.Is(err, ErrMetadataNotFound))

	manifest := `{
  "ID": "2f4e384e-76ce-45c3-aea2-b16f5e5c328f",
  "ActionKeyword": "hw",
  "Name": "Hello World Go",
  "Description": "Hello World plugin",
  "Author": "flow",
  "Version": "1.0.0",
  "Language": "executable",
  "Website": "https://github.com/Flow-Launcher/Flow.Launcher",
  "IcoPath": "Images/app.ico",
  "ExecuteFileName": "helloworld.exe"
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), []byte(manifest), 0o644))

	meta, err := LoadMetadata(dir)
	require.NoError(t, err)
	assert.Equal(t, "hw", meta.ActionKeyword)
	assert.Equal(t, "executable", meta.Language)
	assert.Equal(t, "helloworld.exe", meta.ExecuteFileName)
}

func TestLoadMetadata_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), []byte("{"), 0o644))

	_, err := LoadMetadata(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMetadataNotFound))
}
