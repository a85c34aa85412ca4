package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flow-launcher/helloworld-go/internal/config"
	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

func TestNewContainerWithConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.MetadataFile),
		[]byte(`{"ID":"x","Name":"Hello World Go","ActionKeyword":"hw","Language":"executable"}`), 0o644))

	cfg, err := config.LoadFromMap(map[string]string{
		"HELLOWORLD_PLUGIN_DIR": dir,
		"HELLOWORLD_LOG_FILE":   filepath.Join(dir, "logs", "plugin.log"),
	})
	require.NoError(t, err)

	container, err := NewContainerWithConfig(cfg)
	require.NoError(t, err)
	defer container.Shutdown(context.Background())

	require.NotNil(t, container.Metadata)
	assert.Equal(t, "hw", container.Metadata.ActionKeyword)
	assert.Equal(t, []string{jsonrpc.MethodContextMenu, jsonrpc.MethodQuery}, container.Host.Methods())
	assert.Same(t, container.Host, container.GetCLIContainer().Host)
	assert.FileExists(t, filepath.Join(dir, "logs", "plugin.log"))
}

func TestNewContainerWithConfig_InvalidConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{PluginDir: dir, Language: "xx", LogLevel: "info", IconPath: ""}

	container, err := NewContainerWithConfig(cfg)
	require.NoError(t, err)

	assert.Nil(t, container.Metadata)
	assert.Equal(t, "en", container.Config.Language)
	assert.Equal(t, "Images/app.ico", container.Config.IconPath)
	assert.Equal(t, dir, container.Config.PluginDir)
	assert.Equal(t, "info", container.Config.LogLevel, "valid fields are kept")
}

func TestNewContainerWithConfig_InvalidFieldKeepsValidOnes(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "plugin.log")

	cfg, err := config.LoadFromMap(map[string]string{
		"HELLOWORLD_PLUGIN_DIR": dir,
		"HELLOWORLD_LANGUAGE":   "de",
		"HELLOWORLD_LOG_LEVEL":  "bogus",
		"HELLOWORLD_ICON_PATH":  "Images/custom.png",
		"HELLOWORLD_LOG_FILE":   logFile,
	})
	require.NoError(t, err)

	container, err := NewContainerWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, container.Shutdown(context.Background()))

	assert.Equal(t, "de", container.Config.Language)
	assert.Equal(t, "de", container.Catalog.Language().Code)
	assert.Equal(t, "Images/custom.png", container.Config.IconPath)
	assert.Equal(t, "info", container.Config.LogLevel)
	assert.Equal(t, "Images/custom.png", container.Plugin.Query(context.Background(), "x")[0].IcoPath)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "invalid configuration value, using default")
}
