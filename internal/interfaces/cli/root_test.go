package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flow-launcher/helloworld-go/internal/application/services"
	"github.com/flow-launcher/helloworld-go/internal/config"
	"github.com/flow-launcher/helloworld-go/internal/i18n"
	"github.com/flow-launcher/helloworld-go/internal/plugins/helloworld"
)

func newTestContainer(t *testing.T) *CLIContainer {
	t.Helper()

	logger := zap.NewNop()
	catalog := i18n.NewCatalog(logger)
	plugin := helloworld.New(catalog, "", logger)
	host := services.NewPluginHost(logger)
	require.NoError(t, plugin.Register(host))

	return &CLIContainer{
		Config:  config.Default(),
		Catalog: catalog,
		Host:    host,
		Plugin:  plugin,
		Logger:  logger,
	}
}

func runCommand(t *testing.T, container *CLIContainer, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(container)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_RequestArgument(t *testing.T) {
	out, err := runCommand(t, newTestContainer(t), "", `{"method":"query","parameters":["abc"]}`)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"result":[{"Title":"Hello World","SubTitle":"Query: abc","IcoPath":"Images/app.ico","ContextData":"ctxData"}]}`,
		out)
}

func TestRootCommand_RequestFromStdin(t *testing.T) {
	out, err := runCommand(t, newTestContainer(t), `{"method":"context_menu","parameters":["ctxData"]}`)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"result":[{"Title":"Context menu entry","SubTitle":"Data: ctxData","IcoPath":"Images/app.ico"}]}`,
		out)
}

func TestRootCommand_InvalidRequest(t *testing.T) {
	out, err := runCommand(t, newTestContainer(t), "", `{"parameters":[]}`)
	require.Error(t, err)

	assert.Contains(t, out, `"result":[]`)
	assert.Contains(t, out, "debugMessage")
}

func TestQueryCommand(t *testing.T) {
	out, err := runCommand(t, newTestContainer(t), "", "query", "hello there")
	require.NoError(t, err)
	assert.Contains(t, out, `"SubTitle":"Query: hello there"`)

	out, err = runCommand(t, newTestContainer(t), "", "query")
	require.NoError(t, err)
	assert.Contains(t, out, `"SubTitle":"Query: "`)
}

func TestContextMenuCommand(t *testing.T) {
	out, err := runCommand(t, newTestContainer(t), "", "context-menu", "ctxData")
	require.NoError(t, err)
	assert.Contains(t, out, `"SubTitle":"Data: ctxData"`)
}

func TestConfigShowCommand(t *testing.T) {
	container := newTestContainer(t)
	container.Metadata = &config.Metadata{Name: "Hello World Go", Version: "1.0.0", ID: "abc", ActionKeyword: "hw"}

	out, err := runCommand(t, container, "", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Language: en")
	assert.Contains(t, out, "Log File: (not set)")
	assert.Contains(t, out, "Plugin: Hello World Go 1.0.0 (abc)")
	assert.Contains(t, out, "Action Keyword: hw")
}

func TestConfigValidateCommand(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, container, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	container.Config.Language = "xx"
	_, err = runCommand(t, container, "", "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestLanguagesCommand(t *testing.T) {
	out, err := runCommand(t, newTestContainer(t), "", "languages")
	require.NoError(t, err)

	assert.Contains(t, out, "* en")
	assert.Contains(t, out, "  de")
}
