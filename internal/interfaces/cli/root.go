package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flow-launcher/helloworld-go/internal/application/services"
	"github.com/flow-launcher/helloworld-go/internal/config"
	"github.com/flow-launcher/helloworld-go/internal/i18n"
	"github.com/flow-launcher/helloworld-go/internal/plugins/helloworld"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Config   *config.Config
	Metadata *config.Metadata // nil when plugin.json is absent
	Catalog  *i18n.Catalog
	Host     *services.PluginHost
	Plugin   *helloworld.Plugin
	Logger   *zap.Logger
}

// NewRootCommand creates the command the launcher invokes.
// With no subcommand it reads one JSON-RPC request, from the first argument
// or from stdin, and prints the response.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "helloworld [request-json]",
		Short: "Hello World plugin for Flow Launcher",
		Long: `Hello World is an example Flow Launcher plugin.

The launcher runs it with a single JSON-RPC request as argument, for example:

  helloworld '{"method":"query","parameters":["hello"]}'

and reads the results from stdout. The subcommands are tools for trying the
plugin without the launcher.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readRequest(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return container.Host.Serve(cmd.Context(), raw, cmd.OutOrStdout())
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewQueryCommand(container))
	rootCmd.AddCommand(NewContextMenuCommand(container))
	rootCmd.AddCommand(NewPreviewCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewLanguagesCommand(container))

	return rootCmd
}

func readRequest(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request from stdin")
	}
	return raw, nil
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits non-zero on failure.
// Errors go to stderr only; stdout is reserved for the launcher.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		container.Logger.Error("command failed", zap.Error(err))
		_ = container.Logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
