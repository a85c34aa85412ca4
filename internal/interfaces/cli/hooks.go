package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

// NewQueryCommand creates the query subcommand
func NewQueryCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "query [text]",
		Short: "Run the query hook and print the response",
		Example: `  helloworld query "hello there"
  helloworld query`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, container, jsonrpc.MethodQuery, firstArg(args))
		},
	}
}

// NewContextMenuCommand creates the context-menu subcommand
func NewContextMenuCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:     "context-menu [data]",
		Short:   "Run the context menu hook and print the response",
		Example: `  helloworld context-menu ctxData`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, container, jsonrpc.MethodContextMenu, firstArg(args))
		},
	}
}

func runHook(cmd *cobra.Command, container *CLIContainer, method, param string) error {
	req, err := jsonrpc.NewRequest(method, param)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", method)
	}
	return container.Host.Serve(cmd.Context(), req.Raw(), cmd.OutOrStdout())
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
