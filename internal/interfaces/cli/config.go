package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flow-launcher/helloworld-go/internal/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect plugin configuration",
		Long: `Inspect the configuration the plugin runs with.

Settings come from HELLOWORLD_* environment variables and from plugin.json
in the plugin directory.`,
	}

	configCmd.AddCommand(NewConfigShowCommand(container))
	configCmd.AddCommand(NewConfigValidateCommand(container))

	return configCmd
}

// NewConfigShowCommand creates the show subcommand
func NewConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			printConfig(cmd.OutOrStdout(), container.Config, container.Metadata)
			return nil
		},
	}
}

// NewConfigValidateCommand creates the validate subcommand
func NewConfigValidateCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewValidator().Validate(container.Config); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config, meta *config.Metadata) {
	fmt.Fprintln(w, "Current Configuration:")
	fmt.Fprintf(w, "Plugin Dir: %s\n", cfg.PluginDir)
	fmt.Fprintf(w, "Language: %s\n", cfg.Language)
	fmt.Fprintf(w, "Icon Path: %s\n", cfg.IconPath)
	fmt.Fprintf(w, "Log Level: %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "Log File: %s\n", valueOrUnset(cfg.LogFile))
	fmt.Fprintf(w, "Debug: %t\n", cfg.Debug)

	if meta == nil {
		fmt.Fprintf(w, "Metadata: (no %s found)\n", config.MetadataFile)
		return
	}
	fmt.Fprintf(w, "Plugin: %s %s (%s)\n", meta.Name, meta.Version, meta.ID)
	fmt.Fprintf(w, "Action Keyword: %s\n", meta.ActionKeyword)
	fmt.Fprintf(w, "Execute File: %s\n", meta.ExecuteFileName)
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
