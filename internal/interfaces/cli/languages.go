package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flow-launcher/helloworld-go/internal/i18n"
)

// NewLanguagesCommand lists the languages the plugin can be switched to
func NewLanguagesCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List available languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := container.Catalog.Language()
			for _, lang := range i18n.AvailableLanguages() {
				marker := " "
				if lang.Code == active.Code {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s\n", marker, lang.Code, lang.Display)
			}
			return nil
		},
	}
}
