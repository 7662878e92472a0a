// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/janvolk/commitlint/cmd/commitlint/internal/clierr"
)

// NewTypesCommand returns the `commitlint types` command. It renders
// the prompt metadata of the active config: the commit types a
// composition UI would offer, with their descriptions.
func NewTypesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the configured commit types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return clierr.Wrap(exitConfigError, "loading configuration", err)
			}

			question, ok := cfg.Prompt.Questions["type"]
			if !ok || len(question.Enum) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no commit types configured")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range cfg.Prompt.TypeNames() {
				choice := question.Enum[name]
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, choice.Title, choice.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (default: discovered .commitlint.yaml)")

	return cmd
}
