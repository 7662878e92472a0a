// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/janvolk/commitlint/internal/log"
)

type rootArgs struct {
	logLevel  string
	logFormat string
}

// NewRootCmd constructs the commitlint root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITLINT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	args := &rootArgs{}

	cmd := &cobra.Command{
		Use:               "commitlint",
		Short:             "Lint commit messages against the Conventional Commits convention",
		Long:              "commitlint validates commit messages against a shared, declarative rule set\nfollowing the Conventional Commits convention.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging(args),
	}

	cmd.PersistentFlags().StringVar(&args.logLevel, "log-level", "warn", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().StringVar(&args.logFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of commitlint",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commitlint version %s\n", version)
		},
	})

	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewRulesCommand())
	cmd.AddCommand(NewTypesCommand())

	return cmd
}

func setupLogging(args *rootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		handler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), args.logLevel, args.logFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}
		slog.SetDefault(slog.New(handler))
		return nil
	}
}
