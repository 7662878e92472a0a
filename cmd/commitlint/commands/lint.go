// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/janvolk/commitlint/cmd/commitlint/internal/clierr"
	"github.com/janvolk/commitlint/internal/lint"
	"github.com/janvolk/commitlint/internal/message"
	"github.com/janvolk/commitlint/internal/report"
	"github.com/janvolk/commitlint/internal/rule"
)

// Exit codes of the lint command. Warnings only matter with --strict.
const (
	exitLintFailed    = 1
	exitStrictWarning = 2
	exitConfigError   = 3
	exitInputError    = 4
)

type lintArgs struct {
	message    string
	editFile   string
	configPath string
	format     string
	strict     bool
	noColor    bool
}

// NewLintCommand returns the `commitlint lint` command.
func NewLintCommand() *cobra.Command {
	args := &lintArgs{}

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Lint a commit message",
		Long: `Lint a single commit message against the active rule set.

The message is taken from --message, from --edit, from a file argument
("-" for stdin), or from stdin when nothing else is given.

Exit codes: 0 clean, 1 error-severity violations, 2 warnings under
--strict, 3 invalid configuration, 4 unreadable or empty input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			return runLint(cmd, args, posArgs)
		},
	}

	cmd.Flags().StringVarP(&args.message, "message", "m", "", "Commit message text to lint")
	cmd.Flags().StringVarP(&args.editFile, "edit", "e", "", "Read the message from a file such as .git/COMMIT_EDITMSG")
	cmd.Flags().StringVar(&args.configPath, "config", "", "Path to the config file (default: discovered .commitlint.yaml)")
	cmd.Flags().StringVar(&args.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&args.strict, "strict", false, "Treat warnings as failures (exit code 2)")
	cmd.Flags().BoolVar(&args.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runLint(cmd *cobra.Command, args *lintArgs, posArgs []string) error {
	raw, err := readInput(cmd.InOrStdin(), args, posArgs)
	if err != nil {
		return clierr.Wrap(exitInputError, "reading commit message", err)
	}

	cfg, err := loadConfig(args.configPath)
	if err != nil {
		var cfgErr *rule.ConfigError
		if errors.As(err, &cfgErr) {
			return clierr.Wrap(exitConfigError, "invalid configuration", err)
		}
		return clierr.Wrap(exitConfigError, "loading configuration", err)
	}

	msg, err := message.Parse(raw)
	if err != nil {
		return clierr.Wrap(exitInputError, "invalid commit message", err)
	}

	rep := lint.New(cfg.Registry).Evaluate(msg)

	out := cmd.OutOrStdout()
	switch args.format {
	case "json":
		if err := report.JSON(out, rep); err != nil {
			return err
		}
	case "text":
		renderer := report.NewRenderer(useColor(out, args.noColor))
		if err := renderer.Text(out, msg.Header, rep); err != nil {
			return err
		}
	default:
		return clierr.Newf(exitInputError, "unknown format %q", args.format)
	}

	if !rep.Pass() {
		return clierr.Newf(exitLintFailed, "found %d problems", rep.ErrorCount())
	}
	if args.strict && rep.WarningCount() > 0 {
		return clierr.Newf(exitStrictWarning, "found %d warnings in strict mode", rep.WarningCount())
	}
	return nil
}

// readInput resolves the message source: --message wins, then --edit,
// then a file argument, then stdin.
func readInput(stdin io.Reader, args *lintArgs, posArgs []string) (string, error) {
	if args.message != "" {
		return args.message, nil
	}

	path := args.editFile
	if path == "" && len(posArgs) == 1 {
		path = posArgs[0]
	}

	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// useColor enables styling only for interactive terminal output.
func useColor(out io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
