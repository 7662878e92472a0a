// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/janvolk/commitlint/cmd/commitlint/internal/clierr"
	"github.com/janvolk/commitlint/internal/rule"
)

// NewRulesCommand returns the `commitlint rules` command, which prints
// the effective rule set after all config layers are merged.
func NewRulesCommand() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule set",
		Long:  "Print every rule of the active configuration with its severity, applicability and parameter, in reporting order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return clierr.Wrap(exitConfigError, "loading configuration", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				views := make([]ruleView, 0, cfg.Registry.Len())
				for _, def := range cfg.Registry.Definitions() {
					views = append(views, newRuleView(def))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			case "text":
				for _, def := range cfg.Registry.Definitions() {
					fmt.Fprintln(out, formatRule(def))
				}
				return nil
			}
			return clierr.Newf(exitInputError, "unknown format %q", format)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (default: discovered .commitlint.yaml)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

type ruleView struct {
	Name          string   `json:"name"`
	Severity      string   `json:"severity"`
	Applicability string   `json:"applicability"`
	Limit         *int     `json:"limit,omitempty"`
	Values        []string `json:"values,omitempty"`
	Cases         []string `json:"cases,omitempty"`
	Char          string   `json:"char,omitempty"`
}

func newRuleView(def rule.Definition) ruleView {
	v := ruleView{
		Name:          def.Name,
		Severity:      string(def.Severity),
		Applicability: string(def.Applicability),
		Values:        def.Param.Values,
		Char:          def.Param.Char,
	}
	switch def.Kind() {
	case rule.KindMaxLength, rule.KindMinLength, rule.KindMaxLineLength:
		limit := def.Param.Limit
		v.Limit = &limit
	}
	for _, c := range def.Param.Cases {
		v.Cases = append(v.Cases, string(c))
	}
	return v
}

func formatRule(def rule.Definition) string {
	parts := []string{string(def.Severity), string(def.Applicability)}
	switch def.Kind() {
	case rule.KindMaxLength, rule.KindMinLength, rule.KindMaxLineLength:
		parts = append(parts, fmt.Sprintf("%d", def.Param.Limit))
	case rule.KindEnum:
		parts = append(parts, "["+strings.Join(def.Param.Values, ", ")+"]")
	case rule.KindCase:
		styles := make([]string, len(def.Param.Cases))
		for i, c := range def.Param.Cases {
			styles[i] = string(c)
		}
		parts = append(parts, "["+strings.Join(styles, ", ")+"]")
	case rule.KindFullStop:
		parts = append(parts, fmt.Sprintf("%q", def.Param.Char))
	}
	return fmt.Sprintf("%s: [%s]", def.Name, strings.Join(parts, ", "))
}
