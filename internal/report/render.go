// Package report renders lint reports for the console and for
// machine-readable export.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/janvolk/commitlint/internal/lint"
	"github.com/janvolk/commitlint/internal/rule"
)

// Renderer writes a lint report as styled console text.
type Renderer struct {
	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
	okStyle   lipgloss.Style
	dimStyle  lipgloss.Style
}

// NewRenderer returns the default console renderer. With color false
// all styling is suppressed, which keeps output stable for pipes and
// golden tests.
func NewRenderer(color bool) *Renderer {
	r := &Renderer{}
	if color {
		r.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
		r.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		r.okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		r.dimStyle = lipgloss.NewStyle().Faint(true)
	}
	return r
}

// Text writes the report in console form: the input header, one line
// per violation and a closing summary.
func (r *Renderer) Text(w io.Writer, input string, rep lint.Report) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", r.dimStyle.Render("input:"), input); err != nil {
		return err
	}

	for _, v := range rep.Violations {
		mark := r.warnStyle.Render("⚠")
		if v.Severity == rule.SeverityError {
			mark = r.errStyle.Render("✖")
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", mark, v.Message, r.dimStyle.Render("["+v.Rule+"]")); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("found %d problems, %d warnings", rep.ErrorCount(), rep.WarningCount())
	switch {
	case rep.ErrorCount() > 0:
		summary = r.errStyle.Render("✖ " + summary)
	case rep.WarningCount() > 0:
		summary = r.warnStyle.Render("⚠ " + summary)
	default:
		summary = r.okStyle.Render("✔ " + summary)
	}
	_, err := fmt.Fprintln(w, summary)

	return err
}

// jsonReport is the machine-readable export shape.
type jsonReport struct {
	Pass       bool             `json:"pass"`
	Errors     int              `json:"errors"`
	Warnings   int              `json:"warnings"`
	Violations []lint.Violation `json:"violations"`
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, rep lint.Report) error {
	out := jsonReport{
		Pass:       rep.Pass(),
		Errors:     rep.ErrorCount(),
		Warnings:   rep.WarningCount(),
		Violations: rep.Violations,
	}
	if out.Violations == nil {
		out.Violations = []lint.Violation{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
