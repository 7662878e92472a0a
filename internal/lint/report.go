// Package lint evaluates a rule registry against a parsed commit
// message and produces an ordered violation report.
package lint

import (
	"github.com/janvolk/commitlint/internal/rule"
)

// Violation is a single rule finding. Severity is never disabled here;
// disabled rules are skipped before their predicate runs.
type Violation struct {
	Rule     string        `json:"rule"`
	Severity rule.Severity `json:"severity"`
	Message  string        `json:"message"`
}

// Report is the ordered outcome of one evaluation.
type Report struct {
	Violations []Violation `json:"violations"`
}

// Pass reports whether the message is acceptable: warnings are
// reported but only error-severity violations fail the run.
func (r Report) Pass() bool {
	return r.ErrorCount() == 0
}

// ErrorCount returns the number of error-severity violations.
func (r Report) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == rule.SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity violations.
func (r Report) WarningCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == rule.SeverityWarning {
			n++
		}
	}
	return n
}
