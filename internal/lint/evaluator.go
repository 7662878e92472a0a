package lint

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/janvolk/commitlint/internal/message"
	"github.com/janvolk/commitlint/internal/rule"
)

// Evaluator applies a validated rule registry to parsed commit
// messages. It holds no mutable state, so one Evaluator can serve any
// number of independent evaluations.
type Evaluator struct {
	reg *rule.Registry
}

// New creates an Evaluator over the given registry. The registry is
// expected to have passed Validate; see rule.Registry.
func New(reg *rule.Registry) *Evaluator {
	return &Evaluator{reg: reg}
}

// Evaluate runs every enabled rule against msg. Rules are evaluated
// independently in registry order with no short-circuiting, so a single
// message can accumulate multiple violations. Definitions with no
// matching evaluator produce one warning diagnostic each.
func (e *Evaluator) Evaluate(msg *message.CommitMessage) Report {
	var rep Report

	for _, def := range e.reg.Definitions() {
		if def.Severity == rule.SeverityDisabled {
			continue
		}

		if !def.Known() {
			rep.Violations = append(rep.Violations, Violation{
				Rule:     def.Name,
				Severity: rule.SeverityWarning,
				Message:  fmt.Sprintf("unrecognized rule: %s", def.Name),
			})
			continue
		}

		if v, violated := check(def, msg); violated {
			rep.Violations = append(rep.Violations, v)
		}
	}

	return rep
}

// check runs the predicate for def and compares the outcome against its
// applicability: `always` expects the condition to hold, `never`
// expects it not to.
func check(def rule.Definition, msg *message.CommitMessage) (Violation, bool) {
	target := def.Target()
	value := fieldValue(msg, target)

	// Membership and suffix predicates are vacuous on absent fields;
	// the emptiness rules own empty values.
	if value == "" {
		switch def.Kind() {
		case rule.KindEnum, rule.KindCase, rule.KindFullStop:
			return Violation{}, false
		}
	}

	var holds bool
	switch def.Kind() {
	case rule.KindMaxLength:
		holds = utf8.RuneCountInString(value) <= def.Param.Limit
	case rule.KindMinLength:
		holds = utf8.RuneCountInString(value) >= def.Param.Limit
	case rule.KindMaxLineLength:
		holds = linesWithin(value, def.Param.Limit)
	case rule.KindCase:
		holds = matchesCase(value, def.Param.Cases)
	case rule.KindEnum:
		holds = contains(def.Param.Values, value)
	case rule.KindEmpty:
		holds = value == ""
	case rule.KindFullStop:
		holds = strings.HasSuffix(value, def.Param.Char)
	case rule.KindLeadingBlank:
		holds = leadingBlank(msg, target)
	case rule.KindTrim:
		holds = value == strings.TrimSpace(value)
	}

	if holds == (def.Applicability == rule.Always) {
		return Violation{}, false
	}

	return Violation{
		Rule:     def.Name,
		Severity: def.Severity,
		Message:  violationText(def, target, value),
	}, true
}

func fieldValue(msg *message.CommitMessage, target rule.Target) string {
	switch target {
	case rule.TargetHeader:
		return msg.Header
	case rule.TargetType:
		return msg.Type
	case rule.TargetScope:
		return msg.Scope
	case rule.TargetSubject:
		return msg.Subject
	case rule.TargetBody:
		return msg.Body
	case rule.TargetFooter:
		return msg.Footer
	}
	return ""
}

func leadingBlank(msg *message.CommitMessage, target rule.Target) bool {
	switch target {
	case rule.TargetBody:
		return msg.Body == "" || msg.BodySeparated
	case rule.TargetFooter:
		return msg.Footer == "" || msg.FooterSeparated
	}
	return true
}

func linesWithin(value string, limit int) bool {
	if value == "" {
		return true
	}
	for _, line := range strings.Split(value, "\n") {
		if utf8.RuneCountInString(line) > limit {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// violationText builds the human-readable message for a violated rule.
// The wording reflects the direction of the failure: an `always` rule
// states what the field must do, a `never` rule what it may not.
func violationText(def rule.Definition, target rule.Target, value string) string {
	always := def.Applicability == rule.Always

	switch def.Kind() {
	case rule.KindMaxLength:
		if always {
			return fmt.Sprintf("%s must not be longer than %d characters, current length is %d",
				target, def.Param.Limit, utf8.RuneCountInString(value))
		}
		return fmt.Sprintf("%s must be longer than %d characters", target, def.Param.Limit)
	case rule.KindMinLength:
		if always {
			return fmt.Sprintf("%s must not be shorter than %d characters, current length is %d",
				target, def.Param.Limit, utf8.RuneCountInString(value))
		}
		return fmt.Sprintf("%s must be shorter than %d characters", target, def.Param.Limit)
	case rule.KindMaxLineLength:
		if always {
			return fmt.Sprintf("%s's lines must not be longer than %d characters", target, def.Param.Limit)
		}
		return fmt.Sprintf("%s must have a line longer than %d characters", target, def.Param.Limit)
	case rule.KindCase:
		if always {
			return fmt.Sprintf("%s must be %s", target, joinStyles(def.Param.Cases))
		}
		return fmt.Sprintf("%s must not be %s", target, joinStyles(def.Param.Cases))
	case rule.KindEnum:
		if always {
			return fmt.Sprintf("%s must be one of [%s]", target, strings.Join(def.Param.Values, ", "))
		}
		return fmt.Sprintf("%s must not be one of [%s]", target, strings.Join(def.Param.Values, ", "))
	case rule.KindEmpty:
		if always {
			return fmt.Sprintf("%s must be empty", target)
		}
		return fmt.Sprintf("%s may not be empty", target)
	case rule.KindFullStop:
		if always {
			return fmt.Sprintf("%s must end with %q", target, def.Param.Char)
		}
		return fmt.Sprintf("%s may not end with %q", target, def.Param.Char)
	case rule.KindLeadingBlank:
		if always {
			return fmt.Sprintf("%s must begin with a blank line", target)
		}
		return fmt.Sprintf("%s may not begin with a blank line", target)
	case rule.KindTrim:
		if always {
			return fmt.Sprintf("%s must not have leading or trailing whitespace", target)
		}
		return fmt.Sprintf("%s must have leading or trailing whitespace", target)
	}
	return string(target) + " violates " + def.Name
}

func joinStyles(styles []rule.CaseStyle) string {
	parts := make([]string, len(styles))
	for i, s := range styles {
		parts[i] = string(s)
	}
	return strings.Join(parts, " or ")
}
