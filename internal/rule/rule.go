// Package rule defines the commit lint rule model: named rule
// definitions with a severity, an applicability and a typed parameter,
// collected into an ordered registry.
package rule

import (
	"fmt"
)

// Severity determines how a rule violation is treated.
type Severity string

const (
	SeverityDisabled Severity = "disabled"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
)

// ParseSeverity accepts the canonical names plus the legacy numeric
// encoding (0/1/2) used by shared configs.
func ParseSeverity(v any) (Severity, error) {
	switch s := v.(type) {
	case string:
		switch Severity(s) {
		case SeverityDisabled, SeverityWarning, SeverityError:
			return Severity(s), nil
		case "warn":
			return SeverityWarning, nil
		}
		return "", fmt.Errorf("unknown severity %q", s)
	case int:
		switch s {
		case 0:
			return SeverityDisabled, nil
		case 1:
			return SeverityWarning, nil
		case 2:
			return SeverityError, nil
		}
		return "", fmt.Errorf("unknown severity %d", s)
	}
	return "", fmt.Errorf("severity must be a string or integer, got %T", v)
}

// Applicability states whether the rule's condition must always hold or
// must never hold.
type Applicability string

const (
	Always Applicability = "always"
	Never  Applicability = "never"
)

// ParseApplicability validates an applicability name.
func ParseApplicability(s string) (Applicability, error) {
	switch Applicability(s) {
	case Always, Never:
		return Applicability(s), nil
	}
	return "", fmt.Errorf("unknown applicability %q", s)
}

// Kind tags the predicate family a rule belongs to. The evaluator
// dispatches on it, and the parameter shape is fixed per kind.
type Kind string

const (
	KindMaxLength     Kind = "max-length"      // whole-field character bound
	KindMinLength     Kind = "min-length"      // whole-field character bound
	KindMaxLineLength Kind = "max-line-length" // per logical line bound
	KindCase          Kind = "case"            // case-style membership
	KindEnum          Kind = "enum"            // allowed value set
	KindEmpty         Kind = "empty"           // field emptiness
	KindFullStop      Kind = "full-stop"       // trailing character
	KindLeadingBlank  Kind = "leading-blank"   // blank line before segment
	KindTrim          Kind = "trim"            // leading/trailing whitespace
)

// Target names the message field a rule inspects.
type Target string

const (
	TargetHeader  Target = "header"
	TargetType    Target = "type"
	TargetScope   Target = "scope"
	TargetSubject Target = "subject"
	TargetBody    Target = "body"
	TargetFooter  Target = "footer"
)

// CaseStyle names a supported case convention. The matching predicates
// live with the evaluator; the names are part of the config surface.
type CaseStyle string

const (
	LowerCase    CaseStyle = "lower-case"
	UpperCase    CaseStyle = "upper-case"
	CamelCase    CaseStyle = "camel-case"
	PascalCase   CaseStyle = "pascal-case"
	KebabCase    CaseStyle = "kebab-case"
	SnakeCase    CaseStyle = "snake-case"
	SentenceCase CaseStyle = "sentence-case"
	StartCase    CaseStyle = "start-case"
)

var caseStyles = map[CaseStyle]bool{
	LowerCase:    true,
	UpperCase:    true,
	CamelCase:    true,
	PascalCase:   true,
	KebabCase:    true,
	SnakeCase:    true,
	SentenceCase: true,
	StartCase:    true,
}

// KnownCaseStyle reports whether name is a supported case style.
func KnownCaseStyle(name CaseStyle) bool {
	return caseStyles[name]
}

// Param is the typed rule parameter. Which fields are meaningful
// depends on the rule's Kind; the registry rejects definitions whose
// parameter does not fit their kind.
type Param struct {
	// Limit is the character bound for the length kinds.
	Limit int
	// Values is the allowed set for enum kinds.
	Values []string
	// Cases lists case styles for case kinds.
	Cases []CaseStyle
	// Char is the trailing character for full-stop kinds.
	Char string
}

// Definition is a single named rule.
type Definition struct {
	Name          string
	Severity      Severity
	Applicability Applicability
	Param         Param
}

// Kind returns the predicate family for the definition, or "" when the
// rule name is not in the catalog.
func (d Definition) Kind() Kind {
	return catalog[d.Name].kind
}

// Target returns the message field the definition inspects.
func (d Definition) Target() Target {
	return catalog[d.Name].target
}

// Known reports whether the rule name has a matching evaluator.
func (d Definition) Known() bool {
	_, ok := catalog[d.Name]
	return ok
}
