package rule

import (
	"fmt"
)

// ConfigError reports an invalid rule definition at load time. The
// evaluator never runs against a registry that failed validation.
type ConfigError struct {
	Rule   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Rule == "" {
		return "rule config: " + e.Reason
	}
	return fmt.Sprintf("rule config: %s: %s", e.Rule, e.Reason)
}

// Registry is an ordered set of rule definitions keyed by name.
// Merging is override-wins: a definition with a known name replaces the
// existing one in place, so base ordering is preserved for reporting;
// new names are appended.
type Registry struct {
	defs  []Definition
	index map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add inserts or replaces a definition by name.
func (r *Registry) Add(def Definition) {
	if i, ok := r.index[def.Name]; ok {
		r.defs[i] = def
		return
	}
	r.index[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
}

// Merge applies every definition from other on top of r.
func (r *Registry) Merge(other *Registry) {
	for _, def := range other.defs {
		r.Add(def)
	}
}

// Get returns the definition for name.
func (r *Registry) Get(name string) (Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Definitions returns the definitions in registry order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Validate checks every definition: severity and applicability must be
// one of their allowed values, and for catalogued rules the parameter
// must fit the kind. Unrecognized names pass validation; they surface
// as warning diagnostics during evaluation instead.
func (r *Registry) Validate() error {
	for _, def := range r.defs {
		if def.Name == "" {
			return &ConfigError{Reason: "definition with empty rule name"}
		}

		switch def.Severity {
		case SeverityDisabled, SeverityWarning, SeverityError:
		default:
			return &ConfigError{Rule: def.Name, Reason: fmt.Sprintf("invalid severity %q", def.Severity)}
		}

		switch def.Applicability {
		case Always, Never:
		default:
			return &ConfigError{Rule: def.Name, Reason: fmt.Sprintf("invalid applicability %q", def.Applicability)}
		}

		entry, ok := catalog[def.Name]
		if !ok {
			continue
		}
		if err := validateParam(def, entry.shape); err != nil {
			return err
		}
	}
	return nil
}

func validateParam(def Definition, shape paramShape) error {
	switch shape {
	case paramNone:
	case paramLimit:
		if def.Param.Limit < 0 {
			return &ConfigError{Rule: def.Name, Reason: fmt.Sprintf("length bound must not be negative, got %d", def.Param.Limit)}
		}
	case paramValues:
		if def.Severity != SeverityDisabled && def.Param.Values == nil {
			return &ConfigError{Rule: def.Name, Reason: "missing allowed value list"}
		}
	case paramCases:
		if def.Severity != SeverityDisabled && len(def.Param.Cases) == 0 {
			return &ConfigError{Rule: def.Name, Reason: "missing case style list"}
		}
		for _, c := range def.Param.Cases {
			if !KnownCaseStyle(c) {
				return &ConfigError{Rule: def.Name, Reason: fmt.Sprintf("unknown case style %q", c)}
			}
		}
	case paramChar:
		if def.Severity != SeverityDisabled && def.Param.Char == "" {
			return &ConfigError{Rule: def.Name, Reason: "missing full-stop character"}
		}
	}
	return nil
}
