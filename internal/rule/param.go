package rule

import (
	"fmt"
)

// NewDefinition builds a Definition from a raw config tuple, converting
// the positional parameter value into the typed Param for the rule's
// kind. Unrecognized rule names are accepted with their parameter
// dropped; they are diagnosed during evaluation, not at load time.
func NewDefinition(name string, sev Severity, app Applicability, param any) (Definition, error) {
	def := Definition{Name: name, Severity: sev, Applicability: app}

	entry, ok := catalog[name]
	if !ok {
		return def, nil
	}

	// Disabled rules may omit their parameter.
	if param == nil && sev == SeverityDisabled {
		return def, nil
	}

	switch entry.shape {
	case paramNone:
		if param != nil {
			return def, &ConfigError{Rule: name, Reason: fmt.Sprintf("rule takes no parameter, got %v", param)}
		}
	case paramLimit:
		n, ok := param.(int)
		if !ok {
			return def, &ConfigError{Rule: name, Reason: fmt.Sprintf("rule requires an integer length, got %v", param)}
		}
		def.Param.Limit = n
	case paramValues:
		values, err := stringList(param)
		if err != nil {
			return def, &ConfigError{Rule: name, Reason: "rule requires a list of values: " + err.Error()}
		}
		def.Param.Values = values
	case paramCases:
		values, err := stringList(param)
		if err != nil {
			return def, &ConfigError{Rule: name, Reason: "rule requires one or more case styles: " + err.Error()}
		}
		for _, v := range values {
			def.Param.Cases = append(def.Param.Cases, CaseStyle(v))
		}
	case paramChar:
		s, ok := param.(string)
		if !ok || s == "" {
			return def, &ConfigError{Rule: name, Reason: fmt.Sprintf("rule requires a suffix string, got %v", param)}
		}
		def.Param.Char = s
	}

	return def, nil
}

// stringList accepts a single string or a list of strings.
func stringList(param any) ([]string, error) {
	switch v := param.(type) {
	case nil:
		return nil, fmt.Errorf("parameter is missing")
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list contains non-string %v", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported parameter %v", param)
}
