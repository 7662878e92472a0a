// Package config loads layered rule configuration files. A file
// supplies rule overrides as `name: [severity, applicability, param]`
// tuples, may extend other files, and can carry prompt metadata for
// interactive composition surfaces.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/janvolk/commitlint/internal/prompt"
	"github.com/janvolk/commitlint/internal/rule"
)

// File is the decoded form of one config document. Rule entries keep
// their document order so overrides that introduce new rules report in
// a stable position.
type File struct {
	Extends []string
	Rules   []RuleEntry
	Prompt  prompt.Config
}

// RuleEntry is a single named tuple from the `rules` mapping.
type RuleEntry struct {
	Name  string
	Tuple Tuple
}

// Tuple is the positional rule value: severity, applicability and an
// optional parameter whose shape depends on the rule.
type Tuple struct {
	Severity      rule.Severity
	Applicability rule.Applicability
	Param         any
}

func (f *File) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Extends []string      `yaml:"extends"`
		Rules   yaml.Node     `yaml:"rules"`
		Prompt  prompt.Config `yaml:"prompt"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	f.Extends = aux.Extends
	f.Prompt = aux.Prompt

	if aux.Rules.Kind == 0 || aux.Rules.IsZero() {
		return nil
	}
	if aux.Rules.Kind != yaml.MappingNode {
		return fmt.Errorf("rules must be a mapping of rule name to tuple")
	}

	for i := 0; i+1 < len(aux.Rules.Content); i += 2 {
		key := aux.Rules.Content[i]
		val := aux.Rules.Content[i+1]

		var tuple Tuple
		if err := val.Decode(&tuple); err != nil {
			return fmt.Errorf("rule %s: %w", key.Value, err)
		}
		f.Rules = append(f.Rules, RuleEntry{Name: key.Value, Tuple: tuple})
	}

	return nil
}

func (t *Tuple) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("value must be a [severity, applicability, parameter] tuple")
	}
	if len(node.Content) < 1 || len(node.Content) > 3 {
		return fmt.Errorf("tuple must have between one and three elements, got %d", len(node.Content))
	}

	var sevRaw any
	if err := node.Content[0].Decode(&sevRaw); err != nil {
		return fmt.Errorf("severity: %w", err)
	}
	sev, err := rule.ParseSeverity(sevRaw)
	if err != nil {
		return err
	}
	t.Severity = sev

	// A lone severity is only useful for switching a rule off.
	t.Applicability = rule.Always
	if len(node.Content) >= 2 {
		var appRaw string
		if err := node.Content[1].Decode(&appRaw); err != nil {
			return fmt.Errorf("applicability: %w", err)
		}
		app, err := rule.ParseApplicability(appRaw)
		if err != nil {
			return err
		}
		t.Applicability = app
	}

	if len(node.Content) == 3 {
		var param any
		if err := node.Content[2].Decode(&param); err != nil {
			return fmt.Errorf("parameter: %w", err)
		}
		t.Param = param
	}

	return nil
}
