// Package prompt holds the interactive-composition metadata that can
// accompany a rule config: question text and per-type descriptions.
// It is pure data for presentation surfaces; the evaluator never reads it.
package prompt

import (
	"sort"
)

// Config is the optional `prompt` block of a config file.
type Config struct {
	Questions map[string]Question `yaml:"questions"`
}

// Question describes one prompt step, keyed by message part
// (e.g. "type", "scope", "subject").
type Question struct {
	Description string            `yaml:"description"`
	Enum        map[string]Choice `yaml:"enum"`
}

// Choice is the metadata for one enumerated answer, typically a commit
// type.
type Choice struct {
	Description string `yaml:"description"`
	Title       string `yaml:"title"`
	Emoji       string `yaml:"emoji"`
}

// Merge layers override on top of base: question text is replaced when
// the override sets one, and enum entries are merged by key.
func Merge(base, override Config) Config {
	out := Config{Questions: map[string]Question{}}

	for k, q := range base.Questions {
		out.Questions[k] = cloneQuestion(q)
	}

	for k, oq := range override.Questions {
		q, ok := out.Questions[k]
		if !ok {
			out.Questions[k] = cloneQuestion(oq)
			continue
		}
		if oq.Description != "" {
			q.Description = oq.Description
		}
		if q.Enum == nil && len(oq.Enum) > 0 {
			q.Enum = map[string]Choice{}
		}
		for name, choice := range oq.Enum {
			q.Enum[name] = choice
		}
		out.Questions[k] = q
	}

	return out
}

// TypeNames returns the enumerated commit types of the "type" question
// in sorted order.
func (c Config) TypeNames() []string {
	q, ok := c.Questions["type"]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(q.Enum))
	for name := range q.Enum {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneQuestion(q Question) Question {
	out := Question{Description: q.Description}
	if q.Enum != nil {
		out.Enum = make(map[string]Choice, len(q.Enum))
		for k, v := range q.Enum {
			out.Enum[k] = v
		}
	}
	return out
}

// Conventional returns the default prompt metadata for the conventional
// type vocabulary.
func Conventional() Config {
	return Config{
		Questions: map[string]Question{
			"type": {
				Description: "Select the type of change that you're committing",
				Enum: map[string]Choice{
					"feat":     {Description: "A new feature", Title: "Features", Emoji: "✨"},
					"fix":      {Description: "A bug fix", Title: "Bug Fixes", Emoji: "🐛"},
					"docs":     {Description: "Documentation only changes", Title: "Documentation", Emoji: "📚"},
					"style":    {Description: "Changes that do not affect the meaning of the code", Title: "Styles", Emoji: "💎"},
					"refactor": {Description: "A code change that neither fixes a bug nor adds a feature", Title: "Code Refactoring", Emoji: "📦"},
					"perf":     {Description: "A code change that improves performance", Title: "Performance Improvements", Emoji: "🚀"},
					"test":     {Description: "Adding missing tests or correcting existing tests", Title: "Tests", Emoji: "🚨"},
					"build":    {Description: "Changes that affect the build system or external dependencies", Title: "Builds", Emoji: "🛠"},
					"ci":       {Description: "Changes to CI configuration files and scripts", Title: "Continuous Integrations", Emoji: "⚙️"},
					"chore":    {Description: "Other changes that don't modify src or test files", Title: "Chores", Emoji: "♻️"},
					"revert":   {Description: "Reverts a previous commit", Title: "Reverts", Emoji: "🗑"},
				},
			},
			"scope": {
				Description: "What is the scope of this change (e.g. component or file name)",
			},
			"subject": {
				Description: "Write a short, imperative tense description of the change",
			},
		},
	}
}
