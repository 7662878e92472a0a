package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	base := Conventional()
	override := Config{
		Questions: map[string]Question{
			"type": {
				Enum: map[string]Choice{
					"wip":  {Description: "Work in progress"},
					"feat": {Description: "Shiny new things", Title: "Features", Emoji: "✨"},
				},
			},
			"footer": {
				Description: "Reference the tracking issue",
			},
		},
	}

	merged := Merge(base, override)

	// New keys are added, existing ones replaced.
	assert.Equal(t, "Work in progress", merged.Questions["type"].Enum["wip"].Description)
	assert.Equal(t, "Shiny new things", merged.Questions["type"].Enum["feat"].Description)
	// Untouched entries survive.
	assert.Equal(t, "A bug fix", merged.Questions["type"].Enum["fix"].Description)
	// Question text from the base is kept unless overridden.
	assert.NotEmpty(t, merged.Questions["type"].Description)
	assert.Equal(t, "Reference the tracking issue", merged.Questions["footer"].Description)

	// Merge does not mutate its inputs.
	_, ok := base.Questions["type"].Enum["wip"]
	assert.False(t, ok)
	_, ok = base.Questions["footer"]
	assert.False(t, ok)
}

func TestTypeNamesSorted(t *testing.T) {
	names := Conventional().TypeNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "feat")
	assert.Contains(t, names, "fix")
}
