package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      any
		want    Severity
		wantErr bool
	}{
		{in: "disabled", want: SeverityDisabled},
		{in: "warning", want: SeverityWarning},
		{in: "warn", want: SeverityWarning},
		{in: "error", want: SeverityError},
		{in: 0, want: SeverityDisabled},
		{in: 1, want: SeverityWarning},
		{in: 2, want: SeverityError},
		{in: "fatal", wantErr: true},
		{in: 3, wantErr: true},
		{in: 1.5, wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseSeverity(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %v", tc.in)
			continue
		}
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestRegistryMergeOverrideWins(t *testing.T) {
	base := NewRegistry()
	base.Add(Definition{Name: "header-max-length", Severity: SeverityError, Applicability: Always, Param: Param{Limit: 72}})
	base.Add(Definition{Name: "type-empty", Severity: SeverityError, Applicability: Never})

	override := NewRegistry()
	override.Add(Definition{Name: "header-max-length", Severity: SeverityWarning, Applicability: Always, Param: Param{Limit: 100}})
	override.Add(Definition{Name: "subject-empty", Severity: SeverityError, Applicability: Never})

	base.Merge(override)

	require.Equal(t, 3, base.Len())

	// Overridden rules keep their base position, new rules append.
	defs := base.Definitions()
	assert.Equal(t, "header-max-length", defs[0].Name)
	assert.Equal(t, SeverityWarning, defs[0].Severity)
	assert.Equal(t, 100, defs[0].Param.Limit)
	assert.Equal(t, "type-empty", defs[1].Name)
	assert.Equal(t, "subject-empty", defs[2].Name)
}

func TestRegistryValidate(t *testing.T) {
	tests := map[string]struct {
		def     Definition
		wantErr string
	}{
		"valid length rule": {
			def: Definition{Name: "header-max-length", Severity: SeverityError, Applicability: Always, Param: Param{Limit: 72}},
		},
		"valid unknown rule passes": {
			def: Definition{Name: "my-team-rule", Severity: SeverityError, Applicability: Always},
		},
		"invalid severity": {
			def:     Definition{Name: "header-max-length", Severity: "fatal", Applicability: Always},
			wantErr: `invalid severity "fatal"`,
		},
		"invalid applicability": {
			def:     Definition{Name: "header-max-length", Severity: SeverityError, Applicability: "sometimes"},
			wantErr: `invalid applicability "sometimes"`,
		},
		"negative length bound": {
			def:     Definition{Name: "header-max-length", Severity: SeverityError, Applicability: Always, Param: Param{Limit: -1}},
			wantErr: "length bound must not be negative",
		},
		"enum without values": {
			def:     Definition{Name: "type-enum", Severity: SeverityError, Applicability: Always},
			wantErr: "missing allowed value list",
		},
		"disabled enum may omit values": {
			def: Definition{Name: "type-enum", Severity: SeverityDisabled, Applicability: Always},
		},
		"case without styles": {
			def:     Definition{Name: "subject-case", Severity: SeverityError, Applicability: Never},
			wantErr: "missing case style list",
		},
		"unknown case style": {
			def:     Definition{Name: "subject-case", Severity: SeverityError, Applicability: Never, Param: Param{Cases: []CaseStyle{"shouty-case"}}},
			wantErr: `unknown case style "shouty-case"`,
		},
		"full stop without char": {
			def:     Definition{Name: "subject-full-stop", Severity: SeverityError, Applicability: Never},
			wantErr: "missing full-stop character",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRegistry()
			r.Add(tc.def)

			err := r.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConventionalDefaultsAreValid(t *testing.T) {
	r := Conventional()
	require.NoError(t, r.Validate())

	def, ok := r.Get("scope-enum")
	require.True(t, ok)
	assert.Equal(t, SeverityDisabled, def.Severity)

	def, ok = r.Get("type-enum")
	require.True(t, ok)
	assert.Equal(t, SeverityError, def.Severity)
	assert.Contains(t, def.Param.Values, "feat")
}

func TestNewDefinitionParamConversion(t *testing.T) {
	t.Run("integer limit", func(t *testing.T) {
		def, err := NewDefinition("header-max-length", SeverityError, Always, 72)
		require.NoError(t, err)
		assert.Equal(t, 72, def.Param.Limit)
	})

	t.Run("string list", func(t *testing.T) {
		def, err := NewDefinition("type-enum", SeverityError, Always, []any{"feat", "fix"})
		require.NoError(t, err)
		assert.Equal(t, []string{"feat", "fix"}, def.Param.Values)
	})

	t.Run("single case style", func(t *testing.T) {
		def, err := NewDefinition("type-case", SeverityError, Always, "lower-case")
		require.NoError(t, err)
		assert.Equal(t, []CaseStyle{LowerCase}, def.Param.Cases)
	})

	t.Run("wrong limit type", func(t *testing.T) {
		_, err := NewDefinition("header-max-length", SeverityError, Always, "long")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("parameter on parameterless rule", func(t *testing.T) {
		_, err := NewDefinition("type-empty", SeverityError, Never, 3)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("unknown rule keeps no parameter", func(t *testing.T) {
		def, err := NewDefinition("my-team-rule", SeverityWarning, Always, 42)
		require.NoError(t, err)
		assert.Equal(t, Param{}, def.Param)
		assert.False(t, def.Known())
	})
}
