package manual

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructure_AllPresent(t *testing.T) {
	got := ValidateStructure(completeTemplate, DefaultRequiredSections)

	require.Len(t, got, len(DefaultRequiredSections))
	for i, p := range got {
		assert.Equal(t, DefaultRequiredSections[i], p.Name)
		assert.True(t, p.Present, "section %q should be present", p.Name)
	}
	assert.True(t, got.AllPresent())
	assert.Empty(t, got.Missing())
}

func TestValidateStructure_ReportsExactlyMissing(t *testing.T) {
	content := templateWith(
		"# Manual",
		"## Overview",
		"## Feature Guide",
		"## Safety Guidelines",
	)

	got := ValidateStructure(content, DefaultRequiredSections)
	assert.Equal(t, []string{"Device Setup", "Troubleshooting"}, got.Missing())
	assert.False(t, got.AllPresent())
}

func TestValidateStructure_MatchingRules(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		present bool
	}{
		{"exact", "## Overview", true},
		{"trailing whitespace", "## Overview   ", true},
		{"tab separator", "##\tOverview", true},
		{"extra leading spaces after hashes", "##   Overview", true},
		{"wrong case", "## overview", false},
		{"longer header containing name", "## Overview of the system", false},
		{"prefix text", "## System Overview", false},
		{"level three", "### Overview", false},
		{"level one", "# Overview", false},
		{"no space after hashes", "##Overview", false},
		{"indented", " ## Overview", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateStructure(tt.line, []string{"Overview"})
			require.Len(t, got, 1)
			assert.Equal(t, tt.present, got[0].Present)
		})
	}
}

func TestValidateStructure_HeaderDoesNotSpanLines(t *testing.T) {
	got := ValidateStructure("##\nOverview\n", []string{"Overview"})
	assert.False(t, got[0].Present)
}

func TestValidateStructure_UnicodeNormalization(t *testing.T) {
	decomposed := "## Cafe\u0301 Mode"
	got := ValidateStructure(decomposed, []string{"Caf\u00e9 Mode"})
	assert.True(t, got[0].Present)
}

func TestValidateStructure_IgnoresFencedExamples(t *testing.T) {
	content := templateWith("```markdown", "## Overview", "```")
	got := ValidateStructure(content, []string{"Overview"})
	assert.False(t, got[0].Present)
}

func TestSectionStructure_JSONKeepsOrder(t *testing.T) {
	s := SectionStructure{
		{Name: "Troubleshooting", Present: false},
		{Name: "Device Setup", Present: true},
		{Name: "Alpha", Present: true},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Troubleshooting":false,"Device Setup":true,"Alpha":true}`, string(data))

	var back SectionStructure
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestSectionStructure_UnmarshalRejectsArray(t *testing.T) {
	var s SectionStructure
	assert.Error(t, json.Unmarshal([]byte(`[true]`), &s))
}

func TestValidateStructure_InlineTripleBackticksDoNotHideSections(t *testing.T) {
	content := templateWith(
		"# Manual",
		"```reset```",
		"## Overview",
		"## Device Setup",
		"## Feature Guide",
		"## Troubleshooting",
		"## Safety Guidelines",
	)
	got := ValidateStructure(content, DefaultRequiredSections)
	assert.Empty(t, got.Missing())
}
