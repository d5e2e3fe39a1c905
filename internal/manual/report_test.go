package manual

import (
	"testing"
	"time"

	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatistics(t *testing.T) {
	content := templateWith(
		"# Title",
		"",
		"## One",
		"Some words here [link](a.md) ![img](i.png)",
		"##Two",
		"```",
		"## not a section",
		"```",
	)

	st := ComputeStatistics(content)
	assert.Equal(t, 8, st.TotalLines)
	assert.Equal(t, 16, st.WordCount)
	assert.Equal(t, 1, st.SectionCount)
	assert.Equal(t, len(content), st.FileSizeBytes)
	assert.Equal(t, 1, st.LinkCount)
	assert.Equal(t, 1, st.ImageCount)
}

func TestComputeStatistics_TrailingNewlineAndUTF8(t *testing.T) {
	st := ComputeStatistics("## Überblick\n")
	assert.Equal(t, 2, st.TotalLines)
	assert.Equal(t, 2, st.WordCount)
	assert.Equal(t, 1, st.SectionCount)
	assert.Equal(t, 14, st.FileSizeBytes)
}

func TestComputeStatistics_Deterministic(t *testing.T) {
	first := ComputeStatistics(completeTemplate)
	for range 5 {
		assert.Equal(t, first, ComputeStatistics(completeTemplate))
	}
}

func TestBuildReport_Pass(t *testing.T) {
	tpl := Template{Path: "docs/templates/user-manual-template.md", Content: completeTemplate}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	report := BuildReport(tpl, Validate(tpl.Content, DefaultRequiredSections),
		WithTimestamp(now),
		WithRunID("run-1"),
		WithVariables(DefaultVariables(now)))

	assert.Equal(t, StatusPass, report.Status)
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, now, report.Timestamp)
	assert.Equal(t, tpl.Path, report.TemplateFile)
	assert.True(t, report.Validation.AllSectionsPresent)
	assert.Empty(t, report.Validation.MissingSections)
	assert.Empty(t, report.Validation.FormatIssues)
	assert.Zero(t, report.Validation.FormatIssuesCount)
	assert.Empty(t, report.Validation.UnresolvedPlaceholders)
	assert.Equal(t, ComputeStatistics(completeTemplate), report.Statistics)
	assert.Equal(t, mdfp.CalculateFingerprintFromParts("", completeTemplate), report.TemplateFingerprint)
}

func TestBuildReport_Warning(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing section", templateWith("## Overview")},
		{"format issue only", completeTemplate + "\n[broken]()\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := Template{Path: "t.md", Content: tt.content}
			report := BuildReport(tpl, Validate(tpl.Content, DefaultRequiredSections))
			assert.Equal(t, StatusWarning, report.Status)
		})
	}
}

func TestBuildReport_UnresolvedPlaceholders(t *testing.T) {
	tpl := Template{Path: "t.md", Content: "{{system_name}} {{support_email}}"}
	report := BuildReport(tpl, Validate(tpl.Content, nil), WithVariables(Variables{"system_name": "HomeHub"}))

	require.Equal(t, []string{"support_email"}, report.Validation.UnresolvedPlaceholders)
}
