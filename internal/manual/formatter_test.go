package manual

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	tpl := Template{
		Path:    "docs/templates/user-manual-template.md",
		Content: templateWith("# <Manual>", "### Deep", "## Overview", "[x]()"),
	}
	res := Validate(tpl.Content, []string{"Overview", "Device Setup"})
	return BuildReport(tpl, res,
		WithTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
		WithRunID("run-1"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat(" TEXT ")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sampleReport()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "WARNING", doc["status"])
	assert.Equal(t, "docs/templates/user-manual-template.md", doc["template_file"])
	assert.Equal(t, "run-1", doc["run_id"])

	validation := doc["validation"].(map[string]any)
	assert.Equal(t, map[string]any{"Overview": true, "Device Setup": false}, validation["structure"])
	assert.Equal(t, false, validation["all_sections_present"])
	assert.Equal(t, []any{"Device Setup"}, validation["missing_sections"])
	assert.InDelta(t, 2, validation["format_issues_count"], 0)

	stats := doc["statistics"].(map[string]any)
	for _, key := range []string{"total_lines", "word_count", "section_count", "file_size_bytes", "link_count", "image_count"} {
		assert.Contains(t, stats, key)
	}

	assert.Contains(t, buf.String(), `"structure": {`)
}

func TestJSONFormatter_NoHTMLEscaping(t *testing.T) {
	tpl := Template{Path: "docs/q&a/<draft>.md", Content: "## Q&A"}
	report := BuildReport(tpl, Validate(tpl.Content, []string{"Q&A"}))

	var buf bytes.Buffer
	require.NoError(t, JSONFormatter{}.Format(&buf, report))
	assert.Contains(t, buf.String(), `"template_file": "docs/q&a/<draft>.md"`)
	assert.Contains(t, buf.String(), `"Q&A": true`)
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, JSONFormatter{}.Format(&buf, report))

	var back Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, report.Validation.Structure, back.Validation.Structure)
	assert.Equal(t, report.Statistics, back.Statistics)
	assert.True(t, report.Timestamp.Equal(back.Timestamp))
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatText).Format(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Validation report for: docs/templates/user-manual-template.md")
	assert.Contains(t, out, "✓ Overview")
	assert.Contains(t, out, "✗ Device Setup")
	assert.Contains(t, out, "Format issues (2):")
	assert.Contains(t, out, "  - Header level jump from 1 to 3 at line 2")
	assert.Contains(t, out, "  - Empty link URL for 'x'")
	assert.Contains(t, out, "Status: WARNING")
}
