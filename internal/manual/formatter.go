package manual

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/manualgen/internal/foundation/normalization"
)

// Format selects how a Report is rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var formatNormalizer = normalization.NewNormalizer(map[string]Format{
	"json": FormatJSON,
	"text": FormatText,
}, FormatJSON)

// ParseFormat normalizes a user supplied format name. Empty means JSON.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.NormalizeWithError(raw)
}

// Formatter renders a Report.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// NewFormatter creates the formatter for format.
func NewFormatter(format Format) Formatter {
	if format == FormatText {
		return TextFormatter{}
	}
	return JSONFormatter{}
}

// JSONFormatter writes the report as indented JSON without HTML escaping.
type JSONFormatter struct{}

func (JSONFormatter) Format(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}

// TextFormatter writes a human-readable summary.
type TextFormatter struct{}

func (TextFormatter) Format(w io.Writer, report *Report) error {
	var b strings.Builder
	rule := strings.Repeat("━", 60)

	fmt.Fprintf(&b, "Validation report for: %s\n", report.TemplateFile)
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, "Required sections:")
	for _, s := range report.Validation.Structure {
		icon := "✓"
		if !s.Present {
			icon = "✗"
		}
		fmt.Fprintf(&b, "  %s %s\n", icon, s.Name)
	}

	if n := report.Validation.FormatIssuesCount; n > 0 {
		fmt.Fprintf(&b, "\nFormat issues (%d):\n", n)
		for _, issue := range report.Validation.FormatIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}

	if len(report.Validation.UnresolvedPlaceholders) > 0 {
		fmt.Fprintf(&b, "\nUnresolved placeholders: %s\n", strings.Join(report.Validation.UnresolvedPlaceholders, ", "))
	}

	st := report.Statistics
	fmt.Fprintln(&b, "\nStatistics:")
	fmt.Fprintf(&b, "  %d lines, %d words, %d sections\n", st.TotalLines, st.WordCount, st.SectionCount)
	fmt.Fprintf(&b, "  %d bytes, %d links, %d images\n", st.FileSizeBytes, st.LinkCount, st.ImageCount)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Status: %s\n", report.Status)

	_, err := io.WriteString(w, b.String())
	return err
}
