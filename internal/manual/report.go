package manual

import (
	"log/slog"
	"strings"
	"time"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/manualgen/internal/logfields"
	"git.home.luguber.info/inful/manualgen/internal/markdown"
)

// Status is the overall validation verdict.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusWarning Status = "WARNING"
)

// Statistics are simple measurements of the template text.
type Statistics struct {
	TotalLines    int `json:"total_lines"`
	WordCount     int `json:"word_count"`
	SectionCount  int `json:"section_count"`
	FileSizeBytes int `json:"file_size_bytes"`
	LinkCount     int `json:"link_count"`
	ImageCount    int `json:"image_count"`
}

// ComputeStatistics measures content. It is deterministic for a given input.
func ComputeStatistics(content string) Statistics {
	sections := 0
	for _, h := range markdown.ScanHeadings(content) {
		if h.Level == 2 && h.Spaced {
			sections++
		}
	}
	links, err := markdown.CountLinks([]byte(content))
	if err != nil {
		slog.Debug("Link statistics unavailable", logfields.Error(err))
	}

	return Statistics{
		TotalLines:    strings.Count(content, "\n") + 1,
		WordCount:     len(strings.Fields(content)),
		SectionCount:  sections,
		FileSizeBytes: len(content),
		LinkCount:     links.Links,
		ImageCount:    links.Images,
	}
}

// ReportValidation is the validation block of a Report.
type ReportValidation struct {
	Structure              SectionStructure `json:"structure"`
	AllSectionsPresent     bool             `json:"all_sections_present"`
	MissingSections        []string         `json:"missing_sections"`
	FormatIssues           []string         `json:"format_issues"`
	FormatIssuesCount      int              `json:"format_issues_count"`
	UnresolvedPlaceholders []string         `json:"unresolved_placeholders"`
}

// Report is the persisted summary of one validation run.
type Report struct {
	RunID               string           `json:"run_id"`
	Timestamp           time.Time        `json:"timestamp"`
	TemplateFile        string           `json:"template_file"`
	Validation          ReportValidation `json:"validation"`
	Statistics          Statistics       `json:"statistics"`
	TemplateFingerprint string           `json:"template_fingerprint"`
	Status              Status           `json:"status"`
}

// ReportOption customizes BuildReport.
type ReportOption func(*reportOptions)

type reportOptions struct {
	now  time.Time
	id   string
	vars Variables
}

// WithTimestamp sets the report timestamp.
func WithTimestamp(t time.Time) ReportOption {
	return func(o *reportOptions) { o.now = t }
}

// WithRunID sets the report run id.
func WithRunID(id string) ReportOption {
	return func(o *reportOptions) { o.id = id }
}

// WithVariables records which template placeholders the variables leave unresolved.
func WithVariables(vars Variables) ReportOption {
	return func(o *reportOptions) { o.vars = vars }
}

// BuildReport assembles a Report from already computed inputs. It performs no I/O.
func BuildReport(tpl Template, res ValidationResult, opts ...ReportOption) *Report {
	o := reportOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	unresolved := make([]string, 0)
	if o.vars != nil {
		unresolved = Unresolved(tpl.Content, o.vars)
	}

	status := StatusWarning
	if res.Passed() {
		status = StatusPass
	}

	return &Report{
		RunID:        o.id,
		Timestamp:    o.now,
		TemplateFile: tpl.Path,
		Validation: ReportValidation{
			Structure:              res.Sections,
			AllSectionsPresent:     res.Sections.AllPresent(),
			MissingSections:        res.Missing(),
			FormatIssues:           res.IssueMessages(),
			FormatIssuesCount:      len(res.Issues),
			UnresolvedPlaceholders: unresolved,
		},
		Statistics:          ComputeStatistics(tpl.Content),
		TemplateFingerprint: mdfp.CalculateFingerprintFromParts("", tpl.Content),
		Status:              status,
	}
}
