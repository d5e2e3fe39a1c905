package manual

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/manualgen/internal/markdown"
)

// IssueKind classifies a format issue.
type IssueKind string

const (
	IssueHeaderJump IssueKind = "header-level-jump"
	IssueEmptyLink  IssueKind = "empty-link"
)

// FormatIssue is a non-fatal Markdown formatting warning.
type FormatIssue struct {
	Kind    IssueKind
	Line    int
	Message string
}

func (i FormatIssue) String() string { return i.Message }

// CheckFormat runs the header hierarchy and link checks. Header issues come
// first, then link issues, each in document order.
func CheckFormat(content string) []FormatIssue {
	issues := CheckHeaderHierarchy(markdown.ScanHeadings(content))
	return append(issues, CheckLinks(content)...)
}

// CheckHeaderHierarchy flags every header that is more than one level deeper
// than the header immediately before it. The first header sets the baseline.
func CheckHeaderHierarchy(headings []markdown.Heading) []FormatIssue {
	issues := make([]FormatIssue, 0)
	if len(headings) == 0 {
		return issues
	}

	previous := headings[0].Level
	for _, h := range headings[1:] {
		if h.Level > previous+1 {
			issues = append(issues, FormatIssue{
				Kind:    IssueHeaderJump,
				Line:    h.Line,
				Message: fmt.Sprintf("Header level jump from %d to %d at line %d", previous, h.Level, h.Line),
			})
		}
		previous = h.Level
	}
	return issues
}

// CheckLinks flags inline links whose destination is empty or blank.
func CheckLinks(content string) []FormatIssue {
	issues := make([]FormatIssue, 0)
	for _, l := range markdown.ScanInlineLinks(content) {
		if strings.TrimSpace(l.Destination) != "" {
			continue
		}
		issues = append(issues, FormatIssue{
			Kind:    IssueEmptyLink,
			Line:    l.Line,
			Message: fmt.Sprintf("Empty link URL for '%s'", l.Text),
		})
	}
	return issues
}
