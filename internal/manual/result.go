package manual

// ValidationResult holds the outcome of validating one template.
type ValidationResult struct {
	Sections SectionStructure
	Issues   []FormatIssue
}

// Validate checks content against the required sections and the format rules.
func Validate(content string, required []string) ValidationResult {
	return ValidationResult{
		Sections: ValidateStructure(content, required),
		Issues:   CheckFormat(content),
	}
}

// Missing returns the absent required sections.
func (r ValidationResult) Missing() []string { return r.Sections.Missing() }

// HasIssues reports whether any format issue was found.
func (r ValidationResult) HasIssues() bool { return len(r.Issues) > 0 }

// Passed reports whether every section is present and there are no format issues.
func (r ValidationResult) Passed() bool {
	return r.Sections.AllPresent() && !r.HasIssues()
}

// IssueMessages returns the issue texts in order.
func (r ValidationResult) IssueMessages() []string {
	out := make([]string, 0, len(r.Issues))
	for _, i := range r.Issues {
		out = append(out, i.Message)
	}
	return out
}
