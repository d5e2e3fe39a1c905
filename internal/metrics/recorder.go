package metrics

import "time"

// OutcomeLabel enumerates run outcomes for counters.
type OutcomeLabel string

const (
	OutcomePass    OutcomeLabel = "pass"
	OutcomeWarning OutcomeLabel = "warning"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
	SetMissingSections(n int)
	SetFormatIssues(n int)
	SetTemplateBytes(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                 {}
func (NoopRecorder) SetMissingSections(int)                     {}
func (NoopRecorder) SetFormatIssues(int)                        {}
func (NoopRecorder) SetTemplateBytes(int)                       {}
