package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyTemplate   = "template"
	KeyOutput     = "output"
	KeyReport     = "report"
	KeySection    = "section"
	KeyStatus     = "status"
	KeyStage      = "stage"
	KeyLine       = "line"
	KeyIssues     = "issues"
	KeyDurationMS = "duration_ms"
	KeyRunID      = "run_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Template(path string) slog.Attr  { return slog.String(KeyTemplate, path) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Report(path string) slog.Attr    { return slog.String(KeyReport, path) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Status(s string) slog.Attr       { return slog.String(KeyStatus, s) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Line(n int) slog.Attr            { return slog.Int(KeyLine, n) }
func Issues(n int) slog.Attr          { return slog.Int(KeyIssues, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
