package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if classified, ok := AsClassified(err); ok {
		switch classified.Category() {
		case CategoryValidation:
			return 2 // Required sections missing
		case CategoryNotFound:
			return 4 // Template not found
		case CategoryConfig:
			return 7 // Configuration error
		case CategoryFileSystem:
			return 11 // Unexpected I/O error
		case CategoryInternal:
			return 10 // Internal error
		}
	}

	return 1
}

// FormatError formats an error for user-friendly display. Causes are only
// shown in verbose mode.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("ERROR: %v", err)
	}

	msg := "ERROR: " + classified.Message()
	if missing, ok := classified.Context().GetStrings(ContextMissing); ok && len(missing) > 0 {
		msg += ": " + strings.Join(missing, ", ")
	} else if path, ok := classified.Context().GetString(ContextPath); ok && path != "" {
		msg += ": " + path
	}

	if a.verbose && classified.Cause() != nil {
		msg += fmt.Sprintf(" (%v)", classified.Cause())
	}
	return msg
}

// Report logs err, prints the user-facing message to w and returns the exit code.
func (a *CLIErrorAdapter) Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(w, a.FormatError(err))
	return a.ExitCodeFor(err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	os.Exit(a.Report(os.Stderr, err))
}

// shouldLog determines if an error should be logged in addition to being printed.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	// User-facing categories are already explained by the printed message.
	return !IsClassified(err) || HasCategory(err, CategoryInternal)
}

func (a *CLIErrorAdapter) logError(err error) {
	if classified, ok := AsClassified(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(classified.Category())),
		}
		if classified.Cause() != nil {
			attrs = append(attrs, slog.String("cause", classified.Cause().Error()))
		}
		a.logger.LogAttrs(context.Background(), a.slogLevelFromSeverity(classified.Severity()), classified.Message(), attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts ClassifiedError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
