package manual

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
	"git.home.luguber.info/inful/manualgen/internal/foundation/fileio"
	"git.home.luguber.info/inful/manualgen/internal/logfields"
	"git.home.luguber.info/inful/manualgen/internal/metrics"
)

// Stage names used for logging and metrics.
const (
	StageLoad        = "load"
	StageValidate    = "validate"
	StageWriteManual = "write_manual"
	StageWriteReport = "write_report"
)

// StdoutPath as a report path writes the report to the generator's output writer.
const StdoutPath = "-"

// Generator runs the load, validate, substitute and write pipeline.
type Generator struct {
	required []string
	now      func() time.Time
	newID    func() string
	recorder metrics.Recorder
	logger   *slog.Logger
	stdout   io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithRequiredSections replaces DefaultRequiredSections. An empty list keeps the default.
func WithRequiredSections(names []string) Option {
	return func(g *Generator) {
		if len(names) > 0 {
			g.required = append([]string(nil), names...)
		}
	}
}

// WithClock sets the time source for report timestamps and the date variable.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDFunc sets the report run id source.
func WithIDFunc(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStdout sets where a report with path "-" is written.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) { g.stdout = w }
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		required: DefaultRequiredSections,
		now:      time.Now,
		newID:    uuid.NewString,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RequiredSections returns the sections this generator enforces.
func (g *Generator) RequiredSections() []string {
	return append([]string(nil), g.required...)
}

// DefaultVariables returns the built-in variables for the current time.
func (g *Generator) DefaultVariables() Variables {
	return DefaultVariables(g.now())
}

// Load reads the template at path.
func (g *Generator) Load(path string) (Template, error) {
	defer g.observe(StageLoad, time.Now())

	tpl, err := ReadTemplate(path)
	if err != nil {
		return Template{}, err
	}
	g.recorder.SetTemplateBytes(len(tpl.Content))
	g.logger.Debug("Template loaded", logfields.Template(path), slog.Int("bytes", len(tpl.Content)))
	return tpl, nil
}

// Validate checks the template structure and format.
func (g *Generator) Validate(tpl Template) ValidationResult {
	defer g.observe(StageValidate, time.Now())

	res := Validate(tpl.Content, g.required)

	for _, name := range res.Missing() {
		g.logger.Debug("Required section missing", logfields.Template(tpl.Path), logfields.Section(name))
	}
	for _, issue := range res.Issues {
		g.logger.Warn("Format issue", logfields.Template(tpl.Path), logfields.Line(issue.Line), slog.String("issue", issue.Message))
	}

	g.recorder.SetMissingSections(len(res.Missing()))
	g.recorder.SetFormatIssues(len(res.Issues))
	return res
}

// Outcome describes a written manual.
type Outcome struct {
	OutputPath string
	Bytes      int
	Unresolved []string
}

// Generate substitutes vars into the template and writes the manual to
// outputPath. It refuses, writing nothing, when required sections are missing.
func (g *Generator) Generate(tpl Template, res ValidationResult, vars Variables, outputPath string) (*Outcome, error) {
	if missing := res.Missing(); len(missing) > 0 {
		return nil, missingSectionsError(tpl.Path, missing)
	}

	defer g.observe(StageWriteManual, time.Now())

	content := Substitute(tpl.Content, vars)
	if err := fileio.WriteFile(outputPath, []byte(content)); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to write manual").
			Fatal().
			WithContext(errors.ContextPath, outputPath).
			Build()
	}

	unresolved := Unresolved(tpl.Content, vars)
	if len(unresolved) > 0 {
		g.logger.Debug("Placeholders left unresolved", logfields.Output(outputPath), slog.Any("placeholders", unresolved))
	}
	g.logger.Info("User manual generated", logfields.Output(outputPath), slog.Int("bytes", len(content)))

	return &Outcome{OutputPath: outputPath, Bytes: len(content), Unresolved: unresolved}, nil
}

// Report assembles the validation report for tpl.
func (g *Generator) Report(tpl Template, res ValidationResult, vars Variables) *Report {
	return BuildReport(tpl, res,
		WithTimestamp(g.now()),
		WithRunID(g.newID()),
		WithVariables(vars))
}

// WriteReport renders report in format and writes it to path, or to the
// configured stdout when path is "-".
func (g *Generator) WriteReport(report *Report, path string, format Format) error {
	defer g.observe(StageWriteReport, time.Now())

	var buf bytes.Buffer
	if err := NewFormatter(format).Format(&buf, report); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to render report").Fatal().Build()
	}

	if path == StdoutPath {
		if _, err := g.stdout.Write(buf.Bytes()); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to write report").Fatal().Build()
		}
		return nil
	}

	if err := fileio.WriteFile(path, buf.Bytes()); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write report").
			Fatal().
			WithContext(errors.ContextPath, path).
			Build()
	}
	g.logger.Info("Validation report generated", logfields.Report(path), logfields.Status(string(report.Status)))
	return nil
}

// RunOptions selects the files and mode for Run.
type RunOptions struct {
	TemplatePath string
	OutputPath   string
	ReportPath   string // empty skips the report
	ReportFormat Format
	Variables    Variables // nil means DefaultVariables
	ValidateOnly bool
}

// RunResult carries everything one Run computed.
type RunResult struct {
	Template   Template
	Validation ValidationResult
	Report     *Report
	Outcome    *Outcome // nil when no manual was written
}

// Run executes one full pipeline. The report is written whenever the template
// could be read, even if generation was refused, so that it explains why.
// Missing required sections are an error in validate-only mode too.
func (g *Generator) Run(opts RunOptions) (*RunResult, error) {
	tpl, err := g.Load(opts.TemplatePath)
	if err != nil {
		g.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return nil, err
	}

	vars := opts.Variables
	if vars == nil {
		vars = g.DefaultVariables()
	}
	g.logger.Debug("Placeholder values", logfields.Template(tpl.Path), slog.Any("variables", vars.Keys()))

	result := &RunResult{Template: tpl, Validation: g.Validate(tpl)}
	result.Report = g.Report(tpl, result.Validation, vars)

	var runErr error
	if opts.ValidateOnly {
		if missing := result.Validation.Missing(); len(missing) > 0 {
			runErr = missingSectionsError(tpl.Path, missing)
		}
	} else {
		result.Outcome, runErr = g.Generate(tpl, result.Validation, vars, opts.OutputPath)
	}

	if opts.ReportPath != "" {
		if err := g.WriteReport(result.Report, opts.ReportPath, opts.ReportFormat); err != nil && runErr == nil {
			runErr = err
		}
	}

	switch {
	case runErr != nil:
		g.recorder.IncRunOutcome(metrics.OutcomeFailed)
	case result.Report.Status == StatusPass:
		g.recorder.IncRunOutcome(metrics.OutcomePass)
	default:
		g.recorder.IncRunOutcome(metrics.OutcomeWarning)
	}

	return result, runErr
}

func (g *Generator) observe(stage string, start time.Time) {
	d := time.Since(start)
	g.recorder.ObserveStageDuration(stage, d)
	g.logger.Debug("Stage finished", logfields.Stage(stage), logfields.DurationMS(float64(d.Microseconds())/1000))
}

func missingSectionsError(path string, missing []string) error {
	return errors.ValidationError("missing required sections").
		WithContext(errors.ContextMissing, missing).
		WithContext(errors.ContextPath, path).
		Build()
}
