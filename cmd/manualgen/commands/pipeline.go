package commands

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/manualgen/internal/config"
	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
	"git.home.luguber.info/inful/manualgen/internal/logfields"
	"git.home.luguber.info/inful/manualgen/internal/manual"
	"git.home.luguber.info/inful/manualgen/internal/metrics"
)

// PipelineFlags are shared by the commands that run the generator. Empty
// values fall back to the config file, then to built-in defaults.
type PipelineFlags struct {
	Template     string            `short:"t" help:"Template file (default docs/templates/user-manual-template.md)"`
	Output       string            `short:"o" help:"Generated manual path (default docs/user-manual.md)"`
	Report       string            `short:"r" help:"Validation report path, '-' for stdout (default reports/validation-report.json)"`
	ReportFormat string            `name:"report-format" help:"Report format: json or text (default json)"`
	Version      string            `name:"version" help:"Manual version substituted for {{version}}"`
	Vars         map[string]string `name:"var" help:"Extra placeholder value as key=value (repeatable)"`
	MetricsFile  string            `name:"metrics-file" help:"Write run metrics in Prometheus textfile format"`
}

// settings is the resolved view of flags over config.
type settings struct {
	template     string
	output       string
	report       string
	reportFormat manual.Format
	required     []string
	layers       []map[string]string
	metricsFile  string
}

func (f *PipelineFlags) resolve(cfg *config.Config) (*settings, error) {
	s := &settings{
		template:    pick(f.Template, cfg.Template),
		output:      pick(f.Output, cfg.Output),
		report:      pick(f.Report, cfg.Report),
		required:    cfg.RequiredSections,
		metricsFile: pick(f.MetricsFile, cfg.MetricsFile),
	}

	format, err := manual.ParseFormat(pick(f.ReportFormat, cfg.ReportFormat))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid report format").Fatal().Build()
	}
	s.reportFormat = format

	if s.template == s.output {
		return nil, errors.ConfigError("output must differ from template").
			WithContext(errors.ContextPath, s.output).
			Build()
	}

	fromConfig := map[string]string{}
	if cfg.SystemName != "" {
		fromConfig[manual.VarSystemName] = cfg.SystemName
	}
	if cfg.Version != "" {
		fromConfig[manual.VarVersion] = cfg.Version
	}
	s.layers = append(s.layers, fromConfig, cfg.Variables, f.Vars)
	if f.Version != "" {
		s.layers = append(s.layers, map[string]string{manual.VarVersion: f.Version})
	}
	return s, nil
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

// runPipeline runs one generation (or validation) and writes the optional
// metrics textfile afterwards.
func runPipeline(g *Global, s *settings, validateOnly bool) (*manual.RunResult, error) {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var promRecorder *metrics.PrometheusRecorder
	if s.metricsFile != "" {
		promRecorder = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
		recorder = promRecorder
	}

	gen := manual.NewGenerator(
		manual.WithRequiredSections(s.required),
		manual.WithRecorder(recorder),
		manual.WithLogger(g.Logger),
		manual.WithStdout(g.Stdout),
	)

	result, err := gen.Run(manual.RunOptions{
		TemplatePath: s.template,
		OutputPath:   s.output,
		ReportPath:   s.report,
		ReportFormat: s.reportFormat,
		Variables:    gen.DefaultVariables().With(s.layers...),
		ValidateOnly: validateOnly,
	})

	if promRecorder != nil {
		if werr := promRecorder.WriteTextfile(s.metricsFile); werr != nil {
			g.Logger.Warn("Failed to write metrics textfile", slog.String("path", s.metricsFile), logfields.Error(werr))
		}
	}

	if result != nil && result.Report != nil {
		g.Logger.Info("Run finished",
			logfields.RunID(result.Report.RunID),
			logfields.Template(s.template),
			logfields.Status(string(result.Report.Status)),
			logfields.Issues(result.Report.Validation.FormatIssuesCount))
	}
	return result, err
}
