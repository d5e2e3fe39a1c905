package metrics

import (
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "manualgen"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	stageDuration   *prom.HistogramVec
	runOutcome      *prom.CounterVec
	missingSections prom.Gauge
	formatIssues    prom.Gauge
	templateBytes   prom.Gauge
	lastRun         prom.Gauge
}

// NewPrometheusRecorder constructs and registers the generator metrics on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Generation runs by final status",
		}, []string{"outcome"}),
		missingSections: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "missing_sections",
			Help:      "Required sections missing from the last validated template",
		}),
		formatIssues: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "format_issues",
			Help:      "Format warnings found in the last validated template",
		}),
		templateBytes: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "template_size_bytes",
			Help:      "Size of the last loaded template",
		}),
		lastRun: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed run",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.runOutcome, pr.missingSections, pr.formatIssues, pr.templateBytes, pr.lastRun)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
	p.lastRun.SetToCurrentTime()
}

func (p *PrometheusRecorder) SetMissingSections(n int) {
	if p == nil {
		return
	}
	p.missingSections.Set(float64(n))
}

func (p *PrometheusRecorder) SetFormatIssues(n int) {
	if p == nil {
		return
	}
	p.formatIssues.Set(float64(n))
}

func (p *PrometheusRecorder) SetTemplateBytes(n int) {
	if p == nil {
		return
	}
	p.templateBytes.Set(float64(n))
}

// Registry exposes the underlying registry for gathering.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// WriteTextfile writes the registry in the node_exporter textfile collector
// format. Parent directories are created as needed.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return prom.WriteToTextfile(path, p.reg)
}
