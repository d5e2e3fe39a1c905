// Package metrics records manual generation metrics.
//
// Components receive a Recorder through their options and default to
// NoopRecorder, so no nil checks are needed at call sites. The CLI swaps in a
// PrometheusRecorder when --metrics-file is set and writes the gathered
// registry in the node_exporter textfile format after the run.
package metrics
