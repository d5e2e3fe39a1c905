package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes enumerations and lists in place before
// defaults are applied.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, errors.InternalError("config nil").Build()
	}
	res := &NormalizationResult{}

	c.Template = strings.TrimSpace(c.Template)
	c.Output = strings.TrimSpace(c.Output)
	c.Report = strings.TrimSpace(c.Report)
	c.ReportFormat = strings.ToLower(strings.TrimSpace(c.ReportFormat))
	c.RequiredSections = normalizeSections(c.RequiredSections, res)
	normalizeLogging(&c.Logging, res)

	vars, err := normalizeVariables(c.Variables, res)
	if err != nil {
		return nil, err
	}
	c.Variables = vars
	return res, nil
}

// normalizeVariables trims variable names. Two names that are equal after
// trimming are rejected, since neither value can be preferred.
func normalizeVariables(in map[string]string, res *NormalizationResult) (map[string]string, error) {
	if len(in) == 0 {
		return in, nil
	}
	out := make(map[string]string, len(in))
	origin := make(map[string]string, len(in))
	for _, k := range slices.Sorted(maps.Keys(in)) {
		tk := strings.TrimSpace(k)
		if tk == "" {
			res.Warnings = append(res.Warnings, "dropped variable with empty name")
			continue
		}
		if prev, dup := origin[tk]; dup {
			return nil, errors.ConfigError("duplicate variable name after trimming").
				WithContext("variable", tk).
				WithContext("keys", []string{prev, k}).
				Build()
		}
		if tk != k {
			res.Warnings = append(res.Warnings, warnChanged("variables key", k, tk))
		}
		origin[tk] = k
		out[tk] = in[k]
	}
	return out, nil
}

// normalizeSections trims and dedupes required sections. Order is kept
// because the report lists sections in configured order.
func normalizeSections(in []string, res *NormalizationResult) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) != len(in) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("normalized required_sections list (%d -> %d entries)", len(in), len(out)))
	}
	return out
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if lvl, err := logLevelNormalizer.NormalizeWithError(string(l.Level)); err != nil {
		res.Warnings = append(res.Warnings, warnUnknown("logging.level", string(l.Level), string(LogLevelInfo)))
		l.Level = LogLevelInfo
	} else if l.Level != "" {
		l.Level = lvl
	}
	if f, err := logFormatNormalizer.NormalizeWithError(string(l.Format)); err != nil {
		res.Warnings = append(res.Warnings, warnUnknown("logging.format", string(l.Format), string(LogFormatText)))
		l.Format = LogFormatText
	} else if l.Format != "" {
		l.Format = f
	}
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
