package config

import (
	"strings"

	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
	"git.home.luguber.info/inful/manualgen/internal/manual"
)

// ValidateConfig checks a normalized, defaulted configuration.
func ValidateConfig(cfg *Config) error {
	if _, err := manual.ParseFormat(cfg.ReportFormat); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid report_format").Fatal().Build()
	}
	if cfg.Template == cfg.Output {
		return errors.ConfigError("output must differ from template").
			WithContext(errors.ContextPath, cfg.Output).
			Build()
	}
	for k := range cfg.Variables {
		if strings.ContainsAny(k, "{}") {
			return errors.ConfigError("variable names must not contain braces").
				WithContext("variable", k).
				Build()
		}
	}
	return nil
}
