// Package config loads the optional manualgen YAML configuration.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
	"git.home.luguber.info/inful/manualgen/internal/foundation/fileio"
	"git.home.luguber.info/inful/manualgen/internal/manual"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "manualgen.yaml"

// Defaults for the file locations.
const (
	DefaultTemplate = "docs/templates/user-manual-template.md"
	DefaultOutput   = "docs/user-manual.md"
	DefaultReport   = "reports/validation-report.json"
)

// Config represents the manualgen configuration file.
type Config struct {
	Template         string            `yaml:"template"`
	Output           string            `yaml:"output"`
	Report           string            `yaml:"report"`
	ReportFormat     string            `yaml:"report_format,omitempty"`
	Version          string            `yaml:"version,omitempty"`     // manual version placeholder value
	SystemName       string            `yaml:"system_name,omitempty"` // system_name placeholder value
	RequiredSections []string          `yaml:"required_sections,omitempty"`
	Variables        map[string]string `yaml:"variables,omitempty"`
	MetricsFile      string            `yaml:"metrics_file,omitempty"` // node-exporter textfile
	Logging          LoggingConfig     `yaml:"logging,omitempty"`

	warnings []string
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Load loads configuration from configPath. A missing file is not an error:
// defaults plus environment overrides are returned instead. Variables in the
// YAML are expanded from the environment after .env files are loaded.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	cfg := &Config{}

	// #nosec G304 -- config path is provided by the user.
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
				Fatal().
				WithContext(errors.ContextPath, configPath).
				Build()
		}
	case stderrors.Is(err, fs.ErrNotExist):
	default:
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext(errors.ContextPath, configPath).
			Build()
	}

	applyEnvOverrides(cfg)

	res, err := NormalizeConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg.warnings = res.Warnings

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Warnings returns the adjustments made while normalizing the loaded file.
func (c *Config) Warnings() []string {
	return c.warnings
}

func applyDefaults(cfg *Config) {
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Report == "" {
		cfg.Report = DefaultReport
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = string(manual.FormatJSON)
	}
	if len(cfg.RequiredSections) == 0 {
		cfg.RequiredSections = append([]string(nil), manual.DefaultRequiredSections...)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext(errors.ContextPath, configPath).
			Build()
	}

	example := Config{
		Template:         DefaultTemplate,
		Output:           DefaultOutput,
		Report:           DefaultReport,
		ReportFormat:     string(manual.FormatJSON),
		Version:          manual.DefaultVersion,
		SystemName:       manual.DefaultSystemName,
		RequiredSections: manual.DefaultRequiredSections,
		Variables: map[string]string{
			"support_email": "${SUPPORT_EMAIL}",
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Fatal().Build()
	}

	if err := fileio.WriteFile(configPath, data); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext(errors.ContextPath, configPath).
			Build()
	}
	return nil
}

