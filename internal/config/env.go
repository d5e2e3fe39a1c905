package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override values from the config file.
const (
	EnvTemplate   = "MANUALGEN_TEMPLATE"
	EnvOutput     = "MANUALGEN_OUTPUT"
	EnvReport     = "MANUALGEN_REPORT"
	EnvVersion    = "MANUALGEN_VERSION"
	EnvSystemName = "MANUALGEN_SYSTEM_NAME"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first readable .env file. Existing process variables
// are not overridden. A missing file is fine.
func loadEnvFile() {
	for _, name := range envFiles {
		if err := godotenv.Load(name); err == nil {
			return
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	override := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	override(&cfg.Template, EnvTemplate)
	override(&cfg.Output, EnvOutput)
	override(&cfg.Report, EnvReport)
	override(&cfg.Version, EnvVersion)
	override(&cfg.SystemName, EnvSystemName)
}
