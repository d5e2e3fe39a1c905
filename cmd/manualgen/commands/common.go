// Package commands implements the manualgen command line.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/manualgen/internal/config"
)

// Global carries state shared by all commands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// NewGlobal creates the shared command state writing command output to stdout.
func NewGlobal(stdout io.Writer) *Global {
	return &Global{Logger: slog.Default(), Stdout: stdout}
}

// CLI definition & global flags.
type CLI struct {
	Config       string           `short:"c" help:"Configuration file path (optional)" default:"manualgen.yaml"`
	Verbose      bool             `short:"v" help:"Enable verbose logging"`
	LogLevel     string           `name:"log-level" help:"Log level: debug, info, warn or error (default from config, else info)"`
	LogFormat    string           `name:"log-format" help:"Log output format: text or json (default from config, else text)"`
	BuildVersion kong.VersionFlag `name:"build-version" help:"Show manualgen build version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Validate the template and generate the user manual (default)"`
	Validate ValidateCmd `cmd:"" help:"Validate the template and write the report without generating"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the manual whenever the template changes"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.NormalizeLogLevel(c.LogLevel)
	if c.Verbose {
		level = config.LogLevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, config.NormalizeLogFormat(c.LogFormat)))
	return nil
}

// loadConfig loads the config file and lets its logging section refine the
// logger unless the matching flags were given.
func (g *Global) loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if root.LogLevel != "" {
		level = config.NormalizeLogLevel(root.LogLevel)
	}
	if root.Verbose {
		level = config.LogLevelDebug
	}
	format := cfg.Logging.Format
	if root.LogFormat != "" {
		format = config.NormalizeLogFormat(root.LogFormat)
	}
	g.Logger = newLogger(os.Stderr, level, format)
	slog.SetDefault(g.Logger)

	for _, w := range cfg.Warnings() {
		g.Logger.Warn("Config normalized", slog.String("warning", w))
	}
	return cfg, nil
}

func newLogger(w io.Writer, level config.LogLevel, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func slogLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
