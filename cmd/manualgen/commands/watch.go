package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/manualgen/internal/logfields"
	"git.home.luguber.info/inful/manualgen/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	PipelineFlags `embed:""`

	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
}

func (c *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return c.run(ctx, g, root)
}

func (c *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root)
	if err != nil {
		return err
	}
	s, err := c.resolve(cfg)
	if err != nil {
		return err
	}

	regenerate := func(context.Context) error {
		_, err := runPipeline(g, s, false)
		return err
	}

	// Watch before the first run so edits made while it runs are not lost.
	w, err := watch.New([]string{s.template}, regenerate,
		watch.WithDebounce(c.Debounce),
		watch.WithLogger(g.Logger))
	if err != nil {
		return err
	}

	// A failing first run does not stop watching; the template is expected
	// to be edited into shape.
	if err := regenerate(ctx); err != nil {
		g.Logger.Error("Initial generation failed", logfields.Error(err))
	}

	g.Logger.Info("Watching template for changes", logfields.Template(s.template))
	if err := w.Run(ctx); err != nil {
		return err
	}
	g.Logger.Info("Watch stopped")
	return nil
}
