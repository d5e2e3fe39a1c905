package commands

// ValidateCmd implements the 'validate' command: generate without writing the manual.
type ValidateCmd struct {
	PipelineFlags `embed:""`
}

func (c *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root)
	if err != nil {
		return err
	}
	s, err := c.resolve(cfg)
	if err != nil {
		return err
	}
	_, err = runPipeline(g, s, true)
	return err
}
