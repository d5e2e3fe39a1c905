package commands

// GenerateCmd implements the default 'generate' command.
type GenerateCmd struct {
	PipelineFlags `embed:""`

	ValidateOnly bool `name:"validate-only" help:"Only validate the template and write the report"`
}

func (c *GenerateCmd) Run(g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root)
	if err != nil {
		return err
	}
	s, err := c.resolve(cfg)
	if err != nil {
		return err
	}
	_, err = runPipeline(g, s, c.ValidateOnly)
	return err
}
