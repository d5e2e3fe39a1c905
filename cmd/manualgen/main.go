package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/manualgen/cmd/manualgen/commands"
	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
	"git.home.luguber.info/inful/manualgen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("manualgen"),
		kong.Description("Validate a Markdown user manual template and generate the manual."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := commands.NewGlobal(os.Stdout)
	err := parser.Run(global, cli)

	errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
