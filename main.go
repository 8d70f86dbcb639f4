package main

import (
	"github.com/alecthomas/kong"

	"neat.bar/Neat/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("neat"), kong.Description("Neat is a home bar manager: a cocktail menu, a bar cart, and a tasting journal."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
