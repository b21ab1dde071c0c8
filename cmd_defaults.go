package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/sappo/libsimilarity/config"
)

// classicSpewConfig matches the teacher's dump style: indented, no
// pointer addresses or method calls cluttering the tree.
var classicSpewConfig = spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerMethods:   true,
	DisablePointerAddresses: true,
}

// newCmd_Defaults implements the "defaults" subcommand (alias "D"), the
// counterpart of the original CLI's "-D, --print_defaults" flag (spec.md
// §6): dump the built-in configuration defaults.
func newCmd_Defaults() *cli.Command {
	return &cli.Command{
		Name:    "defaults",
		Aliases: []string{"D"},
		Usage:   "Print the default configuration.",
		Action: func(c *cli.Context) error {
			classicSpewConfig.Dump(config.Default())
			return nil
		},
	}
}
