package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sappo/libsimilarity/registry"
)

func newCmd_List() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List registered measures, optionally filtered by a glob pattern.",
		ArgsUsage: "[pattern]",
		Action: func(c *cli.Context) error {
			pattern := c.Args().First()
			for _, name := range registry.List(pattern) {
				fmt.Println(name)
			}
			return nil
		},
	}
}
