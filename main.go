package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	_ "github.com/sappo/libsimilarity/measures"
)

var gitCommitSHA = ""

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "harry",
		Version:     gitCommitSHA,
		Description: "Compute similarity/dissimilarity matrices over collections of strings using pluggable measures.",
		Before: func(c *cli.Context) error {
			return nil
		},
		Flags: []cli.Flag{
			FlagVerbose,
			FlagConfig,
		},
		Action: nil,
		Commands: []*cli.Command{
			newCmd_Compare(),
			newCmd_Matrix(),
			newCmd_List(),
			newCmd_Defaults(),
			newCmd_Version(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}

var FlagVerbose = &cli.BoolFlag{
	Name:  "v",
	Usage: "Verbose flag; accepted, but no command reads it.",
	Value: false,
}

var FlagConfig = &cli.StringFlag{
	Name:  "C",
	Usage: "Path to a YAML configuration file. Missing file falls back to built-in defaults.",
	Value: "",
}
