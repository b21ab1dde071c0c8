package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/sappo/libsimilarity/config"
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"
)

// newCmd_Compare implements the thin "compare" front end: read
// separator-delimited string pairs from stdin, one pair per line, and
// print the resolved measure's value for each. The file-format I/O
// adapters spec.md §1 scopes out aren't reimplemented here; this is a
// line-oriented harness sufficient to exercise the library end-to-end.
func newCmd_Compare() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare string pairs read from stdin, one \"x<sep>y\" pair per line.",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "m", Usage: "Measure name.", Value: "dist_levenshtein"},
			&cli.StringFlag{Name: "g", Usage: "Granularity: bytes, tokens, or bits.", Value: "bytes"},
			&cli.StringFlag{Name: "d", Usage: "Token delimiters (tokens granularity only).", Value: " "},
			&cli.IntFlag{Name: "precision", Usage: "Decimal places in the printed value.", Value: 6},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfigFlag(c)
			if err != nil {
				return err
			}

			plan, err := planFromFlags(c)
			if err != nil {
				return err
			}

			mctx, err := registry.New(c.String("m"), cfg, nil)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			scanner := bufio.NewScanner(os.Stdin)
			precision := c.Int("precision")
			sep := cfg.Output.Separator
			if sep == "" {
				sep = "\t"
			}

			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				parts := strings.SplitN(line, sep, 2)
				if len(parts) != 2 {
					klog.Warningf("compare: skipping malformed line (expected two fields separated by %q): %q", sep, line)
					continue
				}

				x := hstring.New([]byte(parts[0]))
				y := hstring.New([]byte(parts[1]))
				if err := x.Preprocess(plan); err != nil {
					return fmt.Errorf("compare: %w", err)
				}
				if err := y.Preprocess(plan); err != nil {
					return fmt.Errorf("compare: %w", err)
				}

				val := mctx.Compare(x, y)
				fmt.Println(strconv.FormatFloat(val, 'f', precision, 64))
			}
			return scanner.Err()
		},
	}
}

func planFromFlags(c *cli.Context) (*hstring.PreprocessPlan, error) {
	plan := &hstring.PreprocessPlan{}
	switch strings.ToLower(c.String("g")) {
	case "bytes", "":
		plan.Granularity = hstring.Byte
	case "tokens":
		plan.Granularity = hstring.Token
		d := &hstring.Delimiters{}
		if err := d.ParseDelim(c.String("d")); err != nil {
			return nil, err
		}
		plan.Delims = d
	case "bits":
		plan.Granularity = hstring.Bit
	default:
		return nil, fmt.Errorf("compare: unknown granularity %q", c.String("g"))
	}
	return plan, nil
}

func loadConfigFlag(c *cli.Context) (*config.Config, error) {
	path := c.String("C")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
