package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/matrix"
	"github.com/sappo/libsimilarity/registry"
)

// newCmd_Matrix implements the "matrix" front end: load every line of a
// file (or stdin) as one input string, run the parallel matrix driver
// over the resolved row/col ranges and split, and print the resulting
// values. Unless -q is given, a progress bar sized to the cell count is
// shown and completed when the run returns; it is not advanced cell by
// cell.
func newCmd_Matrix() *cli.Command {
	return &cli.Command{
		Name:      "matrix",
		Usage:     "Compute a similarity/dissimilarity matrix over the lines of a file.",
		ArgsUsage: "<strings-file | ->",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "m", Usage: "Measure name.", Value: "dist_levenshtein"},
			&cli.StringFlag{Name: "g", Usage: "Granularity: bytes, tokens, or bits.", Value: "bytes"},
			&cli.StringFlag{Name: "d", Usage: "Token delimiters (tokens granularity only).", Value: " "},
			&cli.StringFlag{Name: "row", Usage: "row_range, as \"start:end\" (default: whole collection)."},
			&cli.StringFlag{Name: "col", Usage: "col_range, as \"start:end\" (default: whole collection)."},
			&cli.StringFlag{Name: "split", Usage: "split, as \"blocks:id\" (default: no split)."},
			&cli.IntFlag{Name: "precision", Usage: "Decimal places in the printed value.", Value: 6},
			&cli.DurationFlag{Name: "M", Usage: "Benchmark mode: run for this wall-clock budget instead of computing a full matrix."},
			&cli.BoolFlag{Name: "q", Usage: "Quiet: suppress the progress bar."},
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

			path := c.Args().First()
			var f *os.File
			if path == "" || path == "-" {
				f = os.Stdin
			} else {
				f, err = os.Open(path)
				if err != nil {
					return fmt.Errorf("matrix: %w", err)
				}
				defer f.Close()
			}

			var items []string
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					items = append(items, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("matrix: %w", err)
			}

			strs, err := hstring.LoadAll(hstring.NewSliceLoader(items), plan)
			if err != nil {
				return fmt.Errorf("matrix: %w", err)
			}

			mctx, err := registry.New(c.String("m"), cfg, nil)
			if err != nil {
				return fmt.Errorf("matrix: %w", err)
			}

			if budget := c.Duration("M"); budget > 0 {
				res := matrix.Benchmark(mctx, strs, budget)
				fmt.Printf("%s: %d comparisons in %s (%.1f/s)\n", res.Measure, res.Comparisons, res.Elapsed, res.PerSecond)
				return nil
			}

			row, err := matrix.ParseRange(c.String("row"), len(strs))
			if err != nil {
				return fmt.Errorf("matrix: %w", err)
			}
			col, err := matrix.ParseRange(c.String("col"), len(strs))
			if err != nil {
				return fmt.Errorf("matrix: %w", err)
			}
			split, err := matrix.ParseSplit(c.String("split"))
			if err != nil {
				return fmt.Errorf("matrix: %w", err)
			}

			var bar *progressbar.ProgressBar
			if !c.Bool("q") {
				total := matrix.NewView(row, col).Cells()
				bar = progressbar.Default(int64(len(total)), mctx.Name)
			}

			view, runID, err := matrix.Run(c.Context, mctx, strs, row, col, split)
			if err != nil {
				return fmt.Errorf("matrix: %w", err)
			}
			if bar != nil {
				_ = bar.Finish()
			}
			klog.Infof("matrix run %s complete", runID)

			precision := c.Int("precision")
			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()
			for _, row := range view.Dense() {
				for i, v := range row {
					if i > 0 {
						w.WriteByte(' ')
					}
					w.WriteString(strconv.FormatFloat(float64(v), 'f', precision, 32))
				}
				w.WriteByte('\n')
			}
			return nil
		},
	}
}
