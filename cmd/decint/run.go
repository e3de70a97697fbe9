package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/decint/internal/calc"
)

func newRunCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate every expression in a file, one per line",
		Long: `run evaluates each line of file as an expression. Blank lines and
lines starting with # are skipped. Each result is printed as "expr = value";
failures are reported on stderr and make the command exit non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to open input")
			}
			defer f.Close()
			exprs, err := readExprs(f)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", args[0])
			}

			results, err := calc.EvalAll(cmd.Context(), exprs, cfg.Workers)
			if err != nil {
				return err
			}

			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
			ok, bad := resultColor(stdout, cfg.Color), errColor(stderr, cfg.Color)
			var values bytes.Buffer
			failed := 0
			for i, r := range results {
				if r.Err != nil {
					failed++
					bad.Fprintf(stderr, "%s: %v\n", r.Expr, r.Err)
					continue
				}
				fmt.Fprintf(stdout, "%s = %s", r.Expr, ok.Sprint(r.Value))
				if cfg.TrailingNewline || i < len(results)-1 {
					fmt.Fprintln(stdout)
				}
				if _, err := r.Value.WriteTo(&values); err != nil {
					return err
				}
				values.WriteByte('\n')
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, values.Bytes(), 0o644); err != nil {
					return errors.Wrap(err, "failed to write results")
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d expressions failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also write each successful result to this file")
	return cmd
}

// readExprs returns the non-blank, non-comment lines of r with surrounding
// space trimmed.
func readExprs(r io.Reader) ([]string, error) {
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, sc.Err()
}
