package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cockroachdb/decint/internal/calc"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr...>",
		Short: "Evaluate one expression, e.g. decint eval 12 + -3 '*' 4",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			v, err := calc.Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			resultColor(out, cfg.Color).Fprint(out, v.String())
			if cfg.TrailingNewline {
				_, err = out.Write([]byte{'\n'})
			}
			return err
		},
	}
}
