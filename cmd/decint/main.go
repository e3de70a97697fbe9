// Command decint evaluates arbitrary-precision integer arithmetic from the
// command line.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cockroachdb/decint/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "decint",
		Short:         "Arbitrary-precision decimal integer calculator",
		Long:          `decint adds, subtracts and multiplies integers of any size`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", config.DefaultFile, "path to the TOML settings file")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off); overrides the settings file")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// main executes the root command and exits with status 1 on error.
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		errColor(os.Stderr, "auto").Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// settings loads the settings file named by --config and applies --color.
func settings(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if flags.Changed("color") {
		mode, err := flags.GetString("color")
		if err != nil {
			return config.Config{}, err
		}
		if err := config.ValidateColor(mode); err != nil {
			return config.Config{}, errors.Wrap(err, "--color")
		}
		cfg.Color = mode
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func useColor(w io.Writer, mode string) bool {
	return mode == config.ColorOn || (mode == config.ColorAuto && isTerminal(w))
}

func paint(w io.Writer, mode string, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if useColor(w, mode) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func errColor(w io.Writer, mode string) *color.Color {
	return paint(w, mode, color.FgRed, color.Bold)
}

func resultColor(w io.Writer, mode string) *color.Color {
	return paint(w, mode, color.FgGreen)
}
