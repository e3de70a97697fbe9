package main

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is the release of the command. It can be overridden at build time
// via -ldflags.
var Version = "0.1.0-dev"

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Module    string `json:"module,omitempty"`
}

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the decint version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := versionPayload{Tool: "decint", Version: Version}
			if info, ok := debug.ReadBuildInfo(); ok {
				p.GoVersion = info.GoVersion
				p.Module = info.Main.Path
			}
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "pretty":
				_, err := fmt.Fprintf(out, "%s %s (%s)\n", p.Tool, p.Version, p.GoVersion)
				return err
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			return errors.Errorf("unsupported format %q (must be pretty or json)", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
