package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/xgx-io/xgx-meta"

// Version information. These variables can be overridden at build time via
// -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = ""
	BuildDate = ""
)

var (
	versionNameColor = color.New(color.FgCyan, color.Bold)
	versionNumColor  = color.New(color.FgGreen, color.Bold)
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the xgxdump version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				fmt.Fprintf(out, "%s %s\n", versionNameColor.Sprint("xgxdump"), versionNumColor.Sprint("v"+Version))
			} else {
				fmt.Fprintf(out, "xgxdump v%s\n", Version)
			}
			fmt.Fprintf(out, "module: %s\n", modulePath)
			if GitCommit != "" {
				fmt.Fprintf(out, "commit: %s\n", GitCommit)
			}
			if BuildDate != "" {
				fmt.Fprintf(out, "built: %s\n", BuildDate)
			}
			return nil
		},
	}
}
