package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	xgxmeta "github.com/xgx-io/xgx-meta"
)

func newErrorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "errors",
		Short: "List builtin and registered error classes",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeClasses(cmd.OutOrStdout(), a.color)
		},
	}
}

// writeClasses prints one "code name file" line per class, builtins first.
func writeClasses(w io.Writer, colored bool) error {
	name := color.New(color.FgYellow)
	if colored {
		name.EnableColor()
	} else {
		name.DisableColor()
	}

	defs := append(xgxmeta.BuiltinDefs(), xgxmeta.Registered()...)
	for _, d := range defs {
		if _, err := fmt.Fprintf(w, "%s  %-24s %s\n", d.Code, name.Sprint(d.Name), d.File); err != nil {
			return err
		}
	}
	return nil
}
