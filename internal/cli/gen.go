package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	xgxmeta "github.com/xgx-io/xgx-meta"
	"github.com/xgx-io/xgx-meta/logging"
)

type genOptions struct {
	width int
	count int
	seed  uint64
}

func newGenCmd(a *app) *cobra.Command {
	var opts genOptions
	cmd := &cobra.Command{
		Use:       "gen range|random",
		Short:     "Generate an element array and dump its little-endian bytes",
		ValidArgs: []string{"range", "random"},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGen(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 8, "element width in bits (8|16|32|64)")
	cmd.Flags().IntVar(&opts.count, "count", 16, "number of elements")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed for random")
	return cmd
}

func (a *app) runGen(out io.Writer, kind string, opts genOptions) error {
	if opts.count < 0 {
		return usageError(fmt.Errorf("count must not be negative, got %d", opts.count))
	}
	var (
		text string
		err  error
	)
	switch opts.width {
	case 8:
		text, err = generate[uint8](kind, opts, a.log)
	case 16:
		text, err = generate[uint16](kind, opts, a.log)
	case 32:
		text, err = generate[uint32](kind, opts, a.log)
	case 64:
		text, err = generate[uint64](kind, opts, a.log)
	default:
		return usageError(fmt.Errorf("width must be 8, 16, 32 or 64, got %d", opts.width))
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

// generate builds a Buffer holding the requested array and returns the hex
// rendering of its byte decomposition.
func generate[T xgxmeta.Element](kind string, opts genOptions, log *logging.Logger) (string, error) {
	var elems []T
	switch kind {
	case "range":
		elems = xgxmeta.Range[T](opts.count)
	case "random":
		elems = xgxmeta.RandomArray[T](opts.count, opts.seed)
	default:
		return "", usageError(fmt.Errorf("unknown generator %q", kind))
	}

	r := xgxmeta.FromSlice(opts.count, elems)
	if r.HasError() {
		return "", r.Err()
	}
	buf := r.Value().WithLogger(log)
	buf.HexDump(logging.LevelDebug, fmt.Sprintf("gen %s width=%d count=%d", kind, opts.width, opts.count))

	bytes := buf.ToBytes()
	text := bytes.HexString()
	if bytes.Len()%16 != 0 {
		text += "\n"
	}
	return text, nil
}
