package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	xgxmeta "github.com/xgx-io/xgx-meta"
	"github.com/xgx-io/xgx-meta/config"
	"github.com/xgx-io/xgx-meta/logging"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump FILE...",
		Short: "Hex-dump files through a fixed-capacity buffer",
		Long: "Each file is read in chunks of --capacity bytes into a fixed-capacity\n" +
			"buffer and rendered as hex. Files are processed concurrently; output\n" +
			"is printed in argument order.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().Int("capacity", 0, "chunk buffer capacity in bytes (default from config)")
	cmd.Flags().Int("parallelism", 0, "files processed at once (default from config)")
	a.bind(keyCapacity, cmd.Flags().Lookup("capacity"))
	a.bind(keyParallelism, cmd.Flags().Lookup("parallelism"))
	return cmd
}

// dumpResult is the rendered output of one file.
type dumpResult struct {
	path   string
	size   int
	chunks int
	text   string
}

func (a *app) runDump(ctx context.Context, out io.Writer, paths []string) error {
	results := make([]dumpResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(a.cfg.Dump.Parallelism, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			res, err := dumpFile(gctx, path, a.cfg.Dump, a.log)
			if err != nil {
				return err
			}
			// Indexes are unique per goroutine; no lock needed.
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := io.WriteString(out, r.text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		a.log.Info("%s: %d bytes in %d chunks", r.path, r.size, r.chunks)
	}
	return nil
}

// dumpFile renders one file. Each call owns its buffer, so concurrent
// calls share nothing but the logger.
func dumpFile(ctx context.Context, path string, cfg config.DumpConfig, log *logging.Logger) (dumpResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return dumpResult{}, inputError(err)
	}
	defer f.Close()

	res, err := renderChunks(ctx, path, f, cfg, log)
	if err != nil {
		return dumpResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// renderChunks reads r through a Buffer of cfg.Capacity bytes. Every chunk
// is hex-dumped to log at cfg.Level and appended to the result text, whose
// line layout continues across chunk boundaries. name heads the text.
func renderChunks(ctx context.Context, name string, r io.Reader, cfg config.DumpConfig, log *logging.Logger) (dumpResult, error) {
	chunk := xgxmeta.New[byte](cfg.Capacity).WithLogger(log)
	scratch := make([]byte, cfg.Capacity)

	var (
		res  = dumpResult{path: name}
		hw   logging.HexWriter
		text []byte
	)
	for {
		if err := ctx.Err(); err != nil {
			return dumpResult{}, err
		}
		n, err := io.ReadFull(r, scratch)
		if n > 0 {
			if st := chunk.Append(scratch[:n]...); st.HasError() {
				return dumpResult{}, st.AsError()
			}
			chunk.HexDump(cfg.Level, fmt.Sprintf("chunk %d (%d bytes)", res.chunks, chunk.Len()))
			text = hw.Append(text, chunk.Slice())
			res.size += chunk.Len()
			res.chunks++
			chunk.Clear()
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return dumpResult{}, inputError(err)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "==> %s (%d bytes) <==\n", name, res.size)
	sb.Write(text)
	if hw.Written()%16 != 0 {
		sb.WriteString("\n")
	}
	res.text = sb.String()
	return res, nil
}
