// Package cli implements the xgxdump command-line interface: a small tool
// that pushes files and generated data through fixed-capacity buffers and
// prints their hex rendering.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/xgx-io/xgx-meta/config"
	"github.com/xgx-io/xgx-meta/logging"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Viper keys. Environment variables are XGXDUMP_ plus the key upper-cased
// with dots replaced by underscores, e.g. XGXDUMP_LOG_LEVEL.
const (
	keyConfig      = "config"
	keyLogLevel    = "log.level"
	keyLogColor    = "log.color"
	keyMetrics     = "metrics"
	keyCapacity    = "dump.capacity"
	keyParallelism = "dump.parallelism"
)

const envPrefix = "XGXDUMP"

// app is the state shared by all subcommands, resolved before any of them
// runs.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	log     *logging.Logger
	ring    *logging.RingSink
	metrics *logging.Metrics
	color   bool
}

// NewRootCmd creates the top-level "xgxdump" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: viper.New(), log: logging.Discard()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "xgxdump",
		Short: "Hex-dump data through fixed-capacity buffers",
		Long: "xgxdump streams files and generated element arrays through\n" +
			"fixed-capacity xgx-meta buffers and prints their byte rendering.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "xgxdump.toml", "configuration file (missing file means defaults)")
	pf.String("log-level", "", "log threshold (debug|info|warning|error|off)")
	pf.String("color", "", "colorize output (auto|on|off)")
	pf.Bool("metrics", false, "print log metrics to stderr on exit")
	a.bind(keyConfig, pf.Lookup("config"))
	a.bind(keyLogLevel, pf.Lookup("log-level"))
	a.bind(keyLogColor, pf.Lookup("color"))
	a.bind(keyMetrics, pf.Lookup("metrics"))
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(newDumpCmd(a))
	root.AddCommand(newGenCmd(a))
	root.AddCommand(newErrorsCmd(a))
	root.AddCommand(newVersionCmd())

	return root, a
}

// bind ties a viper key to a flag. The flag is registered by the caller, so
// a failure here is a programming error.
func (a *app) bind(key string, f *pflag.Flag) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(fmt.Errorf("bind %s: %w", key, err))
	}
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root, a := newRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if a.ring != nil && a.ring.Len() > 0 {
			fmt.Fprintln(stderr, "--- recent log records ---")
			_ = a.ring.Dump(stderr)
		}
		fmt.Fprintln(stderr, "xgxdump:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// Execute runs the root command against the process arguments and exits
// with the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// setup loads the configuration, applies flag and environment overrides
// and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v.GetString(keyConfig))
	if err != nil {
		return configError(err)
	}

	if s := a.v.GetString(keyLogLevel); s != "" {
		lv, err := logging.ParseLevel(s)
		if err != nil {
			return configError(err)
		}
		cfg.Log.Level = lv
	}
	if s := a.v.GetString(keyLogColor); s != "" {
		cfg.Log.Color = s
	}
	if a.v.IsSet(keyCapacity) {
		cfg.Dump.Capacity = a.v.GetInt(keyCapacity)
	}
	if a.v.IsSet(keyParallelism) {
		cfg.Dump.Parallelism = a.v.GetInt(keyParallelism)
	}
	if err := cfg.Validate(); err != nil {
		return configError(err)
	}

	errOut := cmd.ErrOrStderr()
	log, ring, err := cfg.Log.NewLogger(errOut, isTerminal(errOut))
	if err != nil {
		return configError(err)
	}

	if a.v.GetBool(keyMetrics) {
		m, err := logging.NewMetrics(prometheus.NewRegistry())
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		a.metrics = m
		log = log.WithMetrics(m)
	}

	a.cfg = cfg
	a.log = log
	a.ring = ring
	a.color = cfg.Log.UseColor(isTerminal(cmd.OutOrStdout()))
	cmd.SetContext(logging.WithLogger(cmd.Context(), log))
	log.Debug("config loaded: level=%s mode=%s capacity=%d parallelism=%d",
		cfg.Log.Level, cfg.Log.Mode, cfg.Dump.Capacity, cfg.Dump.Parallelism)
	return nil
}

// report prints the metrics snapshot when --metrics is set.
func (a *app) report(w io.Writer) error {
	if a.metrics == nil {
		return nil
	}
	snap, err := a.metrics.Snapshot()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	fmt.Fprintf(w, "log records:")
	for lv := logging.LevelDebug; lv < logging.LevelOff; lv++ {
		fmt.Fprintf(w, " %s=%.0f", strings.ToLower(lv.String()), snap.Records[lv])
	}
	fmt.Fprintf(w, "\nhexdump bytes: %.0f\n", snap.HexDumpBytes)
	return nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// exitCode maps an error to the process exit code: configuration and usage
// problems are user errors, everything else is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case isUserError(err):
		return exitUserError
	case errors.Is(err, os.ErrNotExist):
		return exitUserError
	default:
		return exitSysError
	}
}
