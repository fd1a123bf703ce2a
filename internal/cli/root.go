// Package cli implements the tnqecc command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/born-ml/tnqecc/internal/config"
	"github.com/born-ml/tnqecc/internal/logging"
	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/render"
)

// app is the state shared by all commands once the root has loaded config.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}

	rootCmd := &cobra.Command{
		Use:   "tnqecc",
		Short: "Build, inspect and contract tensor-network error-correcting codes",
		Long: `tnqecc works with quantum error-correcting codes described as tensor networks.

Networks are stored in .tnet files. Tensors are connected along shared leg
labels; commands contract labels, fuse legs, or contract the whole network.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $TNQECC_CONFIG or <user config dir>/tnqecc/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "console log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "also write debug logs to this rotating file")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newContractCmd(a))
	rootCmd.AddCommand(newFuseCmd(a))
	rootCmd.AddCommand(newContractTwoCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Options{
		Level:      level,
		Console:    cmd.ErrOrStderr(),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(slog.String("cmd", cmd.Name()))
	a.closer = closer
	return nil
}

// networkOptions are the options every command's networks are built with.
func (a *app) networkOptions() []network.Option {
	return []network.Option{network.WithLogger(a.logger)}
}

// drawOptions turns the render config into renderer options. Color is only
// enabled when w is a terminal.
func (a *app) drawOptions(w io.Writer) render.DrawOptions {
	r := a.cfg.Render
	return render.DrawOptions{
		ShowTags:  r.ShowTags,
		Colors:    r.Colors,
		Legend:    r.Legend,
		Layout:    r.Layout,
		ShowInds:  r.ShowInds,
		FigWidth:  r.FigWidth,
		FigHeight: r.FigHeight,
		Color:     isTerminal(w),
	}
}

// draw writes a view in the configured (or overridden) format.
func (a *app) draw(w io.Writer, v network.View, format string, opts render.DrawOptions) error {
	if format == "" {
		format = a.cfg.Render.Format
	}
	switch format {
	case "text":
		_, err := io.WriteString(w, render.Text(v, opts))
		return err
	case "dot":
		_, err := io.WriteString(w, render.DOT(v, opts))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or dot)", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
