// Package cli implements the radarlab command line: matched filtering,
// pulse compression, window reports, CSV correlation and configuration
// scaffolding.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/internal/config"
)

// App carries the state shared by all commands of one invocation.
type App struct {
	Out io.Writer
	Err io.Writer

	// NewCore builds the logging core; nil writes console logs to Err.
	NewCore func(level zapcore.Level, w io.Writer) zapcore.Core

	configPath  string
	summaryOnly bool

	v   *viper.Viper
	cfg config.Config
	log *zap.SugaredLogger
}

// Config returns the effective configuration once a command has started.
func (a *App) Config() config.Config { return a.cfg }

func (a *App) source() signal.Source {
	if a.cfg.Seed == 0 {
		return nil
	}
	return signal.NewSource(a.cfg.Seed)
}

func (a *App) render(r Report) error {
	return render(a.Out, a.cfg.Output, r, a.summaryOnly)
}

// setup resolves configuration for cmd and builds the logger.
func (a *App) setup(cmd *cobra.Command) error {
	a.v = config.NewViper(a.configPath)
	if err := config.Read(a.v); err != nil {
		return err
	}
	if err := bindFlags(cmd, a.v); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	newCore := a.NewCore
	if newCore == nil {
		newCore = consoleCore
	}
	a.log = zap.New(newCore(cfg.Level(), a.Err)).Sugar()

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugw("using config file", "path", used)
	}
	return nil
}

func consoleCore(level zapcore.Level, w io.Writer) zapcore.Core {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
}

// NewRootCommand builds the radarlab command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	if app.Out == nil {
		app.Out = os.Stdout
	}
	if app.Err == nil {
		app.Err = os.Stderr
	}

	root := &cobra.Command{
		Use:   "radarlab",
		Short: "Matched filtering and pulse compression workbench",
		Long: `radarlab runs the matched-filter and linear-FM pulse-compression
pipelines from the command line and prints the resulting series.

Configuration is read from radarlab.yaml (current directory or
$HOME/.config/radarlab), RADARLAB_* environment variables and flags,
in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&app.configPath, "config", "", "config file (default ./radarlab.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.StringP("output", "o", config.FormatTable, "output format (table, csv, json, yaml)")
	pf.Int64("seed", 0, "noise seed, 0 for a random seed")
	pf.BoolVar(&app.summaryOnly, "summary", false, "print the summary without the series")
	annotate(pf, "log-level", "log_level")
	annotate(pf, "verbose", "verbose")
	annotate(pf, "output", "output")
	annotate(pf, "seed", "seed")

	root.AddCommand(
		newMatchedCommand(app),
		newCompressCommand(app),
		newWindowCommand(app),
		newCorrelateCommand(app),
		newConfigCommand(app),
	)

	return root
}

// Execute runs radarlab with os.Args and exits non-zero on failure.
func Execute() {
	app := &App{}
	if err := NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
