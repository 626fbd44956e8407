// Package cli wires the chart factory to the command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dashboard/chartjs"
	"dashboard/config"
	"dashboard/logging"
)

type app struct {
	cfgPath  string
	envPath  string
	logLevel string

	cfg *config.Config
	log zerolog.Logger

	stdout io.Writer
	stderr io.Writer
}

// Execute runs the dashboard command with os.Args.
func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Build the service dashboard charts",
		Long: `Builds the admin dashboard charts from labels and values:

  bar    order counts      (Buyurtmalar soni)
  pie    service share
  line   daily orders      (Kunlik buyurtmalar)
  radar  master KPI        (Usta KPI, scores 0-100)

Render a chart page:  dashboard render --kind bar orders.json
Show chart defaults:  dashboard defaults`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.envPath, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(a.renderCmd())
	root.AddCommand(a.defaultsCmd())
	root.AddCommand(a.kindsCmd())
	return root
}

// init loads settings and applies the global chart defaults. It runs once
// per process, before any chart is built.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadEnv(a.envPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log, err = logging.New(level, cfg.Log.Pretty, a.stderr)
	if err != nil {
		return err
	}
	if !loaded {
		a.log.Debug().Str("path", a.envPath).Msg("no env file, using process environment")
	}

	err = chartjs.ApplyGlobalDefaults(cfg.Defaults())
	switch {
	case errors.Is(err, chartjs.ErrDefaultsApplied):
		a.log.Debug().Msg("chart defaults already applied")
	case err != nil:
		return fmt.Errorf("apply chart defaults: %w", err)
	}
	a.log.Debug().
		Str("font", cfg.Font.Family).
		Int("size", cfg.Font.Size).
		Str("color", cfg.Color).
		Msg("chart defaults ready")
	return nil
}
