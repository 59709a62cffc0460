package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/orrery/internal/clock"
	"github.com/litescript/orrery/internal/config"
	"github.com/litescript/orrery/internal/logging"
	"github.com/litescript/orrery/internal/sim"
	"github.com/litescript/orrery/internal/version"
)

const (
	envConfig   = "ORRERY_CONFIG"
	envLogLevel = "ORRERY_LOG_LEVEL"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFile    string
	scale      float64
	start      string
	paused     bool
	fps        float64
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "orrery",
		Short:         "Keplerian orrery for the terminal",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts, 0)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "System config file, .json or .yaml (env "+envConfig+"; default built-in solar system)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env "+envLogLevel+")")
	pf.StringVar(&opts.logFile, "log-file", "", "Append logs to this file instead of stderr")
	pf.Float64Var(&opts.scale, "scale", 0, "Simulated seconds per wall second (negative runs backward)")
	pf.StringVar(&opts.start, "start", "", "Start instant: RFC 3339, YYYY-MM-DD or \"now\"")
	pf.BoolVar(&opts.paused, "paused", false, "Start with the clock paused")
	pf.Float64Var(&opts.fps, "fps", sim.DefaultConfig().FPS, "Frames per second")

	root.AddCommand(
		newRunCmd(opts),
		newSummaryCmd(opts),
		newFramesCmd(opts),
		newOrbitCmd(opts),
		newValidateCmd(opts),
		newDefaultsCmd(),
	)
	return root
}

// logger builds the process logger. interactive loggers stay quiet unless
// a log file is given, since stderr shares the terminal with the UI.
func (o *globalOptions) logger(interactive bool) (*logging.Logger, io.Closer, error) {
	level := o.logLevel
	if level == "" {
		level = os.Getenv(envLogLevel)
	}

	if o.logFile == "" {
		if interactive {
			return logging.Discard(), io.NopCloser(nil), nil
		}
		return logging.New(logging.ParseLevel(level)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := logging.New(logging.ParseLevel(level))
	l.SetOutput(f)
	return l, f, nil
}

// document loads the configured system, falling back to the built-in one.
func (o *globalOptions) document(log *logging.Logger) (*config.Document, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		log.Debug("using built-in solar system")
		return config.Default(), nil
	}
	log.Debug("loading %s", path)
	return config.Load(path)
}

// session builds a simulation session honoring the clock flags. Flags
// override the document's time settings.
func (o *globalOptions) session(cmd *cobra.Command, log *logging.Logger) (*sim.Session, error) {
	doc, err := o.document(log)
	if err != nil {
		return nil, err
	}

	var clockOpts []clock.Option
	flags := cmd.Flags()
	if flags.Changed("scale") {
		clockOpts = append(clockOpts, clock.WithScale(o.scale))
	}
	if o.start != "" {
		at, err := parseInstant(o.start)
		if err != nil {
			return nil, err
		}
		clockOpts = append(clockOpts, clock.WithInstant(at))
	}
	if flags.Changed("paused") {
		clockOpts = append(clockOpts, clock.WithPaused(o.paused))
	}

	cfg := sim.DefaultConfig()
	if o.fps > 0 {
		cfg.FPS = o.fps
	}

	return sim.FromDocument(doc, cfg, log.Named("sim"), clockOpts...)
}

// parseInstant accepts RFC 3339, a bare UTC date or "now".
func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "now") {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid instant %q: want RFC 3339, YYYY-MM-DD or now", s)
}
