package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/orrery/internal/sim"
	"github.com/litescript/orrery/internal/ui"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the system (default); prints a summary when stdout is not a terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts, watch)
		},
	}
	cmd.Flags().DurationVar(&watch, "watch", 0, "Without a terminal, print a summary at this interval (e.g. 5s)")
	return cmd
}

func runInteractive(cmd *cobra.Command, opts *globalOptions, watch time.Duration) error {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	logger, closer, err := opts.logger(isTTY)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := opts.session(cmd, logger)
	if err != nil {
		return err
	}

	if !isTTY {
		return runHeadless(cmd, session, watch)
	}

	logger.Info("starting UI with %d bodies", session.Tree().Len())
	p := tea.NewProgram(ui.New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// runHeadless prints the current frame, then one summary per watch
// interval until interrupted.
func runHeadless(cmd *cobra.Command, session *sim.Session, watch time.Duration) error {
	out := cmd.OutOrStdout()

	if watch <= 0 {
		f := session.Frame()
		sim.WriteSummaryTable(out, &f)
		return nil
	}

	// Run paces itself from FPS; a watch interval is just a slow frame rate.
	cfg := session.Config()
	cfg.FPS = 1 / watch.Seconds()
	s := sim.New(session.Tree(), session.Clock(), cfg, nil)

	return sim.Run(cmd.Context(), s, func(f sim.Frame) error {
		sim.WriteSummaryTable(out, &f)
		fmt.Fprintln(out)
		return nil
	})
}
