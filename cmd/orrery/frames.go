package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/orrery/internal/sim"
)

func newFramesCmd(opts *globalOptions) *cobra.Command {
	var (
		count int
		fixed bool
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Stream frames as JSON lines",
		Long: `Steps the simulation at --fps and writes one JSON frame per line.

With --fixed every frame advances by exactly 1/fps of wall time, so the
output depends only on the flags and the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative")
			}

			logger, closer, err := opts.logger(false)
			if err != nil {
				return err
			}
			defer closer.Close()

			session, err := opts.session(cmd, logger)
			if err != nil {
				return err
			}

			cfg := session.Config()
			cfg.FixedStep = fixed
			s := sim.New(session.Tree(), session.Clock(), cfg, logger.Named("frames"))

			sink := sim.JSONLines(cmd.OutOrStdout())
			if count > 0 {
				sink = sim.Limit(count, sink)
			}
			return sim.Run(cmd.Context(), s, sink)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of frames; 0 streams until interrupted")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "Advance by exactly 1/fps per frame")
	return cmd
}
