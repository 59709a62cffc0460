package main

import (
	"github.com/spf13/cobra"

	"github.com/litescript/orrery/internal/sim"
)

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	var (
		at       string
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print every body's position at one instant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := opts.logger(false)
			if err != nil {
				return err
			}
			defer closer.Close()

			session, err := opts.session(cmd, logger)
			if err != nil {
				return err
			}

			f := session.Frame()
			if at != "" {
				instant, err := parseInstant(at)
				if err != nil {
					return err
				}
				f = session.FrameAt(instant)
			}

			if jsonMode {
				return f.WriteJSON(cmd.OutOrStdout())
			}
			sim.WriteSummaryTable(cmd.OutOrStdout(), &f)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Instant to evaluate (default: --start or the config's start)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Write the frame as JSON")
	return cmd
}
