package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrbitCmd(opts *globalOptions) *cobra.Command {
	var segments int

	cmd := &cobra.Command{
		Use:   "orbit <id>",
		Short: "Sample a body's orbit relative to its parent as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if segments < 1 {
				return fmt.Errorf("--segments must be at least 1")
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

			o, err := session.ExportOrbit(args[0], segments)
			if err != nil {
				return err
			}
			return o.WriteJSON(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&segments, "segments", "s", 128, "Polyline segments")
	return cmd
}
