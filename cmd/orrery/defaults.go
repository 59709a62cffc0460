package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/orrery/internal/config"
)

func newDefaultsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in solar system config as a starting point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f config.Format
			switch format {
			case "yaml", "yml":
				f = config.FormatYAML
			case "json":
				f = config.FormatJSON
			default:
				return fmt.Errorf("%w: %q", config.ErrUnsupportedFormat, format)
			}

			data, err := config.Marshal(config.Default(), f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}
