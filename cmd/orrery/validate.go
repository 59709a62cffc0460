package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/orrery/internal/celestial"
	"github.com/litescript/orrery/internal/config"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// errInvalid is returned when at least one file failed validation; the
// issues have already been printed.
var errInvalid = errors.New("validation failed")

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check config files and report every problem found",
		Long: `Loads each file and builds its body tree, listing every issue.
With no arguments the --config file (or the built-in system) is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				path := opts.configPath
				if path == "" {
					path = os.Getenv(envConfig)
				}
				args = []string{path}
			}

			out := cmd.OutOrStdout()
			styled := isTerminal(out)

			failed := 0
			for _, path := range args {
				if !validateOne(out, path, styled) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errInvalid, failed, len(args))
			}
			return nil
		},
	}
}

func validateOne(w io.Writer, path string, styled bool) bool {
	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	name := path
	var doc *config.Document
	if path == "" {
		name = "(built-in)"
		doc = config.Default()
	} else {
		var err error
		doc, err = config.Load(path)
		if err != nil {
			fmt.Fprintf(w, "%s %s\n  %v\n", render(failStyle, "FAIL"), name, err)
			return false
		}
	}

	tree, err := celestial.Build(doc)
	if err == nil {
		fmt.Fprintf(w, "%s %s %s\n", render(okStyle, "ok"), name, render(dimStyle, fmt.Sprintf("(%d bodies)", tree.Len())))
		return true
	}

	fmt.Fprintf(w, "%s %s\n", render(failStyle, "FAIL"), name)
	var cfgErr *celestial.ConfigurationError
	if errors.As(err, &cfgErr) {
		for _, issue := range cfgErr.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	} else {
		fmt.Fprintf(w, "  %v\n", err)
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
