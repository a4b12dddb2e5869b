package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/tui/browser"
)

type browseOptions struct {
	draft string
}

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse [file.yaml]",
		Short: "Browse a palette interactively",
		Long:  `Launch the interactive browser to walk themes, colors and variants and copy values to the clipboard.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.draft, "draft", "", "Browse a saved draft instead of a file")

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags, args []string, opts *browseOptions) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("browse", "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	p, err := loadPalette(cmd, flags, log, args, opts.draft)
	if err != nil {
		return err
	}

	m := browser.NewModel(p, flags.renderer(cmd.OutOrStdout()))

	log.WithFields(map[string]any{"palette": p.Name(), "themes": len(p.Themes())}).Info("launching browser")
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()), tea.WithInput(cmd.InOrStdin()))
	if _, err := program.Run(); err != nil {
		log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}
	log.Info("browser closed")

	return nil
}
