package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type showOptions struct {
	draft string
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [file.yaml]",
		Short: "Render a palette as swatch cards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.draft, "draft", "", "Show a saved draft instead of a file")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, args []string, opts *showOptions) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("show", "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	p, err := loadPalette(cmd, flags, log, args, opts.draft)
	if err != nil {
		return err
	}

	card, err := flags.renderer(cmd.OutOrStdout()).PaletteCard(p)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("rendering palette %q", p.Name()), err, "Check the palette colors.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), card)
	return nil
}
