package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

type complementOptions struct {
	to string
}

func newComplementCmd() *cobra.Command {
	opts := &complementOptions{}

	cmd := &cobra.Command{
		Use:   "complement <color>",
		Short: "Print the complementary color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplement(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Target format (hex, rgba, hsla); rgba when empty")

	return cmd
}

func runComplement(cmd *cobra.Command, input string, opts *complementOptions) error {
	value, err := parseColor("complement", input)
	if err != nil {
		return err
	}

	comp, err := color.Complementary(value)
	if err != nil {
		return newCommandError("complement", "inverting channels", err, colorSyntaxHint)
	}

	var out color.Value = comp
	if opts.to != "" {
		out, err = convertColor("complement", comp, opts.to)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.CSS())
	return nil
}
