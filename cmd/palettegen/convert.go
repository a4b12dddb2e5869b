package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

const colorSyntaxHint = "Use #rrggbb[aa], rgba(r, g, b, a) or hsla(h, s%, l%, a)."

type convertOptions struct {
	to string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a CSS color between hex, rgba and hsla",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Target format (hex, rgba, hsla); all formats when empty")

	return cmd
}

func runConvert(cmd *cobra.Command, input string, opts *convertOptions) error {
	value, err := parseColor("convert", input)
	if err != nil {
		return err
	}

	if opts.to != "" {
		converted, err := convertColor("convert", value, opts.to)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), converted.CSS())
		return nil
	}

	for _, format := range color.Formats() {
		converted, err := color.ToFormat(value, format)
		if err != nil {
			return newCommandError("convert", fmt.Sprintf("converting to %s", format), err, colorSyntaxHint)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", format, converted.CSS())
	}
	return nil
}

func parseColor(operation, input string) (color.Value, error) {
	value, err := color.Parse(input)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("parsing color %q", input), err, colorSyntaxHint)
	}
	return value, nil
}

func convertColor(operation string, value color.Value, format string) (color.Value, error) {
	converted, err := color.To(value, format)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("converting to %q", format), err, "Supported formats are hex, rgba and hsla.")
	}
	return converted, nil
}
