package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

type contrastOptions struct {
	jsonOutput bool
}

func newContrastCmd() *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <color> <color>",
		Short: "Report the WCAG contrast ratio between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type contrastJSONPayload struct {
	A string `json:"a"`
	B string `json:"b"`
	color.ContrastInfo
	Grade color.Grade `json:"grade"`
}

func runContrast(cmd *cobra.Command, first, second string, opts *contrastOptions) error {
	a, err := parseColor("check contrast", first)
	if err != nil {
		return err
	}
	b, err := parseColor("check contrast", second)
	if err != nil {
		return err
	}

	info, err := color.Contrast(a, b)
	if err != nil {
		return newCommandError("check contrast", "computing ratio", err, colorSyntaxHint)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(contrastJSONPayload{A: a.CSS(), B: b.CSS(), ContrastInfo: info, Grade: info.Grade()})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ratio:      %s (%s)\n", info.RatioLabel(), info.Grade())
	fmt.Fprintf(out, "AA normal:  %s\n", verdict(info.AANormal))
	fmt.Fprintf(out, "AA large:   %s\n", verdict(info.AALarge))
	fmt.Fprintf(out, "AAA normal: %s\n", verdict(info.AAANormal))
	fmt.Fprintf(out, "AAA large:  %s\n", verdict(info.AAALarge))
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
