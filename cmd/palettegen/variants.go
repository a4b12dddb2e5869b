package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/variants"
)

type variantsOptions struct {
	theme      string
	generator  string
	start      int
	end        int
	step       int
	jsonOutput bool
}

func newVariantsCmd() *cobra.Command {
	defaults := variants.DefaultOptions()
	opts := &variantsOptions{}

	cmd := &cobra.Command{
		Use:   "variants <name> <color>",
		Short: "Generate the variants of a color",
		Long: `Generate named variants of a color. The lightness generator steps the HSLA
lightness from --start to --end. Theme names "dark" and "dark-*" count labels
down from 100 and list the lightest variant first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme the color belongs to")
	cmd.Flags().StringVar(&opts.generator, "generator", variants.LightnessName, "Variant generator")
	cmd.Flags().IntVar(&opts.start, "start", defaults.Start, "First lightness value")
	cmd.Flags().IntVar(&opts.end, "end", defaults.End, "Last lightness value")
	cmd.Flags().IntVar(&opts.step, "step", defaults.Step, "Lightness increment")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type variantJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func runVariants(cmd *cobra.Command, name, input string, opts *variantsOptions) error {
	gen, err := variants.Lookup(opts.generator)
	if err != nil {
		return newCommandError("generate variants", fmt.Sprintf("looking up generator %q", opts.generator), err, fmt.Sprintf("Available generators: %v.", variants.Names()))
	}

	tc, err := palette.ThemeColorFromCSS(name, input)
	if err != nil {
		return newCommandError("generate variants", fmt.Sprintf("creating color %q", name), err, "Names must be CSS identifiers. "+colorSyntaxHint)
	}

	if opts.theme != "" {
		theme, err := palette.NewTheme(opts.theme, false)
		if err != nil {
			return newCommandError("generate variants", fmt.Sprintf("creating theme %q", opts.theme), err, "Theme names must be CSS identifiers.")
		}
		theme.AddColor(tc)
	}

	err = tc.GenerateVariants(gen, variants.Options{Start: opts.start, End: opts.end, Step: opts.step})
	if err != nil {
		return newCommandError("generate variants", "running "+gen.Name(), err, "Keep 0 <= --start <= --end <= 100 and --step > 0.")
	}

	if opts.jsonOutput {
		payload := make([]variantJSON, 0, len(tc.Variants()))
		for _, v := range tc.Variants() {
			payload = append(payload, variantJSON{Name: v.Name(), Value: v.Value().CSS()})
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	for _, v := range tc.Variants() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Name(), v.Value().CSS())
	}
	return nil
}
