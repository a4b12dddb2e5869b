package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick <base> <candidate>...",
		Short: "Pick the candidate with the highest contrast against base",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args[0], args[1:])
		},
	}
}

func runPick(cmd *cobra.Command, baseInput string, inputs []string) error {
	base, err := parseColor("pick", baseInput)
	if err != nil {
		return err
	}

	candidates := make([]color.Value, 0, len(inputs))
	for _, input := range inputs {
		v, err := parseColor("pick", input)
		if err != nil {
			return err
		}
		candidates = append(candidates, v)
	}

	best, ok, err := color.PickBestContrast(base, candidates)
	if err != nil {
		return newCommandError("pick", "comparing candidates", err, colorSyntaxHint)
	}
	if !ok {
		return newCommandError("pick", "comparing candidates", errors.New("no candidates"), "Pass at least one candidate color.")
	}

	ratio, err := color.ContrastRatio(base, best)
	if err != nil {
		return newCommandError("pick", "computing ratio", err, colorSyntaxHint)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%.2f:1)\n", best.CSS(), ratio)
	return nil
}
