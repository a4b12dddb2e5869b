package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

type wheelOptions struct {
	to string
}

func newWheelCmd() *cobra.Command {
	opts := &wheelOptions{}

	cmd := &cobra.Command{
		Use:   "wheel [name]",
		Short: "List the color wheel or print one named color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runWheelColor(cmd, args[0], opts)
			}
			return runWheelList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Target format (hex, rgba, hsla); hex when empty")

	return cmd
}

func runWheelColor(cmd *cobra.Command, name string, opts *wheelOptions) error {
	v, err := color.Named(name, opts.to)
	if err != nil {
		return newCommandError("look up wheel color", fmt.Sprintf("resolving %q", name), err, "Run 'palettegen wheel' to list the available names and use hex, rgba or hsla for --to.")
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.CSS())
	return nil
}

func runWheelList(cmd *cobra.Command, opts *wheelOptions) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range color.WheelNames() {
		v, err := color.Named(name, opts.to)
		if err != nil {
			return newCommandError("list wheel colors", fmt.Sprintf("converting %q", name), err, "Use hex, rgba or hsla for --to.")
		}
		fmt.Fprintf(w, "%s\t%s\n", name, v.CSS())
	}
	return w.Flush()
}
