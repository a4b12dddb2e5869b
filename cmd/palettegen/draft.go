package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/drafts"
)

func newDraftCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage saved palette drafts",
	}

	cmd.AddCommand(newDraftListCmd(rootFlags))
	cmd.AddCommand(newDraftShowCmd(rootFlags))
	cmd.AddCommand(newDraftRemoveCmd(rootFlags))
	cmd.AddCommand(newDraftImportCmd(rootFlags))

	return cmd
}

func newDraftListCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := draftRepository(cmd, rootFlags)
			if err != nil {
				return err
			}

			names, err := repo.List()
			if err != nil {
				return newCommandError("list drafts", "reading draft index", err, "Check the draft directory permissions and try again.")
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No drafts saved.")
				fmt.Fprintln(cmd.OutOrStdout(), "\nSave one with 'palettegen build <file.yaml> --save-draft'.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDraftShowCmd(rootFlags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := draftRepository(cmd, rootFlags)
			if err != nil {
				return err
			}

			p, err := repo.Load(args[0])
			if err != nil {
				return draftLoadError("show draft", args[0], err)
			}

			data, err := renderPalette(p, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format (css, min-css, json, yaml)")

	return cmd
}

func newDraftRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := draftRepository(cmd, rootFlags)
			if err != nil {
				return err
			}

			if err := repo.Remove(args[0]); err != nil {
				return newCommandError("remove draft", fmt.Sprintf("removing %q", args[0]), err, "Check the draft directory permissions and try again.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed draft '%s'\n", args[0])
			return nil
		},
	}
}

func newDraftImportCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a palette record as a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return newCommandError("import draft", fmt.Sprintf("reading %s", args[0]), err, "Check that the file exists and is readable.")
			}
			if !json.Valid(data) {
				return newCommandError("import draft", fmt.Sprintf("decoding %s", args[0]), errors.New("file is not valid JSON"), "Export a palette with 'palettegen build <file.yaml> --format json'.")
			}

			repo, err := draftRepository(cmd, rootFlags)
			if err != nil {
				return err
			}

			p, err := repo.Import(data)
			if err != nil {
				return newCommandError("import draft", fmt.Sprintf("importing %s", args[0]), err, "Export a palette with 'palettegen build <file.yaml> --format json'.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported draft '%s'\n", p.Name())
			return nil
		},
	}
}

func draftRepository(cmd *cobra.Command, flags *rootFlags) (*drafts.Repository, error) {
	log, err := flags.logger(cmd)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	return flags.repository(cmd, log.WithFields(map[string]any{"command": "draft " + cmd.Name()}))
}

func draftLoadError(operation, name string, err error) error {
	if errors.Is(err, drafts.ErrNotFound) {
		return newCommandError(operation, fmt.Sprintf("loading draft %q", name), err, "Run 'palettegen draft list' to view saved drafts.")
	}
	return newCommandError(operation, fmt.Sprintf("loading draft %q", name), err, "Check the draft directory permissions and try again.")
}
