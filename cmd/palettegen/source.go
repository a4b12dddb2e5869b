package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/config"
	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
)

// loadDefinition parses, validates and builds a YAML palette definition.
func loadDefinition(operation, path string) (*palette.Palette, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading %s", path), err, "Fix the palette definition and try again.")
	}

	p, err := file.Build(palette.WithClock(now))
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("building palette from %s", path), err, "Fix the palette definition and try again.")
	}
	return p, nil
}

// loadPalette reads a palette from exactly one of a definition file or a draft.
func loadPalette(cmd *cobra.Command, flags *rootFlags, log *logger.Logger, args []string, draft string) (*palette.Palette, error) {
	switch {
	case len(args) == 1 && draft != "":
		return nil, newCommandError(cmd.Name(), "choosing a palette source", errors.New("both a file and --draft were given"), "Pass either a definition file or --draft <name>.")
	case len(args) == 1:
		log.WithFields(map[string]any{"path": args[0]}).Debug("loading palette definition")
		return loadDefinition(cmd.Name(), args[0])
	case draft != "":
		repo, err := flags.repository(cmd, log)
		if err != nil {
			return nil, err
		}
		p, err := repo.Load(draft)
		if err != nil {
			return nil, draftLoadError(cmd.Name(), draft, err)
		}
		return p, nil
	default:
		return nil, newCommandError(cmd.Name(), "choosing a palette source", errors.New("no palette given"), "Pass a definition file or --draft <name>.")
	}
}
