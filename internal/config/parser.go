package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a palette definition file from disk and validates it.
func Load(path string) (*PaletteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, palerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a palette definition. path only labels errors.
func Parse(path string, data []byte) (*PaletteFile, error) {
	var f PaletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, palerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
