package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/pkg/diff"
)

const (
	formatCSS    = "css"
	formatMinCSS = "min-css"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// dateStampPattern matches the build date written into CSS comments.
var dateStampPattern = regexp.MustCompile(`\[\d{4}-\d{2}-\d{2}\]`)

type buildOptions struct {
	format    string
	output    string
	saveDraft bool
	check     bool
}

func newBuildCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <file.yaml>",
		Short: "Build a palette definition into CSS custom properties or a palette record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", formatCSS, "Output format (css, min-css, json, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.saveDraft, "save-draft", false, "Also save the palette as a draft")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Diff against the --output file instead of writing it")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *rootFlags, path string, opts *buildOptions) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("build", "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	log = log.WithFields(map[string]any{"command": "build", "path": path})

	p, err := loadDefinition("build", path)
	if err != nil {
		log.Error(err, "palette definition rejected")
		return err
	}

	data, err := renderPalette(p, opts.format)
	if err != nil {
		return err
	}

	if opts.check {
		return checkOutput(cmd, opts.output, data)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return newCommandError("build", fmt.Sprintf("writing %s", opts.output), err, "Check that the output directory exists and is writable.")
		}
		log.WithFields(map[string]any{"output": opts.output, "format": opts.format}).Info("palette written")
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if opts.saveDraft {
		repo, err := flags.repository(cmd, log)
		if err != nil {
			return err
		}
		if err := repo.Save(p); err != nil {
			return newCommandError("build", fmt.Sprintf("saving draft %q", p.Name()), err, "Check the draft directory permissions and try again.")
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved draft '%s'\n", p.Name())
	}

	return nil
}

func checkOutput(cmd *cobra.Command, path string, generated []byte) error {
	if path == "" {
		return newCommandError("check output", "choosing a file", errors.New("--check needs --output"), "Pass the file to compare with -o <file>.")
	}

	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return newCommandError("check output", fmt.Sprintf("reading %s", path), err, "Check that the file is readable.")
	}

	if !bytes.Equal(withoutDateStamps(current), withoutDateStamps(generated)) {
		fmt.Fprint(cmd.OutOrStdout(), diff.Unified(current, generated, path, "generated"))
		return newCommandError("check output", path, errors.New("output is out of date"), "Run the same build without --check to regenerate it.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date\n", path)
	return nil
}

// withoutDateStamps blanks build dates so output from another day still compares equal.
func withoutDateStamps(data []byte) []byte {
	return dateStampPattern.ReplaceAll(data, []byte("[date]"))
}

func renderPalette(p *palette.Palette, format string) ([]byte, error) {
	switch format {
	case formatCSS:
		css, err := p.CSS()
		if err != nil {
			return nil, newCommandError("build", "rendering CSS", err, "Check the palette colors.")
		}
		return []byte(css + "\n"), nil
	case formatMinCSS:
		css, err := p.MinifiedCSS()
		if err != nil {
			return nil, newCommandError("build", "rendering CSS", err, "Check the palette colors.")
		}
		return []byte(css), nil
	case formatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, newCommandError("build", "encoding JSON", err, "Check the palette colors.")
		}
		return append(data, '\n'), nil
	case formatYAML:
		data, err := p.EncodeYAML()
		if err != nil {
			return nil, newCommandError("build", "encoding YAML", err, "Check the palette colors.")
		}
		return data, nil
	default:
		return nil, newCommandError("build", "choosing output format", fmt.Errorf("unknown format %q", format), "Use css, min-css, json or yaml.")
	}
}
