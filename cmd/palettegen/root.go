package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/palettegen/internal/drafts"
	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/storage"
	"github.com/alexisbeaulieu97/palettegen/internal/ui/swatch"
)

// now stamps generated CSS.
var now = time.Now

type rootFlags struct {
	storeDir string
	logLevel string
	verbose  bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "palettegen",
		Short:         "Palettegen builds color palettes, themes and CSS custom properties",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.storeDir, "store", "", "Draft directory (default ~/.palettegen/drafts)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored swatches")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newPickCmd())
	cmd.AddCommand(newComplementCmd())
	cmd.AddCommand(newWheelCmd())
	cmd.AddCommand(newVariantsCmd())
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newDraftCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
}

func (f *rootFlags) repository(cmd *cobra.Command, log *logger.Logger) (*drafts.Repository, error) {
	dir := f.storeDir
	if dir == "" {
		var err error
		dir, err = defaultStoreDir()
		if err != nil {
			return nil, newCommandError(cmd.Name(), "determining draft directory", err, "Set --store or ensure your HOME directory is set correctly.")
		}
	}

	store, err := storage.NewFileStore(dir, log)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "opening draft store", err, "Check that the draft directory is writable.")
	}
	return drafts.NewRepository(store, log, palette.WithClock(now)), nil
}

func (f *rootFlags) renderer(w io.Writer) *swatch.Renderer {
	if f.noColor || !isTerminal(w) {
		return swatch.NewRenderer(w, swatch.WithColor(false))
	}
	width := 0
	if file, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(file.Fd())); err == nil {
			width = cols
		}
	}
	return swatch.NewRenderer(w, swatch.WithWidth(width))
}

func defaultStoreDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".palettegen", "drafts"), nil
}

func isTerminal(v any) bool {
	if file, ok := v.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
