package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettegen/internal/drafts"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

const brandFile = "testdata/brand.yaml"

func TestBuildCommandCSS(t *testing.T) {
	stdout, _, err := execute(t, "build", brandFile, "--store", t.TempDir())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "/* PALETTE 'brand' [2024-03-05] */\n"))
	assert.Contains(t, stdout, ".theme-light {")
	assert.Contains(t, stdout, "--primary: #3366ccff;")
	assert.Contains(t, stdout, "--primary-fg: #ffffffff;")
	assert.Contains(t, stdout, "@media (prefers-color-scheme: dark) {")
	assert.Contains(t, stdout, "--primary-0: #ffffffff;")
	assert.Contains(t, stdout, "--primary-100: #000000ff;")
}

func TestBuildCommandMinifiedCSS(t *testing.T) {
	stdout, _, err := execute(t, "build", brandFile, "--format", "min-css")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\n")
	assert.Contains(t, stdout, "*/.theme-light {")
}

func TestBuildCommandYAML(t *testing.T) {
	stdout, _, err := execute(t, "build", brandFile, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "_t: Palette")
	assert.Contains(t, stdout, "name: brand")
	assert.Contains(t, stdout, "defaultTheme: light")
}

func TestBuildCommandWritesFileAndLogs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "brand.json")

	stdout, stderr, err := execute(t, "build", brandFile, "--format", "json", "-o", out, "--log-level", "info")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "palette written")

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "Palette", record["_t"])
	assert.Equal(t, "brand", record["name"])
}

func TestBuildCommandErrors(t *testing.T) {
	_, _, err := execute(t, "build", "testdata/invalid.yaml")
	require.Error(t, err)
	var ve *palerrors.ValidationError
	require.ErrorAs(t, err, &ve)

	_, _, err = execute(t, "build", "testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to build")

	_, _, err = execute(t, "build", brandFile, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)

	_, _, err = execute(t, "build", brandFile, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating logger")
}

func TestBuildCommandCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "brand.css")

	stdout, _, err := execute(t, "build", brandFile, "-o", out, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output is out of date")
	assert.Contains(t, stdout, "+/* PALETTE 'brand' [2024-03-05] */")

	_, _, err = execute(t, "build", brandFile, "-o", out)
	require.NoError(t, err)

	stdout, _, err = execute(t, "build", brandFile, "-o", out, "--check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is up to date")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "#3366ccff", "#336699ff", 1)
	require.NoError(t, os.WriteFile(out, []byte(edited), 0o644))

	stdout, _, err = execute(t, "build", brandFile, "-o", out, "--check")
	require.Error(t, err)
	assert.Contains(t, stdout, "---primary: #336699ff;")
	assert.Contains(t, stdout, "+--primary: #3366ccff;")

	_, _, err = execute(t, "build", brandFile, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--check needs --output")
}

func TestBuildCommandCheckIgnoresBuildDate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "brand.css")

	_, _, err := execute(t, "build", brandFile, "-o", out)
	require.NoError(t, err)

	nextDay := fixedNow().AddDate(0, 0, 1)
	stdout, _, err := executeAt(t, nextDay, "build", brandFile, "-o", out, "--check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is up to date")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "#3366ccff", "#336699ff", 1)
	require.NoError(t, os.WriteFile(out, []byte(edited), 0o644))

	stdout, _, err = executeAt(t, nextDay, "build", brandFile, "-o", out, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output is out of date")
	assert.Contains(t, stdout, "+--primary: #3366ccff;")
}

func TestDraftLifecycle(t *testing.T) {
	store := t.TempDir()

	stdout, _, err := execute(t, "draft", "list", "--store", store)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No drafts saved.")

	_, stderr, err := execute(t, "build", brandFile, "--save-draft", "--store", store)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved draft 'brand'")

	stdout, _, err = execute(t, "draft", "list", "--store", store)
	require.NoError(t, err)
	assert.Equal(t, "brand\n", stdout)

	stdout, _, err = execute(t, "draft", "show", "brand", "--store", store, "--format", "css")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--primary: #3366ccff;")

	stdout, _, err = execute(t, "draft", "remove", "brand", "--store", store)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed draft 'brand'")

	_, _, err = execute(t, "draft", "show", "brand", "--store", store)
	require.ErrorIs(t, err, drafts.ErrNotFound)
	assert.Contains(t, err.Error(), "palettegen draft list")
}

func TestDraftImport(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "drafts")
	exported := filepath.Join(dir, "brand.json")

	_, _, err := execute(t, "build", brandFile, "--format", "json", "-o", exported)
	require.NoError(t, err)

	stdout, _, err := execute(t, "draft", "import", exported, "--store", store)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported draft 'brand'")

	stdout, _, err = execute(t, "draft", "list", "--store", store)
	require.NoError(t, err)
	assert.Equal(t, "brand\n", stdout)

	notJSON := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notJSON, []byte("not json"), 0o644))
	_, _, err = execute(t, "draft", "import", notJSON, "--store", store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestShowCommand(t *testing.T) {
	store := t.TempDir()

	stdout, _, err := execute(t, "show", brandFile, "--no-color")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "brand"))
	assert.Contains(t, stdout, "light")
	assert.Contains(t, stdout, "dark (prefers-color-scheme)")
	assert.Contains(t, stdout, "primary-50")
	assert.NotContains(t, stdout, "\x1b[")

	_, _, err = execute(t, "build", brandFile, "--save-draft", "--store", store)
	require.NoError(t, err)

	fromDraft, _, err := execute(t, "show", "--draft", "brand", "--store", store, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, stdout, fromDraft)
}

func TestPaletteSourceErrors(t *testing.T) {
	for _, cmd := range []string{"show", "browse"} {
		_, _, err := execute(t, cmd)
		require.Error(t, err, cmd)
		assert.Contains(t, err.Error(), "no palette given", cmd)

		_, _, err = execute(t, cmd, brandFile, "--draft", "brand")
		require.Error(t, err, cmd)
		assert.Contains(t, err.Error(), "both a file and --draft", cmd)

		_, _, err = execute(t, cmd, "--draft", "missing", "--store", t.TempDir())
		require.ErrorIs(t, err, drafts.ErrNotFound, cmd)
	}
}

func TestIsTerminal(t *testing.T) {
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })

	termIsTerminal = func(int) bool { return true }
	assert.True(t, isTerminal(os.Stdout))
	assert.False(t, isTerminal(&strings.Builder{}), "only files can be terminals")

	termIsTerminal = func(int) bool { return false }
	assert.False(t, isTerminal(os.Stdout))
}
