package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

func TestNewColorNormalizesName(t *testing.T) {
	t.Parallel()

	c, err := ColorFromCSS("--primary", "#3366cc")
	require.NoError(t, err)
	assert.Equal(t, "primary", c.Name())
	assert.Equal(t, "--primary", c.CSSVariableName())
	assert.Equal(t, "--primary-fg", c.FgCSSVariableName())
	assert.Equal(t, "var(--primary)", c.CSSVariableReference())
	assert.Equal(t, "var(--primary-fg)", c.FgCSSVariableReference())
}

func TestNewColorRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "1st", "has space", "----x", "a.b", "--"} {
		_, err := ColorFromCSS(name, "#fff")
		var validationErr *palerrors.ValidationError
		require.ErrorAs(t, err, &validationErr, name)
	}

	for _, name := range []string{"_x", "A-1", "brand_50", "--ok"} {
		_, err := ColorFromCSS(name, "#fff")
		require.NoError(t, err, name)
	}
}

func TestNewColorRequiresValue(t *testing.T) {
	t.Parallel()

	_, err := NewColor("x", nil, nil)
	var validationErr *palerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = ColorFromCSS("x", "red")
	require.ErrorIs(t, err, color.ErrUnsupportedFormat)
}

func TestColorSetNameKeepsOldNameOnError(t *testing.T) {
	t.Parallel()

	c, err := ColorFromCSS("primary", "#fff")
	require.NoError(t, err)
	require.Error(t, c.SetName("bad name"))
	assert.Equal(t, "primary", c.Name())
}

func TestFgResolvesLazily(t *testing.T) {
	t.Parallel()

	c, err := ColorFromCSS("gray", "#777777")
	require.NoError(t, err)
	assert.False(t, c.HasFg())

	fg, err := c.Fg()
	require.NoError(t, err)
	assert.True(t, c.HasFg())
	assert.Equal(t, "#000000", fg.CSS())
}

func TestFgPrefersComplementaryWhenItWins(t *testing.T) {
	t.Parallel()

	c, err := ColorFromCSS("yellow", "#ffff00")
	require.NoError(t, err)

	require.NoError(t, c.FindBestForegroundAmong([]color.Value{color.MustHex("#777777")}, true))
	fg, err := c.Fg()
	require.NoError(t, err)
	assert.Equal(t, "rgba(0, 0, 255, 1)", fg.CSS())

	require.Error(t, c.FindBestForegroundAmong(nil, false))
}

func TestExplicitFgIsKept(t *testing.T) {
	t.Parallel()

	c, err := NewColor("brand", color.MustHex("#3366cc"), color.MustHex("#eeeeee"))
	require.NoError(t, err)

	decl, err := c.FgCSSDeclaration()
	require.NoError(t, err)
	assert.Equal(t, "--brand-fg: #eeeeeeff;", decl)

	c.SetFg(nil)
	assert.False(t, c.HasFg())
}

func TestCSSDeclarationUsesEightDigitHex(t *testing.T) {
	t.Parallel()

	c, err := ColorFromCSS("accent", "hsla(0, 100%, 50%, 0.5)")
	require.NoError(t, err)

	decl, err := c.CSSDeclaration()
	require.NoError(t, err)
	assert.Equal(t, "--accent: #ff000080;", decl)
}

func TestConvertTo(t *testing.T) {
	t.Parallel()

	c, err := ColorFromCSS("accent", "#ff0000")
	require.NoError(t, err)

	require.NoError(t, c.ConvertTo("hsla"))
	assert.Equal(t, "hsla(0, 100%, 50%, 1)", c.Value().CSS())

	require.ErrorIs(t, c.ConvertTo("lab"), color.ErrUnsupportedFormat)
	assert.Equal(t, color.FormatHSLA, c.Value().Format())
}

func TestCloneDropsFg(t *testing.T) {
	t.Parallel()

	c, err := NewColor("brand", color.MustHex("#3366cc"), color.MustHex("#eeeeee"))
	require.NoError(t, err)

	clone := c.Clone()
	assert.Equal(t, c.Name(), clone.Name())
	assert.Equal(t, c.Value().CSS(), clone.Value().CSS())
	assert.False(t, clone.HasFg())
	assert.NotSame(t, c, clone)
}
