package palette

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/variants"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC)
}

func mustColor(t *testing.T, name, css string) *Color {
	t.Helper()
	c, err := ColorFromCSS(name, css)
	require.NoError(t, err)
	return c
}

func mustTheme(t *testing.T, name string, autoDetect bool) *Theme {
	t.Helper()
	th, err := NewTheme(name, autoDetect)
	require.NoError(t, err)
	return th
}

func TestThemeColorMovesBetweenThemes(t *testing.T) {
	t.Parallel()

	light := mustTheme(t, "light", false)
	dark := mustTheme(t, "dark", true)

	tc, err := NewThemeColor(mustColor(t, "primary", "#3366cc"))
	require.NoError(t, err)
	assert.Empty(t, tc.ThemeName())

	light.AddColor(tc)
	assert.Same(t, light, tc.Theme())
	assert.True(t, light.HasColor(tc))

	tc.SetTheme(dark)
	assert.Same(t, dark, tc.Theme())
	assert.False(t, light.HasColor(tc))
	assert.True(t, dark.HasColor(tc))

	light.AddColor(tc)
	light.AddColor(tc)
	assert.Len(t, light.Colors(), 1)
	assert.False(t, dark.HasColor(tc))

	tc.SetTheme(nil)
	assert.Nil(t, tc.Theme())
	assert.Empty(t, light.Colors())
}

func TestThemeSetColorsReplacesMembership(t *testing.T) {
	t.Parallel()

	th := mustTheme(t, "light", false)
	a, _ := NewThemeColor(mustColor(t, "a", "#111"))
	b, _ := NewThemeColor(mustColor(t, "b", "#222"))

	require.NoError(t, th.SetColors([]*ThemeColor{a}))
	require.NoError(t, th.SetColors([]*ThemeColor{b}))

	assert.Nil(t, a.Theme())
	assert.Same(t, th, b.Theme())

	found, ok := th.Color("b")
	require.True(t, ok)
	assert.Same(t, b, found)

	require.Error(t, th.SetColors([]*ThemeColor{nil}))
}

func TestThemeNameValidation(t *testing.T) {
	t.Parallel()

	_, err := NewTheme("high contrast", false)
	var validationErr *palerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = NewTheme("", false)
	require.Error(t, err)

	_, err = NewTheme("--dark", false)
	require.ErrorAs(t, err, &validationErr)
	assert.False(t, ValidThemeName("--dark"))

	_, err = NewTheme("dark-dim", true)
	require.NoError(t, err)
}

func TestVariantsAddRemove(t *testing.T) {
	t.Parallel()

	tc, err := ThemeColorFromCSS("brand", "#3366cc")
	require.NoError(t, err)

	v := mustColor(t, "brand-light", "#aabbcc")
	require.NoError(t, tc.AddVariant(v))
	require.Error(t, tc.AddVariant(nil))

	got, ok := tc.Variant("brand-light")
	require.True(t, ok)
	assert.Same(t, v, got)

	assert.True(t, tc.RemoveVariant(v))
	assert.False(t, tc.RemoveVariant(v))
	assert.Empty(t, tc.Variants())

	require.Error(t, tc.SetVariants([]*Color{v, nil}))
	assert.Empty(t, tc.Variants())
}

func TestGenerateLightnessVariantsUsesThemeMode(t *testing.T) {
	t.Parallel()

	dark := mustTheme(t, "dark", true)
	tc, err := ThemeColorFromCSS("brand", "hsla(200, 50%, 50%, 1)")
	require.NoError(t, err)
	dark.AddColor(tc)

	require.NoError(t, tc.GenerateLightnessVariants(variants.Options{Start: 0, End: 100, Step: 50}))

	vs := tc.Variants()
	require.Len(t, vs, 3)
	assert.Equal(t, "brand-0", vs[0].Name())
	assert.Equal(t, "hsla(200, 50%, 100%, 1)", vs[0].Value().CSS())
	assert.Equal(t, "brand-100", vs[2].Name())
	assert.Equal(t, "hsla(200, 50%, 0%, 1)", vs[2].Value().CSS())
}

func TestGenerateVariantsRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	tc, err := ThemeColorFromCSS("brand", "#3366cc")
	require.NoError(t, err)
	require.NoError(t, tc.AddVariant(mustColor(t, "keep", "#fff")))

	err = tc.GenerateLightnessVariants(variants.Options{Start: 0, End: 100, Step: 0})
	var validationErr *palerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, tc.Variants(), 1)

	require.Error(t, tc.GenerateVariants(nil, variants.DefaultOptions()))
}

func TestPaletteThemeOrDefault(t *testing.T) {
	t.Parallel()

	p, err := New("brand")
	require.NoError(t, err)

	tc, err := p.AddThemeColor(mustColor(t, "primary", "#3366cc"), "missing")
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, tc.ThemeName())

	def, ok := p.Theme(DefaultThemeName)
	require.True(t, ok)
	assert.Same(t, p, def.Palette())
	assert.True(t, def.HasColor(tc))

	light := mustTheme(t, "light", false)
	light.SetPalette(p)
	assert.True(t, p.HasTheme(light))

	got, err := p.ThemeOrDefault("light")
	require.NoError(t, err)
	assert.Same(t, light, got)

	got, err = p.ThemeOrDefault("nope")
	require.NoError(t, err)
	assert.Same(t, def, got)
	assert.Len(t, p.Themes(), 2)

	light.SetPalette(nil)
	assert.False(t, p.HasTheme(light))
	assert.Nil(t, light.Palette())
}

func TestPaletteMovesThemes(t *testing.T) {
	t.Parallel()

	a, err := New("a")
	require.NoError(t, err)
	b, err := New("b")
	require.NoError(t, err)

	th := mustTheme(t, "light", false)
	a.AddTheme(th)
	b.AddTheme(th)

	assert.False(t, a.HasTheme(th))
	assert.Same(t, b, th.Palette())

	require.NoError(t, a.SetThemes([]*Theme{th}))
	assert.False(t, b.HasTheme(th))
	assert.Same(t, a, th.Palette())
}

func TestPaletteRequiresName(t *testing.T) {
	t.Parallel()

	_, err := New("  ")
	var validationErr *palerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPaletteGenerateVariantsAcrossThemes(t *testing.T) {
	t.Parallel()

	p, err := New("brand")
	require.NoError(t, err)
	p.AddTheme(mustTheme(t, "light", false))
	p.AddTheme(mustTheme(t, "dark", true))

	_, err = p.AddThemeColor(mustColor(t, "primary", "#3366cc"), "light")
	require.NoError(t, err)
	_, err = p.AddThemeColor(mustColor(t, "primary", "#3366cc"), "dark")
	require.NoError(t, err)

	require.NoError(t, p.GenerateVariants(variants.Lightness{}, variants.Options{Start: 20, End: 80, Step: 30}))

	light, _ := p.Theme("light")
	dark, _ := p.Theme("dark")
	lightPrimary, _ := light.Color("primary")
	darkPrimary, _ := dark.Color("primary")

	assert.Equal(t, "primary-20", lightPrimary.Variants()[0].Name())
	assert.Equal(t, "hsla(220, 60%, 20%, 1)", lightPrimary.Variants()[0].Value().CSS())
	assert.Equal(t, "primary-20", darkPrimary.Variants()[0].Name())
	assert.Equal(t, "hsla(220, 60%, 80%, 1)", darkPrimary.Variants()[0].Value().CSS())
}

func TestPaletteCSS(t *testing.T) {
	t.Parallel()

	p, err := New("brand", WithClock(fixedClock))
	require.NoError(t, err)
	p.AddTheme(mustTheme(t, "light", false))
	p.AddTheme(mustTheme(t, "dark", true))

	primary, err := NewColor("primary", color.MustHex("#3366cc"), color.MustHex("#ffffff"))
	require.NoError(t, err)
	_, err = p.AddThemeColor(primary, "light")
	require.NoError(t, err)

	bgTC, err := p.AddThemeColor(mustColor(t, "bg", "#000"), "dark")
	require.NoError(t, err)
	require.NoError(t, bgTC.AddVariant(mustColor(t, "bg-alt", "rgba(17, 17, 17, 1)")))

	expected := []string{
		"/* PALETTE 'brand' [2024-03-05] */",
		"/* THEME 'light' [2024-03-05] */",
		".theme-light {",
		"/* COLOR 'primary' (light) [2024-03-05] */",
		"--primary: #3366ccff;",
		"--primary-fg: #ffffffff;",
		"}",
		"/* THEME 'dark' [2024-03-05] */",
		"@media (prefers-color-scheme: dark) {",
		":root {",
		"/* COLOR 'bg' (dark) [2024-03-05] */",
		"--bg: #000000ff;",
		"--bg-fg: #ffffffff;",
		"--bg-alt: #111111ff;",
		"--bg-alt-fg: #ffffffff;",
		"}",
		"}",
	}

	css, err := p.CSS()
	require.NoError(t, err)
	assert.Equal(t, strings.Join(expected, "\n"), css)

	minified, err := p.MinifiedCSS()
	require.NoError(t, err)
	assert.Equal(t, strings.Join(expected, ""), minified)
}

func TestDateStampUsesUTC(t *testing.T) {
	t.Parallel()

	local := time.Date(2024, time.March, 6, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	assert.Equal(t, "2024-03-05", DateStamp(local))
}
