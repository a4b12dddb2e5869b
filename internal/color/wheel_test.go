package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheelDefaultsToHex(t *testing.T) {
	t.Parallel()

	red, err := Red()
	require.NoError(t, err)
	assert.Equal(t, FormatHex, red.Format())
	assert.Equal(t, "#FF0000", red.CSS())

	indigo, err := Indigo("rgba")
	require.NoError(t, err)
	assert.Equal(t, "rgba(75, 54, 157, 1)", indigo.CSS())

	orange, err := Orange("hsla")
	require.NoError(t, err)
	assert.Equal(t, FormatHSLA, orange.Format())

	_, err = Blue("cmyk")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNamed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"red", "green", "blue", "white", "black", "yellow", "orange", "indigo", "violet"}, WheelNames())

	for _, name := range WheelNames() {
		v, err := Named(name, "")
		require.NoError(t, err, name)
		assert.Equal(t, FormatHex, v.Format())
	}

	v, err := Named("Violet", "rgba")
	require.NoError(t, err)
	assert.Equal(t, "rgba(112, 54, 157, 1)", v.CSS())

	_, err = Named("magenta", "")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestComplementary(t *testing.T) {
	t.Parallel()

	comp, err := Complementary(MustHex("#000000"))
	require.NoError(t, err)
	assert.Equal(t, "rgba(255, 255, 255, 1)", comp.CSS())

	input := MustParse("rgba(10, 20, 30, 0.4)")
	comp, err = Complementary(input)
	require.NoError(t, err)
	assert.Equal(t, "rgba(245, 235, 225, 0.4)", comp.CSS())
	assert.Equal(t, "rgba(10, 20, 30, 0.4)", input.CSS())

	comp, err = Complementary(MustParse("hsla(0, 100%, 50%, 1)"))
	require.NoError(t, err)
	assert.Equal(t, "rgba(0, 255, 255, 1)", comp.CSS())

	_, err = Complementary(nil)
	require.ErrorIs(t, err, ErrInvalidColorValue)
}
