package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

func TestLookupLightness(t *testing.T) {
	t.Parallel()

	g, err := Lookup(LightnessName)
	require.NoError(t, err)
	assert.Equal(t, LightnessName, g.Name())
	assert.Contains(t, Names(), LightnessName)
}

func TestLookupUnknownGeneratorIsNotImplemented(t *testing.T) {
	t.Parallel()

	_, err := Lookup("saturation")
	require.ErrorIs(t, err, color.ErrNotImplemented)
	assert.Contains(t, err.Error(), "saturation")
}

func TestDefaultOptionsAreValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultOptions().Validate())
	require.NoError(t, Options{Start: 50, End: 50, Step: 1}.Validate())
}
