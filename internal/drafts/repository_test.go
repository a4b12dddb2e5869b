package drafts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/storage"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
}

func newPalette(t *testing.T, name string) *palette.Palette {
	t.Helper()

	p, err := palette.New(name, palette.WithClock(fixedClock))
	require.NoError(t, err)

	c, err := palette.ColorFromCSS("primary", "#3366cc")
	require.NoError(t, err)
	_, err = p.AddThemeColor(c, "")
	require.NoError(t, err)
	return p
}

func TestSaveWritesItemAndIndex(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStore()
	repo := NewRepository(store, nil)

	require.NoError(t, repo.Save(newPalette(t, "brand")))
	require.NoError(t, repo.Save(newPalette(t, "brand")))
	require.NoError(t, repo.Save(newPalette(t, "alt")))

	index, ok, err := store.Load(IndexKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["brand","alt"]`, index)

	item, ok, err := store.Load("palette-draft-brand")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, item, `"_t":"Palette"`)
}

func TestLoadRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewRepository(storage.NewMemoryStore(), nil, palette.WithClock(fixedClock))
	original := newPalette(t, "brand")
	require.NoError(t, repo.Save(original))

	loaded, err := repo.Load("brand")
	require.NoError(t, err)

	want, err := original.CSS()
	require.NoError(t, err)
	got, err := loaded.CSS()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingDraft(t *testing.T) {
	t.Parallel()

	repo := NewRepository(storage.NewMemoryStore(), nil)
	_, err := repo.Load("ghost")
	require.ErrorIs(t, err, ErrNotFound)

	var storageErr *palerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "palette-draft-ghost", storageErr.Key)
}

func TestRemoveUpdatesIndex(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStore()
	repo := NewRepository(store, nil)
	require.NoError(t, repo.Save(newPalette(t, "brand")))
	require.NoError(t, repo.Save(newPalette(t, "alt")))

	require.NoError(t, repo.Remove("brand"))

	names, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alt"}, names)

	_, ok, err := store.Load("palette-draft-brand")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Remove("never-saved"))
	names, err = repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alt"}, names)
}

func TestListEmptyAndCorruptIndex(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStore()
	repo := NewRepository(store, nil)

	names, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.Save(IndexKey, "not json"))
	_, err = repo.List()
	var storageErr *palerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestImport(t *testing.T) {
	t.Parallel()

	repo := NewRepository(storage.NewMemoryStore(), nil)
	data := []byte(`{"_t":"Palette","_v":1,"name":"imported","themes":[{"_t":"PaletteTheme","_v":1,"name":"light","autoDetect":true,"colors":[]}]}`)

	p, err := repo.Import(data)
	require.NoError(t, err)
	assert.Equal(t, "imported", p.Name())

	names, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"imported"}, names)

	_, err = repo.Import([]byte(`{"_t":"Color"}`))
	var validationErr *palerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRepositoryOnFileStore(t *testing.T) {
	t.Parallel()

	store, err := storage.NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	repo := NewRepository(store, nil)

	require.NoError(t, repo.Save(newPalette(t, "My Brand")))
	loaded, err := repo.Load("My Brand")
	require.NoError(t, err)
	assert.Equal(t, "My Brand", loaded.Name())
}
