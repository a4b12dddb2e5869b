// Package drafts persists palettes as JSON drafts through a storage.Store.
//
// Each palette is stored under "palette-draft-{name}" and the names of all
// drafts are kept, in save order, as a JSON array under
// "palette-draft-index".
package drafts

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/storage"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

const (
	ItemPrefix = "palette-draft-"
	IndexKey   = "palette-draft-index"
)

// ErrNotFound is wrapped by Load when no draft exists under a name.
var ErrNotFound = errors.New("draft not found")

// Key returns the storage key for a palette name.
func Key(name string) string {
	return ItemPrefix + name
}

// Repository saves, loads and indexes palette drafts.
type Repository struct {
	mu    sync.Mutex
	store storage.Store
	log   *logger.Logger
	opts  []palette.Option
}

// NewRepository wraps store. opts are applied to every loaded palette.
func NewRepository(store storage.Store, log *logger.Logger, opts ...palette.Option) *Repository {
	return &Repository{store: store, log: log.WithComponent("drafts"), opts: opts}
}

// Save stores p and appends its name to the index when missing.
func (r *Repository) Save(p *palette.Palette) error {
	if p == nil {
		return palerrors.NewValidationError("palette", "palette is required", nil)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key(p.Name())
	if err := r.store.Save(key, string(data)); err != nil {
		return err
	}

	index, err := r.index()
	if err != nil {
		return err
	}
	if !contains(index, p.Name()) {
		index = append(index, p.Name())
		if err := r.saveIndex(index); err != nil {
			return err
		}
	}

	r.log.WithFields(map[string]any{"palette": p.Name(), "key": key}).Info("draft saved")
	return nil
}

// Load decodes the draft stored under name.
func (r *Repository) Load(name string) (*palette.Palette, error) {
	key := Key(name)
	value, ok, err := r.store.Load(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, palerrors.NewStorageError(key, "load", ErrNotFound)
	}
	return palette.DecodeJSON([]byte(value), r.opts...)
}

// Remove deletes the draft and drops its name from the index.
func (r *Repository) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key(name)
	if err := r.store.Remove(key); err != nil {
		return err
	}

	index, err := r.index()
	if err != nil {
		return err
	}
	kept := index[:0]
	for _, existing := range index {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	if err := r.saveIndex(kept); err != nil {
		return err
	}

	r.log.WithFields(map[string]any{"palette": name, "key": key}).Info("draft removed")
	return nil
}

// List returns the indexed draft names in save order.
func (r *Repository) List() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index()
}

// Import decodes a JSON palette record and saves it as a draft.
func (r *Repository) Import(data []byte) (*palette.Palette, error) {
	p, err := palette.DecodeJSON(data, r.opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repository) index() ([]string, error) {
	value, ok, err := r.store.Load(IndexKey)
	if err != nil {
		return nil, err
	}
	if !ok || value == "" {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(value), &names); err != nil {
		return nil, palerrors.NewStorageError(IndexKey, "load", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *Repository) saveIndex(names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return r.store.Save(IndexKey, string(data))
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
