package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultKey is where the drawing is kept when no key is configured.
const DefaultKey = "stylus-canvas-state"

// Adapter reads and writes one Document under a fixed key.
type Adapter struct {
	store Store
	key   string
}

// NewAdapter returns an adapter for key in s. An empty key means
// DefaultKey.
func NewAdapter(s Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{store: s, key: key}
}

// Key returns the storage key.
func (a *Adapter) Key() string { return a.key }

// Save stores doc. A default document is not stored; any existing record
// is removed instead.
func (a *Adapter) Save(doc Document) error {
	if doc.IsDefault() {
		return a.Remove()
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", a.key, err)
	}
	if err := a.store.Set(a.key, data); err != nil {
		return fmt.Errorf("write %s: %w", a.key, err)
	}
	return nil
}

// Load returns the stored document. A missing record yields the default
// document and no error.
func (a *Adapter) Load() (Document, error) {
	data, err := a.store.Get(a.key)
	if errors.Is(err, ErrNotFound) {
		return DefaultDocument(), nil
	}
	if err != nil {
		return DefaultDocument(), fmt.Errorf("read %s: %w", a.key, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return DefaultDocument(), fmt.Errorf("decode %s: %w", a.key, err)
	}
	return doc, nil
}

// Remove deletes the stored record, if any.
func (a *Adapter) Remove() error {
	if err := a.store.Delete(a.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete %s: %w", a.key, err)
	}
	return nil
}
