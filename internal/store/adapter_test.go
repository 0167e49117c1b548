package store

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StylusBoard/internal/state"
)

func sampleDocument() Document {
	return Document{
		Paths: state.PathList{
			{ID: "one", Tip: state.Pen{Color: color.NRGBA{B: 255, A: 255}, Width: 3}, Points: []state.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
			{ID: "two", Tip: state.Eraser{Width: 12}, Points: []state.Point{{X: 5, Y: 5}}},
			{ID: "three", Tip: state.Pen{Color: color.NRGBA{A: 255}, Width: 1.5}, Points: []state.Point{{X: -4, Y: 2.25}}},
		},
		Transform: state.Transform{OffsetX: 12, OffsetY: -3, Scale: 1.75},
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	a := NewAdapter(NewFileStore(t.TempDir()), "")
	doc := sampleDocument()
	require.NoError(t, a.Save(doc))

	got, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestPersistedLayout(t *testing.T) {
	data, err := json.Marshal(Document{
		Paths:     state.PathList{{ID: "s", Tip: state.Pen{Color: color.NRGBA{A: 255}, Width: 2}, Points: []state.Point{{X: 1, Y: 2}}}},
		Transform: state.Transform{OffsetX: 4, OffsetY: 5, Scale: 2},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"paths": [{"id":"s","points":[{"x":1,"y":2}],"color":"#000000","width":2,"tool":"pen"}],
		"canvasOffset": {"x":4,"y":5},
		"scale": 2
	}`, string(data))
}

func TestSaveDefaultRemovesRecord(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	a := NewAdapter(fs, "board")
	require.NoError(t, a.Save(sampleDocument()))
	_, err := fs.Get("board")
	require.NoError(t, err)

	require.NoError(t, a.Save(DefaultDocument()))
	_, err = fs.Get("board")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMissingIsDefault(t *testing.T) {
	doc, err := NewAdapter(NewFileStore(t.TempDir()), "").Load()
	require.NoError(t, err)
	assert.True(t, doc.IsDefault())
}

func TestLoadCorruptReportsError(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	for _, raw := range []string{`{not json`, `{"paths":[{"tool":"pen","width":-1}]}`} {
		require.NoError(t, fs.Set(DefaultKey, []byte(raw)))
		doc, err := NewAdapter(fs, "").Load()
		assert.Error(t, err, raw)
		assert.True(t, doc.IsDefault(), raw)
	}
}

func TestLoadFillsMissingScale(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Set(DefaultKey, []byte(`{"paths":[null],"canvasOffset":{"x":1,"y":1}}`)))
	doc, err := NewAdapter(fs, "").Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
	assert.Equal(t, 1.0, doc.Transform.Scale)
}

type failingStore struct{ err error }

func (f failingStore) Get(string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(string, []byte) error   { return f.err }
func (f failingStore) Delete(string) error        { return f.err }

func TestAdapterWrapsStoreErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	a := NewAdapter(failingStore{err: boom}, "")
	assert.ErrorIs(t, a.Save(sampleDocument()), boom)
	assert.ErrorIs(t, a.Remove(), boom)
	_, err := a.Load()
	assert.ErrorIs(t, err, boom)
}
