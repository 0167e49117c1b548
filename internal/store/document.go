package store

import (
	"encoding/json"

	"StylusBoard/internal/state"
)

// Document is the persisted drawing: strokes plus the view.
type Document struct {
	Paths     state.PathList
	Transform state.Transform
}

// DefaultDocument is an empty drawing at the identity view.
func DefaultDocument() Document {
	return Document{Transform: state.Identity()}
}

// IsDefault reports whether there is nothing worth storing.
func (d Document) IsDefault() bool {
	return len(d.Paths) == 0 && d.Transform.IsIdentity()
}

type documentJSON struct {
	Paths        state.PathList `json:"paths"`
	CanvasOffset state.Point    `json:"canvasOffset"`
	Scale        float64        `json:"scale"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	paths := d.Paths
	if paths == nil {
		paths = state.PathList{}
	}
	return json.Marshal(documentJSON{
		Paths:        paths,
		CanvasOffset: d.Transform.Offset(),
		Scale:        d.Transform.Scale,
	})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var rec documentJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	paths := make(state.PathList, 0, len(rec.Paths))
	for _, s := range rec.Paths {
		if s != nil {
			paths = append(paths, s)
		}
	}
	scale := 1.0
	if rec.Scale > 0 {
		scale = state.ClampScale(rec.Scale)
	}
	d.Paths = paths
	d.Transform = state.Transform{
		OffsetX: rec.CanvasOffset.X,
		OffsetY: rec.CanvasOffset.Y,
		Scale:   scale,
	}
	return nil
}
