package state

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Tool is the active input tool.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolPan
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	case ToolPan:
		return "pan"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool is the inverse of Tool.String.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pen":
		return ToolPen, nil
	case "eraser":
		return ToolEraser, nil
	case "pan":
		return ToolPan, nil
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// EraserColor is written for eraser strokes so the stored record keeps
// the same shape as a pen stroke. It is ignored when read back.
const EraserColor = "#ffffff"

// Tip is what a stroke was drawn with: either Pen or Eraser.
type Tip interface {
	Tool() Tool
	Size() float64
}

// Pen paints opaque ink.
type Pen struct {
	Color color.NRGBA
	Width float64
}

func (Pen) Tool() Tool      { return ToolPen }
func (p Pen) Size() float64 { return p.Width }

// Eraser removes previously drawn ink under it.
type Eraser struct {
	Width float64
}

func (Eraser) Tool() Tool      { return ToolEraser }
func (e Eraser) Size() float64 { return e.Width }

// Stroke is one continuous path from pointer-down to pointer-up.
type Stroke struct {
	ID     string
	Points []Point
	Tip    Tip
}

// NewStroke starts a stroke at p with a fresh id.
func NewStroke(tip Tip, p Point) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{p},
		Tip:    tip,
	}
}

// Tool returns the stroke's tool.
func (s *Stroke) Tool() Tool { return s.Tip.Tool() }

// Width returns the stroke's line width.
func (s *Stroke) Width() float64 { return s.Tip.Size() }

// IsEraser reports whether the stroke removes ink.
func (s *Stroke) IsEraser() bool {
	_, ok := s.Tip.(Eraser)
	return ok
}

// Append adds a point to the end of the stroke.
func (s *Stroke) Append(p Point) {
	s.Points = append(s.Points, p)
}

// Clone returns a copy that shares no memory with s.
func (s *Stroke) Clone() *Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return &Stroke{ID: s.ID, Points: pts, Tip: s.Tip}
}

type strokeJSON struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Tool   string  `json:"tool"`
}

func (s *Stroke) MarshalJSON() ([]byte, error) {
	rec := strokeJSON{
		ID:     s.ID,
		Points: s.Points,
		Width:  s.Width(),
		Tool:   s.Tool().String(),
		Color:  EraserColor,
	}
	if rec.Points == nil {
		rec.Points = []Point{}
	}
	if pen, ok := s.Tip.(Pen); ok {
		rec.Color = FormatColor(pen.Color)
	}
	return json.Marshal(rec)
}

func (s *Stroke) UnmarshalJSON(data []byte) error {
	var rec strokeJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.Width <= 0 {
		return fmt.Errorf("stroke %s: width must be positive, got %v", rec.ID, rec.Width)
	}
	tool, err := ParseTool(rec.Tool)
	if err != nil {
		return fmt.Errorf("stroke %s: %w", rec.ID, err)
	}
	switch tool {
	case ToolPen:
		c, err := ParseColor(rec.Color)
		if err != nil {
			return fmt.Errorf("stroke %s: %w", rec.ID, err)
		}
		s.Tip = Pen{Color: c, Width: rec.Width}
	case ToolEraser:
		s.Tip = Eraser{Width: rec.Width}
	default:
		return fmt.Errorf("stroke %s: tool %s does not draw", rec.ID, tool)
	}
	s.ID = rec.ID
	s.Points = rec.Points
	return nil
}

// PathList is the ordered list of strokes; later strokes draw on top.
type PathList []*Stroke

// Clone deep-copies the list.
func (l PathList) Clone() PathList {
	if l == nil {
		return nil
	}
	out := make(PathList, len(l))
	for i, s := range l {
		out[i] = s.Clone()
	}
	return out
}

// Last returns the most recent stroke, or nil.
func (l PathList) Last() *Stroke {
	if len(l) == 0 {
		return nil
	}
	return l[len(l)-1]
}

// HasInk reports whether any pen stroke is present.
func (l PathList) HasInk() bool {
	for _, s := range l {
		if !s.IsEraser() {
			return true
		}
	}
	return false
}

// FormatColor renders c as #rrggbb. Alpha is dropped.
func FormatColor(c color.Color) string {
	cf, _ := colorful.MakeColor(ToNRGBA(c))
	return cf.Hex()
}

// ParseColor reads a #rgb or #rrggbb color.
func ParseColor(s string) (color.NRGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// ToNRGBA converts c to an opaque NRGBA.
func ToNRGBA(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}
