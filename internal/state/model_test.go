package state

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var black = color.NRGBA{A: 255}

func TestStrokeJSONLayout(t *testing.T) {
	s := &Stroke{
		ID:     "a1",
		Points: []Point{{X: 1, Y: 2}, {X: 3.5, Y: 4}},
		Tip:    Pen{Color: color.NRGBA{R: 255, A: 255}, Width: 3},
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"a1","points":[{"x":1,"y":2},{"x":3.5,"y":4}],"color":"#ff0000","width":3,"tool":"pen"}`,
		string(data))
}

func TestEraserJSONDropsColor(t *testing.T) {
	s := &Stroke{ID: "e", Points: []Point{{X: 0, Y: 0}}, Tip: Eraser{Width: 20}}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"color":"#ffffff"`)

	var got Stroke
	require.NoError(t, json.Unmarshal([]byte(`{"id":"e","points":[],"color":"#123456","width":20,"tool":"eraser"}`), &got))
	assert.Equal(t, Eraser{Width: 20}, got.Tip)
}

func TestStrokeJSONRejectsBadRecords(t *testing.T) {
	for name, raw := range map[string]string{
		"zero width": `{"id":"x","points":[],"color":"#000000","width":0,"tool":"pen"}`,
		"bad tool":   `{"id":"x","points":[],"color":"#000000","width":1,"tool":"brush"}`,
		"pan tool":   `{"id":"x","points":[],"color":"#000000","width":1,"tool":"pan"}`,
		"bad color":  `{"id":"x","points":[],"color":"blue","width":1,"tool":"pen"}`,
		"not object": `[1,2]`,
	} {
		t.Run(name, func(t *testing.T) {
			var s Stroke
			assert.Error(t, json.Unmarshal([]byte(raw), &s))
		})
	}
}

func TestPathListCloneIsDeep(t *testing.T) {
	orig := PathList{NewStroke(Pen{Color: black, Width: 2}, Pt(0, 0))}
	cp := orig.Clone()
	orig[0].Append(Pt(5, 5))

	assert.Len(t, cp[0].Points, 1)
	assert.Equal(t, orig[0].ID, cp[0].ID)
	assert.Nil(t, PathList(nil).Clone())
}

func TestHasInk(t *testing.T) {
	assert.False(t, PathList{}.HasInk())
	erase := PathList{NewStroke(Eraser{Width: 10}, Pt(0, 0))}
	assert.False(t, erase.HasInk())
	assert.True(t, append(erase, NewStroke(Pen{Color: black, Width: 1}, Pt(0, 0))).HasInk())
}

func TestColorHelpers(t *testing.T) {
	c, err := ParseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, c)
	assert.Equal(t, "#00ff00", FormatColor(c))
	assert.Equal(t, "#000000", FormatColor(color.Black))
}

func TestNewStrokeIDsAreUnique(t *testing.T) {
	a := NewStroke(Eraser{Width: 1}, Pt(0, 0))
	b := NewStroke(Eraser{Width: 1}, Pt(0, 0))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, ToolEraser, a.Tool())
}

func TestParseTool(t *testing.T) {
	for _, tool := range []Tool{ToolPen, ToolEraser, ToolPan} {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	_, err := ParseTool("lasso")
	assert.Error(t, err)
}
