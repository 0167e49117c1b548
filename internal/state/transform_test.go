package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{OffsetX: 30, OffsetY: -12, Scale: 2.5}
	p := Pt(17, 42)
	got := tr.ToCanvas(tr.ToScreen(p))
	assert.InDelta(t, p.X, got.X, 1e-9)
	assert.InDelta(t, p.Y, got.Y, 1e-9)
}

func TestZoomAtKeepsCursorFixed(t *testing.T) {
	tr := Transform{OffsetX: 40, OffsetY: 25, Scale: 1}
	cursor := Pt(200, 120)
	before := tr.ToCanvas(cursor)

	zoomed := tr.ZoomAt(cursor, 2)
	assert.Equal(t, 2.0, zoomed.Scale)

	after := zoomed.ToCanvas(cursor)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	back := zoomed.ToScreen(before)
	assert.InDelta(t, cursor.X, back.X, 1e-9)
	assert.InDelta(t, cursor.Y, back.Y, 1e-9)
}

func TestZoomAtClamps(t *testing.T) {
	tr := Identity()
	for range 100 {
		tr = tr.ZoomAt(Pt(10, 10), 1.5)
	}
	assert.Equal(t, MaxScale, tr.Scale)

	for range 200 {
		tr = tr.ZoomAt(Pt(10, 10), 0.5)
	}
	assert.Equal(t, MinScale, tr.Scale)

	// clamped zoom still keeps the cursor fixed
	world := tr.ToCanvas(Pt(10, 10))
	assert.InDelta(t, 10, tr.ToScreen(world).X, 1e-9)
}

func TestZoomAtRejectsBadFactor(t *testing.T) {
	tr := Transform{OffsetX: 1, OffsetY: 2, Scale: 3}
	assert.Equal(t, tr, tr.ZoomAt(Pt(0, 0), 0))
	assert.Equal(t, tr, tr.ZoomAt(Pt(0, 0), -2))
}

func TestPan(t *testing.T) {
	tr := Identity().Pan(5, -7)
	assert.Equal(t, Pt(5, -7), tr.Offset())
	assert.False(t, tr.IsIdentity())
	assert.True(t, tr.Pan(-5, 7).IsIdentity())
}
