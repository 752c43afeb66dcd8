package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got r2.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
}

func TestArrowRight(t *testing.T) {
	p := Arrow(r2.Vec{}, r2.Vec{X: 10}, 2, math.Pi/2)
	require.Len(t, p, 5)
	assert.Equal(t, []OpKind{MoveTo, LineTo, LineTo, MoveTo, LineTo},
		[]OpKind{p[0].Kind, p[1].Kind, p[2].Kind, p[3].Kind, p[4].Kind})
	assertVec(t, r2.Vec{}, p[0].To)
	assertVec(t, r2.Vec{X: 10}, p[1].To)
	// heads point back along the shaft, rotated a quarter turn each way
	assertVec(t, r2.Vec{X: 10, Y: 2}, p[2].To)
	assertVec(t, r2.Vec{X: 10}, p[3].To)
	assertVec(t, r2.Vec{X: 10, Y: -2}, p[4].To)
}

func TestArrowHeadsPointBack(t *testing.T) {
	tests := []struct {
		name       string
		start, end r2.Vec
	}{
		{"right", r2.Vec{}, r2.Vec{X: 5}},
		{"left", r2.Vec{X: 5}, r2.Vec{}},
		{"up", r2.Vec{}, r2.Vec{Y: 5}},
		{"down", r2.Vec{Y: 5}, r2.Vec{}},
		{"diagonal", r2.Vec{X: 1, Y: 1}, r2.Vec{X: 4, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Arrow(tt.start, tt.end, 1, 0)
			// with no spread both strokes lie on the shaft, 1 back from end
			back := r2.Unit(r2.Sub(tt.start, tt.end))
			assertVec(t, r2.Add(tt.end, back), p[2].To)
			assertVec(t, r2.Add(tt.end, back), p[4].To)
		})
	}
}

func TestArrowStrokeLength(t *testing.T) {
	end := r2.Vec{X: 3, Y: -7}
	p := Arrow(r2.Vec{X: -2, Y: 4}, end, 3, math.Pi/6)
	assert.InDelta(t, 3, r2.Norm(r2.Sub(p[2].To, end)), eps)
	assert.InDelta(t, 3, r2.Norm(r2.Sub(p[4].To, end)), eps)
}

func TestSegments(t *testing.T) {
	p := Arrow(r2.Vec{}, r2.Vec{X: 10}, 2, math.Pi/2)
	segs := p.Segments()
	require.Len(t, segs, 3)
	assertVec(t, r2.Vec{}, segs[0].From)
	assertVec(t, r2.Vec{X: 10}, segs[0].To)
	assertVec(t, r2.Vec{X: 10}, segs[1].From)
	assertVec(t, r2.Vec{X: 10}, segs[2].From)
	assertVec(t, r2.Vec{X: 10, Y: -2}, segs[2].To)
}
