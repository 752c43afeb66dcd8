// Package geom computes the paths drawn by chart indicators.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// OpKind is the kind of a path operation.
type OpKind int

const (
	MoveTo OpKind = iota
	LineTo
)

func (k OpKind) String() string {
	if k == MoveTo {
		return "move"
	}
	return "line"
}

// Op is one path operation.
type Op struct {
	Kind OpKind
	To   r2.Vec
}

// Path is a sequence of path operations, as consumed by a drawing backend.
type Path []Op

// Segment is a straight line drawn by a Path.
type Segment struct {
	From, To r2.Vec
}

// Arrow returns the path for a line from start to end with an arrow head at
// end. The head's two strokes have the given length and are angle radians
// off the line, on either side.
func Arrow(start, end r2.Vec, length, angle float64) Path {
	d := r2.Sub(end, start)
	theta := math.Atan2(d.Y, d.X)
	return Path{
		{MoveTo, start},
		{LineTo, end},
		{LineTo, head(end, length, math.Pi-theta+angle)},
		{MoveTo, end},
		{LineTo, head(end, length, math.Pi-theta-angle)},
	}
}

// head returns the far end of one head stroke.
func head(end r2.Vec, length, phi float64) r2.Vec {
	return r2.Add(end, r2.Vec{X: length * math.Cos(phi), Y: -length * math.Sin(phi)})
}

// Segments returns the line segments the Path draws.
func (p Path) Segments() (segs []Segment) {
	var pen r2.Vec
	for _, op := range p {
		if op.Kind == LineTo {
			segs = append(segs, Segment{pen, op.To})
		}
		pen = op.To
	}
	return
}
