package spacewar

import (
	"math"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Shape is the reference art of an entity, authored around its own center.
type Shape struct {
	W, H float64

	// Outline holds polylines relative to the center.
	Outline [][]core.Vec

	// Offset is added to the heading before rotating, for art that is not
	// authored pointing along +x.
	Offset float64
}

// Silhouette is a shape placed in the world at some position and heading.
type Silhouette struct {
	Outline [][]core.Vec
	Bounds  core.RectF
	Center  core.Vec
}

// Place rotates the shape by heading and centers it on pos. Bounds is the
// axis-aligned box of the rotated W x H art rectangle.
func (s *Shape) Place(pos core.Vec, heading float64) Silhouette {
	angle := heading + s.Offset
	sin, cos := math.Sincos(core.Radians(angle))
	bw := math.Abs(s.W*cos) + math.Abs(s.H*sin)
	bh := math.Abs(s.W*sin) + math.Abs(s.H*cos)

	outline := make([][]core.Vec, len(s.Outline))
	for i, line := range s.Outline {
		placed := make([]core.Vec, len(line))
		for j, p := range line {
			placed[j] = p.Rotate(angle).Add(pos)
		}
		outline[i] = placed
	}

	return Silhouette{
		Outline: outline,
		Bounds:  core.RectAround(pos, bw, bh),
		Center:  pos,
	}
}

// artShape converts art authored in a w x h pixel box with the origin at its
// top-left corner into a centered Shape.
func artShape(w, h, offset float64, lines ...[]core.Vec) *Shape {
	center := core.Vec{X: w / 2, Y: h / 2}
	outline := make([][]core.Vec, len(lines))
	for i, line := range lines {
		centered := make([]core.Vec, len(line))
		for j, p := range line {
			centered[j] = p.Sub(center)
		}
		outline[i] = centered
	}
	return &Shape{W: w, H: h, Outline: outline, Offset: offset}
}

func pts(xy ...float64) []core.Vec {
	out := make([]core.Vec, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Vec{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// shipShape is a size x size arrowhead pointing along +x.
func shipShape(size float64) *Shape {
	u := size / 30
	return artShape(size, size, 0,
		pts(30*u, 15*u, 2*u, 4*u, 9*u, 15*u, 2*u, 26*u, 30*u, 15*u),
	)
}

// torpedoShape is a size x size finned dart drawn nose-up, so it needs a
// quarter turn to point along the heading.
func torpedoShape(size float64) *Shape {
	u := size / 12
	return artShape(size, size, 90,
		pts(5*u, 0, 3*u, 5*u, 7*u, 5*u, 5*u, 0),
		pts(0, 10*u, 3*u, 9*u, 3*u, 5*u, 0, 10*u),
		pts(7*u, 5*u, 7*u, 9*u, 11*u, 10*u, 7*u, 5*u),
		pts(3*u, 9*u, 7*u, 9*u),
		pts(5*u, 5*u, 5*u, 11*u),
	)
}
