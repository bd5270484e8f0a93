// Package core provides fundamental types and utilities for the spacewar platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the terminal screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point or displacement in world (screen-space) units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Rotate rotates v by deg degrees. With y pointing down the rotation is
// clockwise on screen, matching heading semantics.
func (v Vec) Rotate(deg float64) Vec {
	sin, cos := math.Sincos(Radians(deg))
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// IsNaN reports whether either component is NaN or infinite.
func (v Vec) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// FromHeading returns a vector of length mag pointing along heading deg.
func FromHeading(deg, mag float64) Vec {
	sin, cos := math.Sincos(Radians(deg))
	return Vec{X: mag * cos, Y: mag * sin}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// NormalizeHeading maps any angle in degrees into [0, 360).
func NormalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// RectF is an axis-aligned bounding box in world units used for collision detection.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// RectAround returns a w x h rectangle centered on c.
func RectAround(c Vec, w, h float64) RectF {
	return RectF{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// RectSpanning returns the bounding rectangle of the segment a-b, grown by
// pad/2 on every side so thin segments keep a thickness of pad.
func RectSpanning(a, b Vec, pad float64) RectF {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return RectF{
		X: minX - pad/2,
		Y: minY - pad/2,
		W: maxX - minX + pad,
		H: maxY - minY + pad,
	}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as an overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the signed penetration depth of a into b along each axis.
// The sign follows the relative order of the centers: positive when a sits
// left of (or above) b. An axis is zero when the boxes are disjoint on it or
// when both centers coincide on it.
func Overlap(a, b RectF) (dx, dy float64) {
	ac, bc := a.Center(), b.Center()

	switch {
	case ac.X < bc.X:
		dx = math.Max(0, a.Right()-b.X)
	case ac.X > bc.X:
		dx = -math.Max(0, b.Right()-a.X)
	}

	switch {
	case ac.Y < bc.Y:
		dy = math.Max(0, a.Bottom()-b.Y)
	case ac.Y > bc.Y:
		dy = -math.Max(0, b.Bottom()-a.Y)
	}

	return dx, dy
}

// LinearEquation builds the line through p with the given heading and returns
// its two inverse maps: xOfY gives the x coordinate for a y, yOfX the y for an x.
//
// Below 90 degrees (mod 180) the line is expressed as y = slope*x + b. From 90
// degrees on it is expressed as x = slope*y + b with slope = 1/tan so that
// near-vertical beams never divide by a vanishing cosine.
func LinearEquation(angleDeg float64, p Vec) (xOfY, yOfX func(float64) float64, slope float64) {
	slopeAng := math.Mod(angleDeg, 180)
	if slopeAng < 0 {
		slopeAng += 180
	}

	if slopeAng < 90 {
		slope = math.Tan(Radians(slopeAng))
		intercept := p.Y - slope*p.X
		yOfX = func(x float64) float64 { return slope*x + intercept }
		xOfY = func(y float64) float64 { return (y - intercept) / slope }
		return xOfY, yOfX, slope
	}

	slope = 1 / math.Tan(Radians(slopeAng))
	intercept := p.X - slope*p.Y
	yOfX = func(x float64) float64 { return (x - intercept) / slope }
	xOfY = func(y float64) float64 { return slope*y + intercept }
	return xOfY, yOfX, slope
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
