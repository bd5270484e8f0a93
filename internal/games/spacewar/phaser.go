package spacewar

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Segment is one straight leg of a beam. Rect is the thickened box used for
// hit tests.
type Segment struct {
	Rect   core.RectF
	Start  core.Vec
	End    core.Vec
	Length float64
}

// Phaser is an instant-hit beam. Its geometry is computed once, from the
// shooter's position and heading at the moment of firing, and wraps across
// the field at most once.
type Phaser struct {
	ent     *Entity
	shooter *Entity

	origin  core.Vec
	heading float64
	length  float64
	width   float64

	segments []Segment
	active   bool

	// resolved hit, if any
	victim *Entity
	hitSeg int
	hitAt  core.Vec
}

// newPhaser fires a beam from shooter at now.
func newPhaser(shooter *Entity, now time.Duration, cfg config.PhaserConfig) *Phaser {
	return &Phaser{
		ent:     newEntity(KindPhaser, shooter.Owner(), nil, NewLifetime(now, cfg.Duration()), nil),
		shooter: shooter,
		origin:  shooter.Body().Pos,
		heading: shooter.Body().Heading,
		length:  cfg.Length,
		width:   cfg.Width,
		active:  true,
		hitSeg:  -1,
	}
}

// Entity returns the underlying entity record.
func (p *Phaser) Entity() *Entity { return p.ent }

// Alive reports whether the beam is still visible.
func (p *Phaser) Alive() bool { return p.ent.Alive() }

// Active reports whether the beam has yet to resolve its hit.
func (p *Phaser) Active() bool { return p.active }

// Segments returns the hit geometry; empty until the first update.
func (p *Phaser) Segments() []Segment { return p.segments }

// Victim returns the entity the beam destroyed, or nil.
func (p *Phaser) Victim() *Entity { return p.victim }

// Update builds the geometry on the first call, resolves the hit exactly
// once, then expires the beam when its duration is over. It returns the
// destroyed hostile, or nil.
func (p *Phaser) Update(f Field, hostiles []*Entity, now time.Duration) *Entity {
	if !p.ent.Alive() {
		return nil
	}

	if p.segments == nil {
		p.segments = buildSegments(f, p.origin, p.heading, p.length, p.width)
	}

	var victim *Entity
	if p.active {
		victim = p.resolve(hostiles)
		p.active = false
	}

	if p.ent.life.Expired(now) {
		p.ent.Kill()
	}
	return victim
}

// resolve destroys the nearest hostile along the beam. Distances on the
// wrapped leg include the length of the first leg; only strictly nearer
// targets replace the current best, so ties keep hostile order.
func (p *Phaser) resolve(hostiles []*Entity) *Entity {
	best := p.length
	for _, h := range hostiles {
		if !h.Alive() || h == p.shooter || h == p.ent {
			continue
		}
		box := h.Silhouette().Bounds
		for i, seg := range p.segments {
			if !box.Intersects(seg.Rect) {
				continue
			}
			d := core.Distance(seg.Start, box.Center())
			if i == 1 {
				d += p.segments[0].Length
			}
			if d < best {
				best = d
				p.victim = h
				p.hitSeg = i
				p.hitAt = box.Center()
			}
			break
		}
	}

	if p.victim != nil {
		p.victim.Kill()
	}
	return p.victim
}

// buildSegments clips the beam to the field and continues the remainder from
// the opposite edge.
func buildSegments(f Field, origin core.Vec, heading, length, width float64) []Segment {
	xOfY, yOfX, slope := core.LinearEquation(heading, origin)
	end := origin.Add(core.FromHeading(heading, length))

	switch {
	case end.X >= f.Width:
		end.X = f.Width
		if slope != 0 {
			end.Y = yOfX(end.X)
		}
	case end.X <= 0:
		end.X = 0
		if slope != 0 {
			end.Y = yOfX(end.X)
		}
	}
	switch {
	case end.Y >= f.Height:
		end.Y = f.Height
		if slope != 0 {
			end.X = xOfY(end.Y)
		}
	case end.Y <= 0:
		end.Y = 0
		if slope != 0 {
			end.X = xOfY(end.Y)
		}
	}
	end.X = core.ClampF(end.X, 0, f.Width)
	end.Y = core.ClampF(end.Y, 0, f.Height)

	first := Segment{
		Rect:   core.RectSpanning(origin, end, width),
		Start:  origin,
		End:    end,
		Length: core.Distance(origin, end),
	}
	segments := []Segment{first}

	remaining := length - first.Length
	if math.Floor(remaining) <= 0 {
		return segments
	}

	// The wrapped leg re-enters from the edge opposite to where the first left.
	start := end
	switch {
	case end.X >= f.Width:
		start.X = 0
	case end.X <= 0:
		start.X = f.Width
	}
	switch {
	case end.Y >= f.Height:
		start.Y = 0
	case end.Y <= 0:
		start.Y = f.Height
	}
	stop := start.Add(core.FromHeading(heading, remaining))

	return append(segments, Segment{
		Rect:   core.RectSpanning(start, stop, width),
		Start:  start,
		End:    stop,
		Length: remaining,
	})
}

// VisibleCoords returns the line segments to draw. A hit cuts the beam at
// the victim's center; every point is shifted by how far the shooter has
// moved since firing so the beam stays attached to the ship.
func (p *Phaser) VisibleCoords() [][2]core.Vec {
	if p.segments == nil {
		return nil
	}

	var lines [][2]core.Vec
	switch p.hitSeg {
	case 0:
		lines = [][2]core.Vec{{p.segments[0].Start, p.hitAt}}
	case 1:
		lines = [][2]core.Vec{
			{p.segments[0].Start, p.segments[0].End},
			{p.segments[1].Start, p.hitAt},
		}
	default:
		for _, seg := range p.segments {
			lines = append(lines, [2]core.Vec{seg.Start, seg.End})
		}
	}

	shift := p.shooter.Body().Pos.Sub(p.origin)
	for i := range lines {
		lines[i][0] = lines[i][0].Add(shift)
		lines[i][1] = lines[i][1].Add(shift)
	}
	return lines
}
