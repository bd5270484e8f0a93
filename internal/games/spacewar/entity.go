// Package spacewar implements a two-ship space duel: frictionless,
// screen-wrapping ships trading phaser beams and torpedoes.
package spacewar

import (
	"fmt"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Kind tags what an Entity represents.
type Kind int

const (
	KindShip Kind = iota + 1
	KindTorpedo
	KindPhaser
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindTorpedo:
		return "torpedo"
	case KindPhaser:
		return "phaser"
	default:
		return "unknown"
	}
}

// Field is the wrapping world all entities live in.
type Field struct {
	Width  float64
	Height float64
}

// NewField creates a field of the given size. It panics on a non-positive
// or non-finite size.
func NewField(width, height float64) Field {
	if !(width > 0 && height > 0) || (core.Vec{X: width, Y: height}).IsNaN() {
		panic(fmt.Sprintf("spacewar: invalid field size %vx%v", width, height))
	}
	return Field{Width: width, Height: height}
}

// Wrap teleports a position that reached an edge to the opposite edge.
// Edges are inclusive: x >= Width goes to 0 and x <= 0 goes to Width.
func (f Field) Wrap(p core.Vec) core.Vec {
	switch {
	case p.X >= f.Width:
		p.X = 0
	case p.X <= 0:
		p.X = f.Width
	}
	switch {
	case p.Y >= f.Height:
		p.Y = 0
	case p.Y <= 0:
		p.Y = f.Height
	}
	return p
}

// Kinematics is the movement state of an entity.
type Kinematics struct {
	Pos     core.Vec
	Vel     core.Vec
	Heading float64 // degrees, 0 points along +x, grows clockwise on screen
}

// Entity is the record shared by ships, torpedoes and phasers. Movement and
// expiry are optional capabilities: a phaser has a lifetime but no body,
// a ship has a body but no lifetime.
type Entity struct {
	kind  Kind
	owner core.PlayerID
	body  *Kinematics
	life  *Lifetime
	shape *Shape
	sil   Silhouette
	alive bool

	onKill func()
}

// newEntity builds a live entity. It panics if the body holds NaN or
// infinite values.
func newEntity(kind Kind, owner core.PlayerID, body *Kinematics, life *Lifetime, shape *Shape) *Entity {
	if body != nil {
		if body.Pos.IsNaN() || body.Vel.IsNaN() || (core.Vec{X: body.Heading}).IsNaN() {
			panic(fmt.Sprintf("spacewar: %s constructed with invalid kinematics %+v", kind, *body))
		}
		body.Heading = core.NormalizeHeading(body.Heading)
	}
	e := &Entity{
		kind:  kind,
		owner: owner,
		body:  body,
		life:  life,
		shape: shape,
		alive: true,
	}
	e.refresh()
	return e
}

// Kind returns the entity kind.
func (e *Entity) Kind() Kind { return e.kind }

// Owner returns the player the entity belongs to.
func (e *Entity) Owner() core.PlayerID { return e.owner }

// Body returns the kinematics, or nil for entities that do not move.
func (e *Entity) Body() *Kinematics { return e.body }

// Lifetime returns the expiry timer, or nil for entities that do not expire.
func (e *Entity) Lifetime() *Lifetime { return e.life }

// Alive reports whether the entity has not been destroyed.
func (e *Entity) Alive() bool { return e.alive }

// Silhouette returns the placed outline, bounding box and center.
func (e *Entity) Silhouette() Silhouette { return e.sil }

// Kill marks the entity dead. It returns true only for the call that
// actually killed it, so repeated kills are harmless.
func (e *Entity) Kill() bool {
	if !e.alive {
		return false
	}
	e.alive = false
	if e.onKill != nil {
		e.onKill()
	}
	return true
}

// Step advances the entity by one frame: wrap, integrate velocity,
// normalize heading and re-place the silhouette. Entities without a body
// are left untouched.
func (e *Entity) Step(f Field) {
	if e.body == nil {
		return
	}
	e.body.Pos = f.Wrap(e.body.Pos).Add(e.body.Vel)
	e.body.Heading = core.NormalizeHeading(e.body.Heading)
	e.refresh()
}

// refresh re-places the silhouette around the current position.
func (e *Entity) refresh() {
	if e.body == nil || e.shape == nil {
		return
	}
	e.sil = e.shape.Place(e.body.Pos, e.body.Heading)
}
