package spacewar

import (
	"time"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Torpedo is a kinetic projectile that inherits the momentum of its ship.
type Torpedo struct {
	ent *Entity
}

// newTorpedo launches a torpedo from a ship's current kinematics. It spawns
// Standoff ahead of the ship so it does not overlap its own launcher.
func newTorpedo(owner core.PlayerID, from Kinematics, now time.Duration, cfg config.TorpedoConfig) *Torpedo {
	body := &Kinematics{
		Pos:     from.Pos.Add(core.FromHeading(from.Heading, cfg.Standoff)),
		Vel:     from.Vel.Add(core.FromHeading(from.Heading, cfg.Speed)),
		Heading: from.Heading,
	}
	life := NewLifetime(now, cfg.Lifetime())
	return &Torpedo{ent: newEntity(KindTorpedo, owner, body, life, torpedoShape(cfg.Size))}
}

// Entity returns the underlying entity record.
func (t *Torpedo) Entity() *Entity { return t.ent }

// Alive reports whether the torpedo is still flying.
func (t *Torpedo) Alive() bool { return t.ent.Alive() }

// Update moves the torpedo one frame, then strikes.
func (t *Torpedo) Update(f Field, hostiles []*Entity, now time.Duration) []*Entity {
	t.Move(f)
	return t.Strike(hostiles, now)
}

// Move runs the torpedo's kinematics for one frame.
func (t *Torpedo) Move(f Field) {
	if t.ent.Alive() {
		t.ent.Step(f)
	}
}

// Strike destroys the torpedo together with every live hostile its box
// overlaps. A torpedo whose lifetime ends this frame still strikes before
// it is removed. It returns the entities it destroyed. Dead torpedoes are
// left untouched.
func (t *Torpedo) Strike(hostiles []*Entity, now time.Duration) []*Entity {
	if !t.ent.Alive() {
		return nil
	}
	expired := t.ent.life.Expired(now)

	box := t.ent.Silhouette().Bounds
	var struck []*Entity
	for _, h := range hostiles {
		if h == t.ent || !h.Alive() {
			continue
		}
		if box.Intersects(h.Silhouette().Bounds) && h.Kill() {
			struck = append(struck, h)
		}
	}
	if expired || len(struck) > 0 {
		t.ent.Kill()
	}
	return struck
}
