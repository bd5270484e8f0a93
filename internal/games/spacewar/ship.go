package spacewar

import (
	"time"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Ship is a player's vessel together with the weapons it has in flight.
type Ship struct {
	ent   *Entity
	cfg   config.SpaceWarConfig
	field Field

	torpedoes []*Torpedo
	phaser    *Phaser

	intents Intents
	ccwLock bool
	repeats map[IntentKind]time.Duration

	phaserCD  cooldown
	torpedoCD cooldown

	stats  core.PlayerStats
	events []core.Event
}

// NewShip places a ship for owner at pos with the given heading.
func NewShip(owner core.PlayerID, pos core.Vec, heading float64, field Field, cfg config.SpaceWarConfig) *Ship {
	s := &Ship{
		cfg:       cfg,
		field:     field,
		repeats:   make(map[IntentKind]time.Duration),
		phaserCD:  cooldown{period: cfg.Phaser.Cooldown()},
		torpedoCD: cooldown{period: cfg.Torpedo.Cooldown()},
	}
	s.ent = newEntity(KindShip, owner, &Kinematics{Pos: pos, Heading: heading}, nil, shipShape(cfg.Ship.Size))
	s.ent.onKill = s.cancelAll
	return s
}

// Entity returns the ship's entity record.
func (s *Ship) Entity() *Entity { return s.ent }

// Owner returns the player flying the ship.
func (s *Ship) Owner() core.PlayerID { return s.ent.Owner() }

// Alive reports whether the ship is intact.
func (s *Ship) Alive() bool { return s.ent.Alive() }

// Body returns the ship's kinematics.
func (s *Ship) Body() *Kinematics { return s.ent.Body() }

// Torpedoes returns the live torpedoes fired by this ship.
func (s *Ship) Torpedoes() []*Torpedo {
	live := make([]*Torpedo, 0, len(s.torpedoes))
	for _, t := range s.torpedoes {
		if t.Alive() {
			live = append(live, t)
		}
	}
	return live
}

// ActivePhaser returns the visible beam, or nil.
func (s *Ship) ActivePhaser() *Phaser {
	if s.phaser == nil || !s.phaser.Alive() {
		return nil
	}
	return s.phaser
}

// Targets returns the entities an opponent's weapons can hit: the ship
// itself followed by its live torpedoes.
func (s *Ship) Targets() []*Entity {
	targets := make([]*Entity, 0, len(s.torpedoes)+1)
	if s.ent.Alive() {
		targets = append(targets, s.ent)
	}
	for _, t := range s.torpedoes {
		if t.Alive() {
			targets = append(targets, t.ent)
		}
	}
	return targets
}

// PhaserReady reports whether the phaser cooldown has elapsed at now.
func (s *Ship) PhaserReady(now time.Duration) bool {
	return s.phaserCD.ready(now)
}

// TorpedoReady reports whether a torpedo could be launched at now.
func (s *Ship) TorpedoReady(now time.Duration) bool {
	return s.torpedoCD.ready(now) && len(s.Torpedoes()) < s.cfg.Ship.MaxTorpedoes
}

// FirePhaser fires a beam if the cooldown allows. A beam still visible once
// the cooldown is over is replaced, so a ship never has two.
func (s *Ship) FirePhaser(now time.Duration) bool {
	if !s.ent.Alive() || !s.phaserCD.ready(now) {
		return false
	}
	if s.phaser != nil {
		s.phaser.ent.Kill()
	}
	s.phaser = newPhaser(s.ent, now, s.cfg.Phaser)
	s.phaserCD.mark(now)
	s.emit(core.EventPhaserFired)
	return true
}

// FireTorpedo launches a torpedo if the cooldown and the live torpedo cap
// allow. At the cap the request is dropped.
func (s *Ship) FireTorpedo(now time.Duration) bool {
	if !s.ent.Alive() || !s.torpedoCD.ready(now) {
		return false
	}
	if len(s.Torpedoes()) >= s.cfg.Ship.MaxTorpedoes {
		return false
	}
	s.torpedoes = append(s.torpedoes, newTorpedo(s.Owner(), *s.ent.Body(), now, s.cfg.Torpedo))
	s.torpedoCD.mark(now)
	s.emit(core.EventTorpedoFired)
	return true
}

// Move runs the ship's own kinematics for one frame.
func (s *Ship) Move() {
	if s.ent.Alive() {
		s.ent.Step(s.field)
	}
}

// MoveTorpedoes runs one frame of kinematics for every torpedo in flight.
func (s *Ship) MoveTorpedoes() {
	for _, t := range s.torpedoes {
		t.Move(s.field)
	}
}

// Update resolves the ship's torpedoes and beam against hostiles and
// returns everything they destroyed. Torpedoes are moved beforehand by
// MoveTorpedoes. Dead weapons stay in place until Sweep, so hostiles killed
// mid-pass are only skipped, never removed.
func (s *Ship) Update(hostiles []*Entity, now time.Duration) []*Entity {
	var destroyed []*Entity

	for _, t := range s.torpedoes {
		for _, hit := range t.Strike(hostiles, now) {
			destroyed = append(destroyed, hit)
			s.emit(core.EventTorpedoHit)
		}
	}

	if s.phaser != nil {
		if hit := s.phaser.Update(s.field, hostiles, now); hit != nil {
			destroyed = append(destroyed, hit)
			s.emit(core.EventPhaserHit)
		}
	}

	return destroyed
}

// Sweep drops destroyed torpedoes and an expired beam.
func (s *Ship) Sweep() {
	live := s.torpedoes[:0]
	for _, t := range s.torpedoes {
		if t.Alive() {
			live = append(live, t)
		}
	}
	clear(s.torpedoes[len(live):])
	s.torpedoes = live

	if s.phaser != nil && !s.phaser.Alive() {
		s.phaser = nil
	}
}

func (s *Ship) rotate(delta float64) {
	s.ent.body.Heading = core.NormalizeHeading(s.ent.body.Heading + delta)
	s.ent.refresh()
}

// thrust adds one impulse along the heading, saturating each axis
// independently at the velocity cap.
func (s *Ship) thrust() {
	limit := s.cfg.Ship.MaxVelocity
	v := s.ent.body.Vel.Add(core.FromHeading(s.ent.body.Heading, s.cfg.Ship.Thrust))
	s.ent.body.Vel = core.Vec{
		X: core.ClampF(v.X, -limit, limit),
		Y: core.ClampF(v.Y, -limit, limit),
	}
}

// Stats returns the shots fired and hits scored by this ship.
func (s *Ship) Stats() core.PlayerStats {
	return s.stats
}

func (s *Ship) emit(kind core.EventKind) {
	switch kind {
	case core.EventTorpedoFired:
		s.stats.TorpedoesFired++
	case core.EventPhaserFired:
		s.stats.PhasersFired++
	case core.EventTorpedoHit, core.EventPhaserHit:
		s.stats.Hits++
	}
	s.events = append(s.events, core.Event{Kind: kind, Player: s.Owner()})
}

// drainEvents returns and forgets the events recorded since the last call.
func (s *Ship) drainEvents() []core.Event {
	out := s.events
	s.events = nil
	return out
}
