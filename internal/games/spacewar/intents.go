package spacewar

import (
	"time"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Intents is the control state of one pilot for a frame. Every field is
// level-triggered: true while the control is held.
type Intents struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	FirePhaser  bool
	FireTorpedo bool
}

// IntentsFromFrame maps a player's input frame onto ship intents. A one-shot
// action holds its control for this frame only, so it acts once and is
// released on the next frame.
func IntentsFromFrame(f core.InputFrame) Intents {
	down := func(a core.Action) bool { return f.IsHeld(a) || f.Has(a) }
	return Intents{
		RotateLeft:  down(core.ActionRotateLeft),
		RotateRight: down(core.ActionRotateRight),
		Thrust:      down(core.ActionThrust),
		FirePhaser:  down(core.ActionFirePhaser),
		FireTorpedo: down(core.ActionFireTorpedo),
	}
}

// IntentKind keys the repeat schedule table.
type IntentKind int

const (
	IntentRotateLeft IntentKind = iota
	IntentRotateRight
	IntentThrust
	IntentFirePhaser
	IntentFireTorpedo
)

// intentOrder fixes the processing order within a frame.
var intentOrder = [...]IntentKind{
	IntentRotateLeft,
	IntentRotateRight,
	IntentThrust,
	IntentFirePhaser,
	IntentFireTorpedo,
}

// String returns the intent name.
func (k IntentKind) String() string {
	switch k {
	case IntentRotateLeft:
		return "rotate_left"
	case IntentRotateRight:
		return "rotate_right"
	case IntentThrust:
		return "thrust"
	case IntentFirePhaser:
		return "fire_phaser"
	case IntentFireTorpedo:
		return "fire_torpedo"
	default:
		return "unknown"
	}
}

func (in Intents) held(k IntentKind) bool {
	switch k {
	case IntentRotateLeft:
		return in.RotateLeft
	case IntentRotateRight:
		return in.RotateRight
	case IntentThrust:
		return in.Thrust
	case IntentFirePhaser:
		return in.FirePhaser
	case IntentFireTorpedo:
		return in.FireTorpedo
	default:
		return false
	}
}

// SetIntents applies press and release edges against the previous intents.
// A press acts immediately and schedules its repeat; a release cancels the
// repeat. Dead ships ignore intents.
func (s *Ship) SetIntents(in Intents, now time.Duration) {
	if !s.ent.Alive() {
		s.cancelAll()
		return
	}

	prev := s.intents
	s.intents = in
	for _, k := range intentOrder {
		was, is := prev.held(k), in.held(k)
		switch {
		case is && !was:
			s.press(k, now)
		case was && !is:
			s.release(k)
		}
	}
}

// TickIntents runs every repeat that is due at now, at most once per kind
// per call. The driver calls it once per frame after SetIntents.
func (s *Ship) TickIntents(now time.Duration) {
	if !s.ent.Alive() {
		s.cancelAll()
		return
	}

	for _, k := range intentOrder {
		due, ok := s.repeats[k]
		if !ok || now < due {
			continue
		}
		s.repeat(k, now)

		next := due + s.interval(k)
		if next <= now {
			next = now + s.interval(k)
		}
		s.repeats[k] = next
	}
}

// Scheduled reports whether a repeat is pending for the intent.
func (s *Ship) Scheduled(k IntentKind) bool {
	_, ok := s.repeats[k]
	return ok
}

func (s *Ship) press(k IntentKind, now time.Duration) {
	switch k {
	case IntentRotateLeft:
		s.ccwLock = true
		s.rotate(-s.cfg.Ship.RotationStep)
		s.repeats[k] = now + s.interval(k)
	case IntentRotateRight:
		s.ccwLock = false
		s.rotate(s.cfg.Ship.RotationStep)
		s.repeats[k] = now + s.interval(k)
	case IntentThrust:
		s.thrust()
		s.repeats[k] = now + s.interval(k)
	case IntentFirePhaser:
		s.FirePhaser(now)
		s.repeats[k] = s.phaserCD.nextAt(now)
	case IntentFireTorpedo:
		s.FireTorpedo(now)
		s.repeats[k] = s.torpedoCD.nextAt(now)
	}
}

// release cancels the repeat. Letting go of one rotation hands the lock to
// the other direction, so a still-held opposite key resumes turning.
func (s *Ship) release(k IntentKind) {
	switch k {
	case IntentRotateLeft:
		s.ccwLock = false
	case IntentRotateRight:
		s.ccwLock = true
	}
	delete(s.repeats, k)
}

func (s *Ship) repeat(k IntentKind, now time.Duration) {
	switch k {
	case IntentRotateLeft:
		if s.ccwLock {
			s.rotate(-s.cfg.Ship.RotationStep)
		}
	case IntentRotateRight:
		if !s.ccwLock {
			s.rotate(s.cfg.Ship.RotationStep)
		}
	case IntentThrust:
		s.thrust()
	case IntentFirePhaser:
		s.FirePhaser(now)
	case IntentFireTorpedo:
		s.FireTorpedo(now)
	}
}

func (s *Ship) interval(k IntentKind) time.Duration {
	switch k {
	case IntentFirePhaser:
		return s.cfg.Phaser.Cooldown()
	case IntentFireTorpedo:
		return s.cfg.Torpedo.Cooldown()
	default:
		return s.cfg.Ship.MovementRepeat()
	}
}

func (s *Ship) cancelAll() {
	clear(s.repeats)
}
