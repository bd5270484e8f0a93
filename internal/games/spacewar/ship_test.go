package spacewar

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

func newTestShip(heading float64) *Ship {
	return NewShip(core.Player1, core.Vec{X: 400, Y: 300}, heading, testField(), testConfig())
}

func TestFireCooldownBoundary(t *testing.T) {
	tests := []struct {
		name     string
		fire     func(*Ship, time.Duration) bool
		cooldown time.Duration
	}{
		{"torpedo", (*Ship).FireTorpedo, 100 * ms},
		{"phaser", (*Ship).FirePhaser, 300 * ms},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShip(0)
			start := 2 * time.Second

			if !tc.fire(s, start) {
				t.Fatal("first shot should fire")
			}
			if tc.fire(s, start+tc.cooldown-ms) {
				t.Error("shot inside the cooldown should be dropped")
			}
			if !tc.fire(s, start+tc.cooldown) {
				t.Error("shot exactly at the cooldown should fire")
			}
			if tc.fire(s, start+tc.cooldown) {
				t.Error("second shot at the same instant should be dropped")
			}
		})
	}
}

func TestTorpedoCap(t *testing.T) {
	s := newTestShip(0)
	cd := testConfig().Torpedo.Cooldown()
	maxTorps := testConfig().Ship.MaxTorpedoes

	now := time.Duration(0)
	for i := 0; i < maxTorps; i++ {
		if !s.FireTorpedo(now) {
			t.Fatalf("torpedo %d should fire", i+1)
		}
		now += cd
	}

	if s.FireTorpedo(now) {
		t.Errorf("torpedo %d should be dropped at the cap", maxTorps+1)
	}
	if n := len(s.Torpedoes()); n != maxTorps {
		t.Fatalf("Torpedoes() len = %d, expected %d", n, maxTorps)
	}
	if s.TorpedoReady(now) {
		t.Error("TorpedoReady() should be false at the cap")
	}

	s.Torpedoes()[3].Entity().Kill()
	s.Sweep()

	if !s.FireTorpedo(now) {
		t.Error("destroying a torpedo should re-enable firing")
	}
	if n := len(s.Torpedoes()); n != maxTorps {
		t.Errorf("Torpedoes() len = %d, expected %d", n, maxTorps)
	}
}

func TestHeldFireRepeatsPerCooldown(t *testing.T) {
	s := newTestShip(0)
	held := Intents{FireTorpedo: true}

	for now := time.Duration(0); now <= 450*ms; now += 10 * ms {
		s.SetIntents(held, now)
		s.TickIntents(now)
	}
	// Shots at 0, 100, 200, 300 and 400ms.
	if n := len(s.Torpedoes()); n != 5 {
		t.Errorf("held trigger fired %d torpedoes, expected 5", n)
	}

	s.SetIntents(Intents{}, 460*ms)
	if s.Scheduled(IntentFireTorpedo) {
		t.Error("releasing the trigger should cancel its repeat")
	}
	s.TickIntents(600 * ms)
	if n := len(s.Torpedoes()); n != 5 {
		t.Errorf("released trigger kept firing: %d torpedoes", n)
	}
}

func TestPressDuringCooldownWaitsForIt(t *testing.T) {
	s := newTestShip(0)

	s.SetIntents(Intents{FirePhaser: true}, 0)
	s.SetIntents(Intents{}, 50*ms)
	s.SetIntents(Intents{FirePhaser: true}, 100*ms)

	if s.Stats().PhasersFired != 1 {
		t.Fatalf("press during cooldown fired; PhasersFired = %d", s.Stats().PhasersFired)
	}

	s.TickIntents(299 * ms)
	if s.Stats().PhasersFired != 1 {
		t.Error("repeat fired before the cooldown ended")
	}
	s.TickIntents(300 * ms)
	if s.Stats().PhasersFired != 2 {
		t.Error("held trigger should fire as soon as the cooldown ends")
	}
}

func TestRotationLock(t *testing.T) {
	s := newTestShip(0)

	steps := []struct {
		name     string
		in       Intents
		set      bool
		at       time.Duration
		expected float64
	}{
		{"press left", Intents{RotateLeft: true}, true, 0, 337.5},
		{"press right while left held", Intents{RotateLeft: true, RotateRight: true}, true, 10 * ms, 0},
		{"left repeat is locked out", Intents{}, false, 80 * ms, 0},
		{"right repeat turns", Intents{}, false, 90 * ms, 22.5},
		{"release right hands back to left", Intents{RotateLeft: true}, true, 100 * ms, 22.5},
		{"left repeat turns again", Intents{}, false, 160 * ms, 0},
		{"left keeps repeating", Intents{}, false, 240 * ms, 337.5},
	}

	for _, step := range steps {
		if step.set {
			s.SetIntents(step.in, step.at)
		}
		s.TickIntents(step.at)
		if got := s.Body().Heading; !approx(got, step.expected) {
			t.Fatalf("%s: heading = %v, expected %v", step.name, got, step.expected)
		}
	}
}

func TestThrustClampsPerAxis(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		vel      core.Vec
		expected core.Vec
	}{
		{"free acceleration", 0, core.Vec{}, core.Vec{X: 1}},
		{"saturates forward", 0, core.Vec{X: 9.5}, core.Vec{X: 10}},
		{"saturates backward", 180, core.Vec{X: -9.5, Y: 3}, core.Vec{X: -10, Y: 3}},
		{"diagonal exceeds the cap", 45, core.Vec{X: 9.9, Y: 9.9}, core.Vec{X: 10, Y: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShip(tc.heading)
			s.Body().Vel = tc.vel
			s.SetIntents(Intents{Thrust: true}, 0)

			if got := s.Body().Vel; !approxVec(got, tc.expected) {
				t.Errorf("velocity = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	s := newTestShip(45)
	s.Body().Vel = core.Vec{X: 9.9, Y: 9.9}
	s.SetIntents(Intents{Thrust: true}, 0)
	if speed := math.Hypot(s.Body().Vel.X, s.Body().Vel.Y); speed <= 10 {
		t.Errorf("diagonal speed = %v, expected above the per-axis cap", speed)
	}
}

func TestThrustRepeatsWhileHeld(t *testing.T) {
	s := newTestShip(0)
	held := Intents{Thrust: true}

	for now := time.Duration(0); now <= 400*ms; now += 20 * ms {
		s.SetIntents(held, now)
		s.TickIntents(now)
	}
	// Impulses at 0, 80, 160, 240, 320 and 400ms.
	if got := s.Body().Vel.X; !approx(got, 6) {
		t.Errorf("velocity after holding thrust = %v, expected 6", got)
	}
}

func TestDeadShipCancelsSchedules(t *testing.T) {
	s := newTestShip(0)
	s.SetIntents(Intents{RotateLeft: true, Thrust: true, FireTorpedo: true}, 0)

	for _, k := range []IntentKind{IntentRotateLeft, IntentThrust, IntentFireTorpedo} {
		if !s.Scheduled(k) {
			t.Fatalf("%s should be scheduled while held", k)
		}
	}

	s.Entity().Kill()
	for _, k := range intentOrder {
		if s.Scheduled(k) {
			t.Errorf("%s still scheduled after the ship died", k)
		}
	}

	heading, vel := s.Body().Heading, s.Body().Vel
	s.TickIntents(time.Second)
	s.SetIntents(Intents{RotateRight: true, FirePhaser: true}, time.Second)
	if s.Body().Heading != heading || s.Body().Vel != vel {
		t.Error("dead ship should ignore intents")
	}
	if s.ActivePhaser() != nil {
		t.Error("dead ship should not fire")
	}
}

func TestShipCollision(t *testing.T) {
	cfg := testConfig()
	a := NewShip(core.Player1, core.Vec{X: 100, Y: 100}, 0, testField(), cfg)
	b := NewShip(core.Player2, core.Vec{X: 110, Y: 100}, 0, testField(), cfg)
	a.Body().Vel = core.Vec{X: 4}
	b.Body().Vel = core.Vec{}

	if n := ResolveShipCollisions([]*Ship{a, b}, cfg.Collision); n != 1 {
		t.Fatalf("ResolveShipCollisions() = %d, expected 1", n)
	}
	if !approxVec(a.Body().Vel, core.Vec{X: 0.8}) {
		t.Errorf("first ship velocity = %+v, expected (0.8, 0)", a.Body().Vel)
	}
	if !approxVec(b.Body().Vel, core.Vec{X: 3}) {
		t.Errorf("second ship velocity = %+v, expected (3, 0)", b.Body().Vel)
	}
	// Only the x axis overlaps by center order, so only x is nudged.
	if !approxVec(b.Body().Pos, core.Vec{X: 113, Y: 100}) {
		t.Errorf("second ship pos = %+v, expected (113, 100)", b.Body().Pos)
	}
	if !a.Alive() || !b.Alive() {
		t.Error("collisions must not destroy ships")
	}
}

func TestShipCollisionSkipsSeparatedAndDead(t *testing.T) {
	cfg := testConfig()
	a := NewShip(core.Player1, core.Vec{X: 100, Y: 100}, 0, testField(), cfg)
	b := NewShip(core.Player2, core.Vec{X: 300, Y: 100}, 0, testField(), cfg)
	a.Body().Vel = core.Vec{X: 4}

	if n := ResolveShipCollisions([]*Ship{a, b}, cfg.Collision); n != 0 {
		t.Errorf("separated ships: ResolveShipCollisions() = %d, expected 0", n)
	}

	c := NewShip(core.Player2, core.Vec{X: 105, Y: 105}, 0, testField(), cfg)
	c.Entity().Kill()
	if n := ResolveShipCollisions([]*Ship{a, c}, cfg.Collision); n != 0 {
		t.Errorf("dead ship: ResolveShipCollisions() = %d, expected 0", n)
	}
	if a.Body().Vel != (core.Vec{X: 4}) {
		t.Errorf("velocity changed to %+v without a collision", a.Body().Vel)
	}
}
