package spacewar

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

const eps = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b core.Vec) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func testField() Field {
	return NewField(800, 600)
}

func testConfig() config.SpaceWarConfig {
	return config.DefaultSpaceWarConfig()
}

// target builds a square hostile of the given size centered on pos.
func target(pos core.Vec, size float64) *Entity {
	return newEntity(KindShip, core.Player2, &Kinematics{Pos: pos}, nil, &Shape{W: size, H: size})
}

func TestFieldWrap(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel core.Vec
		expected core.Vec
	}{
		{"left edge with zero velocity teleports", core.Vec{X: 0, Y: 300}, core.Vec{}, core.Vec{X: 800, Y: 300}},
		{"top edge with zero velocity teleports", core.Vec{X: 400, Y: 0}, core.Vec{}, core.Vec{X: 400, Y: 600}},
		{"right edge wraps then moves", core.Vec{X: 800, Y: 300}, core.Vec{X: 2}, core.Vec{X: 2, Y: 300}},
		{"past right edge wraps", core.Vec{X: 801.5, Y: 300}, core.Vec{X: 1}, core.Vec{X: 1, Y: 300}},
		{"velocity carries back out", core.Vec{X: 400, Y: 600}, core.Vec{Y: -3}, core.Vec{X: 400, Y: -3}},
		{"interior moves freely", core.Vec{X: 400, Y: 300}, core.Vec{X: -1.5, Y: 2}, core.Vec{X: 398.5, Y: 302}},
		{"corner wraps both axes", core.Vec{X: 800, Y: 600}, core.Vec{}, core.Vec{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEntity(KindTorpedo, core.Player1, &Kinematics{Pos: tc.pos, Vel: tc.vel}, nil, torpedoShape(12))
			e.Step(testField())
			if got := e.Body().Pos; !approxVec(got, tc.expected) {
				t.Errorf("Step() pos = %+v, expected %+v", got, tc.expected)
			}
			if got := e.Silhouette().Center; !approxVec(got, tc.expected) {
				t.Errorf("Silhouette().Center = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestWrapStaysInsideForSlowMovers(t *testing.T) {
	f := testField()
	e := newEntity(KindShip, core.Player1, &Kinematics{Pos: core.Vec{X: 790, Y: 10}, Vel: core.Vec{X: 7, Y: -4}}, nil, shipShape(30))

	for i := 0; i < 500; i++ {
		e.Step(f)
		p := e.Body().Pos
		if p.X <= 0-7 || p.X >= f.Width+7 || p.Y <= 0-4 || p.Y >= f.Height+4 {
			t.Fatalf("step %d: pos %+v escaped the field by more than one velocity step", i, p)
		}
	}
}

func TestHeadingStaysNormalized(t *testing.T) {
	s := NewShip(core.Player1, core.Vec{X: 400, Y: 300}, 0, testField(), testConfig())

	for i := 0; i < 400; i++ {
		now := time.Duration(i) * 16 * time.Millisecond
		in := Intents{
			RotateLeft:  i%7 < 4,
			RotateRight: i%11 < 6,
		}
		s.SetIntents(in, now)
		s.TickIntents(now)
		s.Move()

		h := s.Body().Heading
		if h < 0 || h >= 360 {
			t.Fatalf("frame %d: heading %v outside [0, 360)", i, h)
		}
	}
}

func TestEntityKillIdempotent(t *testing.T) {
	calls := 0
	e := target(core.Vec{X: 10, Y: 10}, 4)
	e.onKill = func() { calls++ }

	if !e.Kill() {
		t.Error("first Kill() = false, expected true")
	}
	if e.Kill() {
		t.Error("second Kill() = true, expected false")
	}
	if e.Alive() {
		t.Error("entity should be dead")
	}
	if calls != 1 {
		t.Errorf("onKill called %d times, expected 1", calls)
	}
}

func TestConstructionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"NaN position", func() {
			newEntity(KindShip, core.Player1, &Kinematics{Pos: core.Vec{X: math.NaN()}}, nil, shipShape(30))
		}},
		{"infinite velocity", func() {
			newEntity(KindTorpedo, core.Player1, &Kinematics{Vel: core.Vec{Y: math.Inf(1)}}, nil, torpedoShape(12))
		}},
		{"negative duration", func() { NewLifetime(0, -time.Millisecond) }},
		{"zero field", func() { NewField(0, 600) }},
		{"NaN field", func() { NewField(800, math.NaN()) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}

func TestSilhouetteBounds(t *testing.T) {
	tests := []struct {
		name    string
		shape   *Shape
		heading float64
		w, h    float64
	}{
		{"ship level", shipShape(30), 0, 30, 30},
		{"ship diagonal", shipShape(30), 45, 30 * math.Sqrt2, 30 * math.Sqrt2},
		{"torpedo level", torpedoShape(12), 0, 12, 12},
		{"wide art turned", &Shape{W: 20, H: 4}, 90, 4, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sil := tc.shape.Place(core.Vec{X: 100, Y: 50}, tc.heading)
			if !approx(sil.Bounds.W, tc.w) || !approx(sil.Bounds.H, tc.h) {
				t.Errorf("Bounds size = %vx%v, expected %vx%v", sil.Bounds.W, sil.Bounds.H, tc.w, tc.h)
			}
			if !approxVec(sil.Bounds.Center(), core.Vec{X: 100, Y: 50}) {
				t.Errorf("Bounds center = %+v, expected (100, 50)", sil.Bounds.Center())
			}
		})
	}
}

func TestSilhouetteNosePointsAlongHeading(t *testing.T) {
	pos := core.Vec{X: 100, Y: 100}

	ship := shipShape(30).Place(pos, 90)
	nose := ship.Outline[0][0]
	if !approxVec(nose, core.Vec{X: 100, Y: 115}) {
		t.Errorf("ship nose at heading 90 = %+v, expected (100, 115)", nose)
	}

	torp := torpedoShape(12).Place(pos, 0)
	tip := torp.Outline[0][0]
	if tip.X < pos.X+5 || math.Abs(tip.Y-pos.Y) > 2 {
		t.Errorf("torpedo tip at heading 0 = %+v, expected ahead of %+v on +x", tip, pos)
	}
}
