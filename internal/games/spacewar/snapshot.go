package spacewar

import "math"

// ShipSnapshot is the state of one ship and its weapons.
type ShipSnapshot struct {
	Alive   bool
	X, Y    float64
	VX, VY  float64
	Heading float64
	CCWLock bool

	// Each torpedo is 5 floats: X, Y, VX, VY, Heading
	TorpedoData []float64

	PhaserVisible bool
	PhaserHit     bool
}

// Snapshot contains the match state for determinism checks.
type Snapshot struct {
	Tick   uint64
	Paused bool
	Over   bool
	Winner int
	Ships  [2]ShipSnapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.clock.Ticks(),
		Paused: g.paused,
		Over:   g.over,
		Winner: int(g.winner),
	}

	for i, s := range g.ships {
		b := s.Body()
		ss := ShipSnapshot{
			Alive:   s.Alive(),
			X:       b.Pos.X,
			Y:       b.Pos.Y,
			VX:      b.Vel.X,
			VY:      b.Vel.Y,
			Heading: b.Heading,
			CCWLock: s.ccwLock,
		}
		for _, t := range s.Torpedoes() {
			tb := t.Entity().Body()
			ss.TorpedoData = append(ss.TorpedoData, tb.Pos.X, tb.Pos.Y, tb.Vel.X, tb.Vel.Y, tb.Heading)
		}
		if p := s.ActivePhaser(); p != nil {
			ss.PhaserVisible = true
			ss.PhaserHit = p.Victim() != nil
		}
		snap.Ships[i] = ss
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + boolBits(snap.Paused)
	h = h*31 + boolBits(snap.Over)
	h = h*31 + uint64(snap.Winner) //#nosec G115 -- hash computation

	for _, s := range snap.Ships {
		h = h*31 + boolBits(s.Alive)
		h = h*31 + math.Float64bits(s.X)
		h = h*31 + math.Float64bits(s.Y)
		h = h*31 + math.Float64bits(s.VX)
		h = h*31 + math.Float64bits(s.VY)
		h = h*31 + math.Float64bits(s.Heading)
		h = h*31 + boolBits(s.CCWLock)
		h = h*31 + uint64(len(s.TorpedoData))
		for _, v := range s.TorpedoData {
			h = h*31 + math.Float64bits(v)
		}
		h = h*31 + boolBits(s.PhaserVisible)
		h = h*31 + boolBits(s.PhaserHit)
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
