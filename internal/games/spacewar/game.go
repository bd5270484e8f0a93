package spacewar

import (
	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game runs a hot-seat duel between two ships.
type Game struct {
	cfg     config.SpaceWarConfig
	fixed   bool // cfg was supplied by the caller and is not reloaded on Reset
	runtime core.RuntimeConfig

	field Field
	clock *core.TickClock
	ships [2]*Ship

	paused bool
	over   bool
	winner core.PlayerID

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.SpaceWarConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spacewar"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space War"
}

// Reset starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultSpaceWarConfig()
		}
		g.cfg = cfg
	}

	g.minScreenW = 40
	g.minScreenH = 12
	g.Resize(runtime)

	g.field = NewField(g.cfg.Screen.Width, g.cfg.Screen.Height)
	g.clock = core.NewTickClock(runtime.TickRate)
	w, h := g.field.Width, g.field.Height
	g.ships = [2]*Ship{
		NewShip(core.Player1, core.Vec{X: w / 4, Y: h / 4}, 0, g.field, g.cfg),
		NewShip(core.Player2, core.Vec{X: 3 * w / 4, Y: 3 * h / 4}, 0, g.field, g.cfg),
	}

	g.paused = false
	g.over = false
	g.winner = core.PlayerNone
}

// Resize adopts a new terminal size without restarting the match. The world
// keeps its size; only the projection onto the grid changes.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Ship returns the ship flown by id, or nil.
func (g *Game) Ship(id core.PlayerID) *Ship {
	switch id {
	case core.Player1:
		return g.ships[0]
	case core.Player2:
		return g.ships[1]
	default:
		return nil
	}
}

// Field returns the world bounds.
func (g *Game) Field() Field {
	return g.field
}

// Config returns the configuration the match runs with.
func (g *Game) Config() config.SpaceWarConfig {
	return g.cfg
}

// Step advances the match by one tick: intents, ship movement, ship-ship
// collisions, torpedo movement, weapon hits, then removal of everything
// destroyed.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.over || g.paused) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}

	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}

	now := g.clock.Now()
	tick := g.clock.Ticks()

	for _, s := range g.ships {
		s.SetIntents(IntentsFromFrame(in.Player(s.Owner())), now)
		s.TickIntents(now)
	}

	for _, s := range g.ships {
		s.Move()
	}

	var events []core.Event
	if ResolveShipCollisions(g.ships[:], g.cfg.Collision) > 0 {
		events = append(events, core.Event{Kind: core.EventShipCollision, Tick: tick})
	}

	// All torpedoes move before any hit test.
	for _, s := range g.ships {
		s.MoveTorpedoes()
	}

	// Each ship's weapons see a fresh snapshot of the opponent's targets.
	for i, s := range g.ships {
		s.Update(g.ships[1-i].Targets(), now)
	}

	for _, s := range g.ships {
		s.Sweep()
	}

	for _, s := range g.ships {
		for _, ev := range s.drainEvents() {
			ev.Tick = tick
			events = append(events, ev)
		}
	}

	events = append(events, g.checkOver(tick)...)
	g.clock.Advance()

	return core.StepResult{State: g.State(), Events: events}
}

// checkOver ends the match once a ship is destroyed. Both ships lost in
// the same tick is a draw.
func (g *Game) checkOver(tick uint64) []core.Event {
	var events []core.Event
	var survivors []core.PlayerID
	for _, s := range g.ships {
		if s.Alive() {
			survivors = append(survivors, s.Owner())
			continue
		}
		events = append(events, core.Event{Kind: core.EventShipDestroyed, Player: s.Owner(), Tick: tick})
	}
	if len(events) == 0 {
		return nil
	}

	g.over = true
	if len(survivors) == 1 {
		g.winner = survivors[0]
	}
	return append(events, core.Event{Kind: core.EventMatchOver, Player: g.winner, Tick: tick})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		GameOver: g.over,
		Paused:   g.paused,
		Winner:   g.winner,
	}
	if g.clock != nil {
		state.Tick = g.clock.Ticks()
	}
	for i, s := range g.ships {
		if s != nil {
			state.Stats[i] = s.Stats()
		}
	}
	return state
}

// Register the game with the registry
func init() {
	registry.Register("spacewar", func() registry.Game {
		return New()
	})
}
