package core

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventTorpedoFired EventKind = iota + 1
	EventPhaserFired
	EventPhaserHit
	EventTorpedoHit
	EventShipCollision
	EventShipDestroyed
	EventMatchOver
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventTorpedoFired:
		return "torpedo_fired"
	case EventPhaserFired:
		return "phaser_fired"
	case EventPhaserHit:
		return "phaser_hit"
	case EventTorpedoHit:
		return "torpedo_hit"
	case EventShipCollision:
		return "ship_collision"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event records one occurrence during a simulation step. Player is the
// player the event is attributed to: the shooter for fire and hit events,
// the victim for ShipDestroyed and the winner (or PlayerNone) for MatchOver.
type Event struct {
	Kind   EventKind
	Player PlayerID
	Tick   uint64
}
