package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// PilotKeys holds the flight controls of one player.
type PilotKeys struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	FirePhaser  key.Binding
	FireTorpedo key.Binding
}

// bindings pairs each control with the action it drives.
func (p PilotKeys) bindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{p.RotateLeft, core.ActionRotateLeft},
		{p.RotateRight, core.ActionRotateRight},
		{p.Thrust, core.ActionThrust},
		{p.FirePhaser, core.ActionFirePhaser},
		{p.FireTorpedo, core.ActionFireTorpedo},
	}
}

// KeyMap translates Bubble Tea key messages to game actions for both pilots
// sharing one keyboard. It also drives the help footer.
type KeyMap struct {
	Player1 PilotKeys
	Player2 PilotKeys
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds the key map from the configured bindings.
func NewKeyMap(cfg config.InputConfig) KeyMap {
	return KeyMap{
		Player1: pilotKeys(core.Player1, cfg.Player1),
		Player2: pilotKeys(core.Player2, cfg.Player2),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func pilotKeys(id core.PlayerID, kb config.KeyBindings) PilotKeys {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), id.String()+" "+desc),
		)
	}
	return PilotKeys{
		RotateLeft:  bind(kb.RotateLeft, "left"),
		RotateRight: bind(kb.RotateRight, "right"),
		Thrust:      bind(kb.Thrust, "thrust"),
		FirePhaser:  bind(kb.FirePhaser, "phaser"),
		FireTorpedo: bind(kb.FireTorpedo, "torpedo"),
	}
}

// Pilot returns the controls of a player.
func (k KeyMap) Pilot(id core.PlayerID) PilotKeys {
	if id == core.Player2 {
		return k.Player2
	}
	return k.Player1
}

// Lookup resolves a key string to the pilot and flight action bound to it.
func (k KeyMap) Lookup(keyStr string) (core.PlayerID, core.Action, bool) {
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		for _, b := range k.Pilot(id).bindings() {
			if slices.Contains(b.binding.Keys(), keyStr) {
				return id, b.action, true
			}
		}
	}
	return core.PlayerNone, core.ActionNone, false
}

// MapKey translates a key message to a driver action.
// Returns ActionNone for flight controls and unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	column := func(p PilotKeys) []key.Binding {
		return []key.Binding{p.RotateLeft, p.RotateRight, p.Thrust, p.FirePhaser, p.FireTorpedo}
	}
	return [][]key.Binding{
		column(k.Player1),
		column(k.Player2),
		k.ShortHelp(),
	}
}
