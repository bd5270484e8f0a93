package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

func defaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSpaceWarConfig().Input)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapLookup(t *testing.T) {
	km := defaultKeyMap()

	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
	}{
		{"a", core.Player1, core.ActionRotateLeft},
		{"d", core.Player1, core.ActionRotateRight},
		{"w", core.Player1, core.ActionThrust},
		{"q", core.Player1, core.ActionFirePhaser},
		{"e", core.Player1, core.ActionFireTorpedo},
		{"j", core.Player2, core.ActionRotateLeft},
		{"left", core.Player2, core.ActionRotateLeft},
		{"right", core.Player2, core.ActionRotateRight},
		{"up", core.Player2, core.ActionThrust},
		{"u", core.Player2, core.ActionFirePhaser},
		{"o", core.Player2, core.ActionFireTorpedo},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			player, action, ok := km.Lookup(tc.key)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tc.key)
			}
			if player != tc.player || action != tc.action {
				t.Errorf("Lookup(%q) = (%v, %v), expected (%v, %v)", tc.key, player, action, tc.player, tc.action)
			}
		})
	}

	if _, _, ok := km.Lookup("z"); ok {
		t.Error("Lookup(z) should find nothing")
	}
}

func TestKeyMapDriverKeys(t *testing.T) {
	km := defaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"flight key", runeKey('w'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := defaultKeyMap()
	full := km.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() has %d columns, expected 3", len(full))
	}
	if got := full[1][0].Help().Key; got != "j/left" {
		t.Errorf("P2 rotate left help = %q, expected %q", got, "j/left")
	}
}
