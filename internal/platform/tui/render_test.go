package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "P1")
	s.SetColor(3, 0, '→', core.ColorCyan)
	s.SetColor(4, 0, '•', core.ColorYellow)
	s.DrawTextColor(0, 1, "DRAW", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "P1 →• " {
		t.Errorf("row 0 = %q, expected %q", lines[0], "P1 →• ")
	}
	if lines[1] != "DRAW  " {
		t.Errorf("row 1 = %q, expected %q", lines[1], "DRAW  ")
	}
}
