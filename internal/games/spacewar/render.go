package spacewar

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Visual characters for rendering
const (
	TorpedoChar = '•'
	OutlineChar = '·'
)

// headingGlyphs are indexed by heading in 45 degree sectors starting at +x
// and turning clockwise.
var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph returns the arrow closest to heading.
func HeadingGlyph(heading float64) rune {
	idx := int(math.Floor((core.NormalizeHeading(heading)+22.5)/45)) % 8
	return headingGlyphs[idx]
}

// beamGlyph picks a line character that follows the beam direction.
func beamGlyph(heading float64) rune {
	h := math.Mod(core.NormalizeHeading(heading), 180)
	switch {
	case h < 22.5 || h >= 157.5:
		return '─'
	case h < 67.5:
		return '╲'
	case h < 112.5:
		return '│'
	default:
		return '╱'
	}
}

// viewport projects world coordinates onto the play area below the HUD row.
type viewport struct {
	field Field
	cols  int
	rows  int
	top   int
}

func newViewport(f Field, dst *core.Screen) viewport {
	return viewport{field: f, cols: dst.Width(), rows: dst.Height() - 1, top: 1}
}

// cell maps a world position to a screen cell, clamped to the play area.
func (v viewport) cell(p core.Vec) (int, int) {
	x := int(p.X / v.field.Width * float64(v.cols))
	y := int(p.Y / v.field.Height * float64(v.rows))
	return core.Clamp(x, 0, v.cols-1), v.top + core.Clamp(y, 0, v.rows-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	vp := newViewport(g.field, dst)

	g.renderHUD(dst)

	for _, s := range g.ships {
		g.renderPhaser(dst, vp, s)
	}
	for _, s := range g.ships {
		g.renderTorpedoes(dst, vp, s)
	}
	for _, s := range g.ships {
		g.renderShip(dst, vp, s)
	}

	g.renderOverlay(dst)
}

// renderHUD draws torpedo stock and weapon readiness for both pilots.
func (g *Game) renderHUD(dst *core.Screen) {
	now := g.clock.Now()

	for i, s := range g.ships {
		phaser := "--"
		if s.PhaserReady(now) {
			phaser = "OK"
		}
		text := fmt.Sprintf("%s %c torp %d/%d phsr %s",
			s.Owner(), HeadingGlyph(s.Body().Heading),
			g.cfg.Ship.MaxTorpedoes-len(s.Torpedoes()), g.cfg.Ship.MaxTorpedoes, phaser)

		x := 1
		if i == 1 {
			x = dst.Width() - len([]rune(text)) - 1
		}
		dst.DrawTextColor(x, 0, text, core.PlayerColor(s.Owner()))
	}

	clock := fmt.Sprintf("%.1fs", now.Seconds())
	dst.DrawTextColor((dst.Width()-len(clock))/2, 0, clock, core.ColorGray)
}

// renderShip draws the hull outline with a heading arrow at its center.
func (g *Game) renderShip(dst *core.Screen, vp viewport, s *Ship) {
	if !s.Alive() {
		x, y := vp.cell(s.Body().Pos)
		dst.SetColor(x, y, '*', core.ColorRed)
		return
	}

	color := core.PlayerColor(s.Owner())
	sil := s.Entity().Silhouette()
	for _, line := range sil.Outline {
		for i := 0; i+1 < len(line); i++ {
			x0, y0 := vp.cell(line[i])
			x1, y1 := vp.cell(line[i+1])
			dst.DrawLine(x0, y0, x1, y1, OutlineChar, color)
		}
	}

	x, y := vp.cell(sil.Center)
	dst.SetColor(x, y, HeadingGlyph(s.Body().Heading), color)
}

// renderTorpedoes draws each live torpedo as a dot.
func (g *Game) renderTorpedoes(dst *core.Screen, vp viewport, s *Ship) {
	color := core.WeaponColor(s.Owner())
	for _, t := range s.Torpedoes() {
		x, y := vp.cell(t.Entity().Body().Pos)
		dst.SetColor(x, y, TorpedoChar, color)
	}
}

// renderPhaser rasterizes the visible beam legs.
func (g *Game) renderPhaser(dst *core.Screen, vp viewport, s *Ship) {
	p := s.ActivePhaser()
	if p == nil {
		return
	}
	glyph := beamGlyph(p.heading)
	color := core.WeaponColor(s.Owner())
	for _, line := range p.VisibleCoords() {
		x0, y0 := vp.cell(line[0])
		x1, y1 := vp.cell(line[1])
		dst.DrawLine(x0, y0, x1, y1, glyph, color)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.over:
		title := "DRAW"
		if g.winner != core.PlayerNone {
			title = fmt.Sprintf("%s WINS", g.winner)
		}
		g.drawCenteredBox(dst, title, "Press R to restart")
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
