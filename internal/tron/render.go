package tron

import (
	"fmt"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Glyphs used by Render.
const (
	GlyphObstacle = '▓'
	GlyphTrail    = '█'
	GlyphPlayer   = '@'
	GlyphCPU      = '&'
)

const hudHeight = 2

// Layout maps grid cells to screen cells. Each grid cell is Scale columns
// wide so the arena looks square in a terminal when there is room.
type Layout struct {
	OffsetX int
	OffsetY int
	Scale   int
	Width   int
	Height  int
}

// ComputeLayout fits a width x height grid inside a screen. It reports false
// when the screen is too small to hold the grid and its border.
func ComputeLayout(screenW, screenH, width, height int) (Layout, bool) {
	if screenW < width+2 || screenH < height+2+hudHeight {
		return Layout{}, false
	}
	scale := 1
	if screenW >= width*2+2 {
		scale = 2
	}
	boxW := width*scale + 2
	return Layout{
		OffsetX: (screenW-boxW)/2 + 1,
		OffsetY: hudHeight + 1,
		Scale:   scale,
		Width:   width,
		Height:  height,
	}, true
}

// Render draws a frame onto dst.
func Render(dst *core.Screen, f Frame) {
	dst.Clear()
	renderHUD(dst, f)

	layout, ok := ComputeLayout(dst.Width(), dst.Height(), f.Width, f.Height)
	if !ok {
		renderOverlay(dst, core.ColorHUD, "Window too small", fmt.Sprintf("Need %dx%d", f.Width+2, f.Height+2+hudHeight))
		return
	}

	dst.DrawBox(core.NewRect(layout.OffsetX-1, layout.OffsetY-1, f.Width*layout.Scale+2, f.Height+2), core.ColorBorder)

	for _, p := range f.Obstacles {
		plot(dst, layout, p, GlyphObstacle, core.ColorObstacle)
	}
	renderCycle(dst, layout, f.Player, GlyphPlayer, core.ColorPlayerTrail, core.ColorPlayerHead)
	renderCycle(dst, layout, f.CPU, GlyphCPU, core.ColorCPUTrail, core.ColorCPUHead)

	if f.GameOver {
		title, color := "CPU wins", core.ColorLoss
		hint := "R restart  Esc menu"
		if f.Winner == WinnerPlayer {
			title, color = "You win!", core.ColorWin
			hint = "N next level  R restart  Esc menu"
		}
		renderOverlay(dst, color, title, f.Reason, hint)
	}
}

func renderHUD(dst *core.Screen, f Frame) {
	hud := fmt.Sprintf(" Light Cycle  Level %d  Score %d  Time %.1fs  %s", f.Level, f.Score, f.Elapsed.Seconds(), f.PlayerName)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

func renderCycle(dst *core.Screen, l Layout, e Entity, head rune, trail, headColor core.Color) {
	for _, p := range e.Trail {
		plot(dst, l, p, GlyphTrail, trail)
	}
	plot(dst, l, e.Position, head, headColor)
}

// plot draws one grid cell. Cells outside the grid are skipped.
func plot(dst *core.Screen, l Layout, p core.Point, r rune, c core.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return
	}
	x := l.OffsetX + p.X*l.Scale
	y := l.OffsetY + p.Y
	for i := 0; i < l.Scale; i++ {
		if i > 0 && r != GlyphTrail && r != GlyphObstacle {
			// Heads use a single glyph followed by trail fill
			dst.SetColored(x+i, y, GlyphTrail, c)
			continue
		}
		dst.SetColored(x+i, y, r, c)
	}
}

// renderOverlay draws a centered box. The first line is drawn in title.
// The box is kept on screen when the text is wider than the window.
func renderOverlay(dst *core.Screen, title core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	x := core.Clamp((dst.Width()-width-4)/2, 0, max(0, dst.Width()-1))
	y := core.Clamp((dst.Height()-len(lines)-2)/2, 0, max(0, dst.Height()-1))
	box := core.NewRect(x, y, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorHUD)
	for i, l := range lines {
		c := core.ColorHUD
		if i == 0 {
			c = title
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
