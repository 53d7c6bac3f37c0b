package tetris

import (
	"fmt"

	"github.com/vselivanov/blockfall/internal/core"
)

// Minimum screen size for the board, borders, HUD, and side panel.
const (
	minScreenW = 48
	minScreenH = 24
)

const hudHeight = 2

// Render draws the game into the screen buffer: HUD, board with the
// active piece and its landing shadow, next-piece preview, and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boxW := BoardWidth*2 + 2
	boxX := (dst.Width()-boxW)/2 - 7
	boxY := hudHeight
	dst.DrawBox(boxX, boxY, boxW, BoardHeight+2)

	g.renderBoard(dst, boxX+1, boxY+1)
	g.renderActive(dst, boxX+1, boxY+1)
	g.renderSidePanel(dst, boxX+boxW+3, boxY)

	switch g.phase {
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — press R to restart", g.score))
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blockfall — Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws locked cells, flashing the rows mid-clear.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	clearing := make(map[int]bool, len(g.clearingRows))
	for _, y := range g.clearingRows {
		clearing[y] = true
	}

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			cell := g.board.At(x, y)
			k, occupied := cell.Kind()

			switch {
			case clearing[y]:
				// Flash the matched rows during the clearing delay.
				dst.SetColored(ox+x*2, oy+y, '▓', core.ColorBrightWhite)
				dst.SetColored(ox+x*2+1, oy+y, '▓', core.ColorBrightWhite)
			case occupied:
				dst.SetColored(ox+x*2, oy+y, '█', k.Color())
				dst.SetColored(ox+x*2+1, oy+y, '█', k.Color())
			default:
				dst.SetColored(ox+x*2, oy+y, '·', core.ColorGray)
			}
		}
	}
}

// renderActive draws the falling piece and its hard-drop shadow.
// Shape rows above the visible board (y < 0) are clipped.
func (g *Game) renderActive(dst *core.Screen, ox, oy int) {
	if !g.hasActive {
		return
	}

	ghostY := g.activePos.Y + g.DropDistance()
	for r, row := range g.activeShape {
		for c, occ := range row {
			if occ == 0 {
				continue
			}
			x := g.activePos.X + c

			if gy := ghostY + r; gy >= 0 && gy > g.activePos.Y+r {
				dst.SetColored(ox+x*2, oy+gy, '░', core.ColorGray)
				dst.SetColored(ox+x*2+1, oy+gy, '░', core.ColorGray)
			}

			y := g.activePos.Y + r
			if y < 0 {
				continue
			}
			dst.SetColored(ox+x*2, oy+y, '█', g.activeKind.Color())
			dst.SetColored(ox+x*2+1, oy+y, '█', g.activeKind.Color())
		}
	}
}

// renderSidePanel draws the next-piece preview and key hints.
func (g *Game) renderSidePanel(dst *core.Screen, px, py int) {
	dst.DrawText(px, py, "Next")
	dst.DrawBox(px, py+1, 10, 4)
	if g.hasNext {
		shape := g.nextKind.Shape()
		for r, row := range shape {
			for c, occ := range row {
				if occ == 0 {
					continue
				}
				dst.SetColored(px+1+c*2, py+2+r, '█', g.nextKind.Color())
				dst.SetColored(px+2+c*2, py+2+r, '█', g.nextKind.Color())
			}
		}
	}

	hints := []string{
		"←/→ move",
		"↑   rotate",
		"↓   soft drop",
		"spc hard drop",
		"p   pause",
		"q   quit",
	}
	for i, h := range hints {
		dst.DrawTextColored(px, py+6+i, h, core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
