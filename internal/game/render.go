package game

import (
	"fmt"
	"math"

	"github.com/vovikan/tui-platformer/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Level load failed")
		dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		return
	}

	g.renderHUD(dst)
	offX, offY := g.viewOffset(dst)
	g.renderLevel(dst, offX, offY)
	g.renderPlayer(dst, offX, offY)
	g.renderOverlay(dst)
}

// viewOffset computes the world coordinate drawn at the playfield's top-left
// cell. The camera centers on the eased follow position, clamped so small
// levels stay pinned to their bounds.
func (g *Game) viewOffset(dst *core.Screen) (int, int) {
	viewW := dst.Width()
	viewH := dst.Height() - hudRows

	offX := int(math.Round(g.camX)) - viewW/2
	offY := int(math.Round(g.camY)) - viewH/2

	if g.level.Width <= viewW {
		offX = -(viewW - g.level.Width) / 2
	} else {
		offX = core.Clamp(offX, 0, g.level.Width-viewW)
	}
	if g.level.Height <= viewH {
		offY = -(viewH - g.level.Height) / 2
	} else {
		offY = core.Clamp(offY, 0, g.level.Height-viewH)
	}
	return offX, offY
}

// renderHUD draws lives, level, and score above the playfield.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.level.Name != "" {
		levelText = fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, g.source.Count(), g.level.Name)
	} else {
		levelText = fmt.Sprintf("Level %d/%d", g.levelIndex+1, g.source.Count())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderLevel draws the visible tile window.
func (g *Game) renderLevel(dst *core.Screen, offX, offY int) {
	viewW := dst.Width()
	viewH := dst.Height() - hudRows

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			wx := offX + sx
			wy := offY + sy
			if wx < 0 || wx >= g.level.Width || wy < 0 || wy >= g.level.Height {
				continue
			}
			switch g.level.Tiles[wy][wx] {
			case TileSolid:
				dst.SetColored(sx, sy+hudRows, SolidChar, core.ColorGray)
			case TileSpike:
				dst.SetColored(sx, sy+hudRows, SpikeChar, core.ColorBrightRed)
			case TileExit:
				dst.SetColored(sx, sy+hudRows, ExitChar, core.ColorBrightGreen)
			}
		}
	}
}

// renderPlayer draws the ball at its world cell.
func (g *Game) renderPlayer(dst *core.Screen, offX, offY int) {
	sx := int(math.Floor(g.player.Pos.X)) - offX
	sy := int(math.Floor(g.player.Pos.Y)) - offY + hudRows
	dst.SetColored(sx, sy, PlayerChar, core.ColorBrightYellow)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.gameOver && g.mode == ModeTrial:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to retry", g.score)
		g.drawCenteredBox(dst, "RUN OVER", subtitle)
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

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
