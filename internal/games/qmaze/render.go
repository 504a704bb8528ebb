package qmaze

import (
	"fmt"

	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/maze"
)

const hudHeight = 2

// MinScreenSize returns the smallest screen that fits a maze of the given size.
func MinScreenSize(size int) (w, h int) {
	boxW, boxH := gridBox(size)
	return max(boxW, 40), hudHeight + boxH + 4
}

// gridBox returns the bordered grid dimensions. Each cell is drawn as a
// glyph followed by a space, with one column of padding inside the border.
func gridBox(size int) (w, h int) {
	return 2*size + 3, size + 2
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.maze == nil {
		g.renderOverlay(dst, "Maze unavailable", errorText(g.err))
		return
	}

	minW, minH := MinScreenSize(g.maze.Size())
	if dst.Width() < minW || dst.Height() < minH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	box := g.renderGrid(dst)
	g.renderChoice(dst, box.Bottom())
	g.renderHelp(dst)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Measurement failed", errorText(g.err))
	case g.maze.Status() == maze.StatusWon:
		g.renderOverlay(dst, "You escaped the maze!",
			fmt.Sprintf("Finished maze in %d steps. R for a new maze", g.maze.Steps()))
	case g.maze.Status() == maze.StatusExhausted:
		g.renderOverlay(dst, "Out of steps",
			fmt.Sprintf("The maze wins after %d steps. R to retry", g.maze.Steps()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	steps, maxSteps := 0, 0
	if g.maze != nil {
		steps, maxSteps = g.maze.Steps(), g.maze.MaxSteps()
	}
	hud := fmt.Sprintf(" %s  Steps: %d/%d  Qubits: %d (%s)",
		g.variant.Title, steps, maxSteps, g.cfg.Quantum.Qubits, g.prep.Name())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the bordered maze centered below the HUD and returns its box.
func (g *Game) renderGrid(dst *core.Screen) core.Rect {
	v := g.maze.View()
	boxW, boxH := gridBox(v.Size)
	box := core.NewRect((dst.Width()-boxW)/2, hudHeight, boxW, boxH)
	dst.DrawBox(box)

	for r := range v.Size {
		for c := range v.Size {
			x := box.X + 2 + 2*c
			y := box.Y + 1 + r
			dst.SetColored(x, y, v.Glyph(r, c), glyphColor(v, r, c))
		}
	}
	return box
}

func glyphColor(v maze.View, row, col int) core.Color {
	if v.Player.Row == row && v.Player.Col == col {
		return core.ColorBrightYellow
	}
	switch v.Cells[row][col] {
	case maze.CellWall:
		return core.ColorGray
	case maze.CellExit:
		return core.ColorBrightGreen
	case maze.CellPath:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// renderChoice draws the latest measurement under the grid.
func (g *Game) renderChoice(dst *core.Screen, y int) {
	text := "Qubits choose: -"
	color := core.ColorDefault
	if g.hasLast {
		text = fmt.Sprintf("Qubits choose: %s (%s, %s)", g.last.Direction, g.last.Bits, g.lastResult)
		color = core.ColorMagenta
	}
	dst.DrawTextCenteredColored(y, text, color)
}

// renderHelp draws the key hints on the last row.
func (g *Game) renderHelp(dst *core.Screen) {
	dst.DrawTextCenteredColored(dst.Height()-1, "Space: measure  A: auto  P: pause  R: restart  Q: quit", core.ColorGray)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(maxLen+4, dst.Width())
	boxH := 5
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
