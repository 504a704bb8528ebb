package maze

import (
	"strings"

	"github.com/vovakirdan/quantum-maze/internal/core"
)

// View is a read-only snapshot of a maze handed to the presentation layer.
type View struct {
	Size     int
	Cells    [][]Cell
	Player   core.Point
	Exit     core.Point
	Steps    int
	MaxSteps int
	Status   Status
}

// Glyph returns what should be drawn at (row, col), with the player on top.
func (v View) Glyph(row, col int) rune {
	if v.Player.Row == row && v.Player.Col == col {
		return PlayerRune
	}
	if row < 0 || row >= v.Size || col < 0 || col >= v.Size {
		return ' '
	}
	return v.Cells[row][col].Rune()
}

// Lines renders the grid one row per line, each glyph followed by a space.
func (v View) Lines() []string {
	lines := make([]string, v.Size)
	var b strings.Builder
	for r := range v.Size {
		b.Reset()
		for c := range v.Size {
			b.WriteRune(v.Glyph(r, c))
			b.WriteByte(' ')
		}
		lines[r] = b.String()
	}
	return lines
}
