// Package maze implements the grid maze the qubits walk through: wall
// layout, player and exit positions, the step budget and the
// IN_PROGRESS -> WON | EXHAUSTED state machine.
package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/quantum-maze/internal/core"
)

// ErrInvalidConfig is returned when a maze cannot be built from its parameters.
var ErrInvalidConfig = errors.New("maze: invalid configuration")

// Cell is the content of one grid position.
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellExit
	CellPath // Visited by the player
)

// Rune returns the console glyph for the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellWall:
		return '■'
	case CellExit:
		return 'E'
	case CellPath:
		return '.'
	default:
		return ' '
	}
}

// PlayerRune is the glyph drawn at the player's position.
const PlayerRune = 'P'

// Status is the maze state machine position.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusExhausted
)

// String returns the status as a snake_case identifier.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are processed.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusExhausted
}

// MoveResult describes what ApplyMove did with a request.
type MoveResult int

const (
	MoveOK            MoveResult = iota // Player moved, step counted
	MoveBlockedByEdge                   // Off-grid request, nothing changed
	MoveBlockedByWall                   // Bumped a wall, step counted, player stays
	MoveIgnored                         // Maze already finished
)

// String returns a short description of the result.
func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "moved"
	case MoveBlockedByEdge:
		return "edge"
	case MoveBlockedByWall:
		return "wall"
	case MoveIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Rand is the random source used for wall placement.
type Rand interface {
	Float64() float64
}

// Maze is a square grid with the player starting top-left and the exit
// fixed bottom-right.
type Maze struct {
	size     int
	grid     [][]Cell
	player   core.Point
	exit     core.Point
	steps    int
	maxSteps int
	status   Status
}

// New builds a size x size maze. Every cell other than the start and the
// exit independently becomes a wall with probability wallDensity.
func New(size int, wallDensity float64, rng Rand) (*Maze, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidConfig, size)
	}
	if math.IsNaN(wallDensity) || wallDensity < 0 || wallDensity > 1 {
		return nil, fmt.Errorf("%w: wall density must be in [0, 1], got %v", ErrInvalidConfig, wallDensity)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	m := newEmpty(size)
	for r := range size {
		for c := range size {
			p := core.Point{Row: r, Col: c}
			if p == m.player || p == m.exit {
				continue
			}
			if rng.Float64() < wallDensity {
				m.grid[r][c] = CellWall
			}
		}
	}
	m.evaluate()
	return m, nil
}

// FromLayout builds a maze from text rows: '#' (or '■') is a wall and
// '.' or ' ' is open floor. An 'E' may mark the bottom-right exit.
func FromLayout(rows []string) (*Maze, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidConfig)
	}

	m := newEmpty(size)
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("%w: layout row %d has %d cells, want %d", ErrInvalidConfig, r, len(runes), size)
		}
		for c, ch := range runes {
			p := core.Point{Row: r, Col: c}
			switch ch {
			case '#', '■':
				if p == m.player || p == m.exit {
					return nil, fmt.Errorf("%w: wall at protected cell (%d,%d)", ErrInvalidConfig, r, c)
				}
				m.grid[r][c] = CellWall
			case 'E':
				if p != m.exit {
					return nil, fmt.Errorf("%w: exit must be at (%d,%d), found at (%d,%d)",
						ErrInvalidConfig, m.exit.Row, m.exit.Col, r, c)
				}
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: unknown layout cell %q at (%d,%d)", ErrInvalidConfig, ch, r, c)
			}
		}
	}
	m.evaluate()
	return m, nil
}

func newEmpty(size int) *Maze {
	grid := make([][]Cell, size)
	for r := range grid {
		grid[r] = make([]Cell, size)
	}
	m := &Maze{
		size:     size,
		grid:     grid,
		player:   core.Point{Row: 0, Col: 0},
		exit:     core.Point{Row: size - 1, Col: size - 1},
		maxSteps: 2 * size * size,
	}
	m.grid[m.exit.Row][m.exit.Col] = CellExit
	return m
}

// ApplyMove shifts the player one cell in the given direction if the
// target is inside the grid and not a wall.
//
// Step counting: an off-grid request is a no-op and costs nothing. A wall
// bump costs one step but leaves the grid untouched. A real move costs one
// step and marks the vacated cell as path.
func (m *Maze) ApplyMove(d Direction) MoveResult {
	if m.status.Terminal() {
		return MoveIgnored
	}

	dRow, dCol := d.Delta()
	next := m.player.Add(dRow, dCol)
	if next == m.player || !next.InSquare(m.size) {
		return MoveBlockedByEdge
	}

	if m.grid[next.Row][next.Col] == CellWall {
		m.steps++
		m.evaluate()
		return MoveBlockedByWall
	}

	if m.grid[m.player.Row][m.player.Col] == CellEmpty {
		m.grid[m.player.Row][m.player.Col] = CellPath
	}
	m.player = next
	m.steps++
	m.evaluate()
	return MoveOK
}

// evaluate applies the end conditions; reaching the exit wins even on the
// last allowed step.
func (m *Maze) evaluate() {
	switch {
	case m.player == m.exit:
		m.status = StatusWon
	case m.steps >= m.maxSteps:
		m.status = StatusExhausted
	}
}

// Size returns the grid edge length.
func (m *Maze) Size() int { return m.size }

// Player returns the current player position.
func (m *Maze) Player() core.Point { return m.player }

// Exit returns the exit position.
func (m *Maze) Exit() core.Point { return m.exit }

// Steps returns the number of counted moves so far.
func (m *Maze) Steps() int { return m.steps }

// MaxSteps returns the step budget.
func (m *Maze) MaxSteps() int { return m.maxSteps }

// Status returns the current state.
func (m *Maze) Status() Status { return m.status }

// CellAt returns the cell at p, or CellWall when p is off the grid.
func (m *Maze) CellAt(p core.Point) Cell {
	if !p.InSquare(m.size) {
		return CellWall
	}
	return m.grid[p.Row][p.Col]
}

// WallCount returns the number of wall cells.
func (m *Maze) WallCount() int {
	n := 0
	for _, row := range m.grid {
		for _, c := range row {
			if c == CellWall {
				n++
			}
		}
	}
	return n
}

// View returns a snapshot for rendering. It shares no memory with the maze.
func (m *Maze) View() View {
	cells := make([][]Cell, m.size)
	for r, row := range m.grid {
		cells[r] = append([]Cell(nil), row...)
	}
	return View{
		Size:     m.size,
		Cells:    cells,
		Player:   m.player,
		Exit:     m.exit,
		Steps:    m.steps,
		MaxSteps: m.maxSteps,
		Status:   m.status,
	}
}
