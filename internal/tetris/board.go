package tetris

import (
	"strings"

	"github.com/vselivanov/blockfall/internal/core"
)

// Cell is one board position: empty, or the kind that locked there.
type Cell uint8

// CellEmpty marks an unoccupied board cell.
const CellEmpty Cell = 0

// CellOf returns the board cell value marking a locked piece of the kind.
func CellOf(k Kind) Cell {
	return Cell(k) + 1
}

// Kind returns the piece kind locked in this cell.
// The second return is false for an empty cell.
func (c Cell) Kind() (Kind, bool) {
	if c == CellEmpty {
		return 0, false
	}
	return Kind(c - 1), true
}

// Board is the fixed grid holding locked cells. Dimensions never change
// after creation; the board is mutated only by Merge and row clearing,
// and replaced wholesale on game reset.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return CellEmpty
	}
	return b.cells[y][x]
}

// Collides reports whether placing the shape at pos, translated by off,
// is illegal. An occupied shape cell collides when it lands outside the
// side walls, at or below the floor, or on a non-empty board cell.
// Cells above the visible board (y < 0) never collide, so a freshly
// spawned piece whose top rows start off-grid is always passable.
func (b *Board) Collides(shape core.Matrix, pos, off core.Point) bool {
	for r, row := range shape {
		for c, occ := range row {
			if occ == 0 {
				continue
			}
			x := pos.X + c + off.X
			y := pos.Y + r + off.Y
			if x < 0 || x >= b.width || y >= b.height {
				return true
			}
			if y >= 0 && b.cells[y][x] != CellEmpty {
				return true
			}
		}
	}
	return false
}

// Merge writes the shape's occupied cells into the board at pos.
// Cells outside the board are silently skipped; collision checks are
// expected to prevent that under normal play.
func (b *Board) Merge(shape core.Matrix, pos core.Point, cell Cell) {
	for r, row := range shape {
		for c, occ := range row {
			if occ == 0 {
				continue
			}
			x := pos.X + c
			y := pos.Y + r
			if x < 0 || x >= b.width || y < 0 || y >= b.height {
				continue
			}
			b.cells[y][x] = cell
		}
	}
}

// FullRows returns the indices of fully occupied rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y, row := range b.cells {
		full := true
		for _, c := range row {
			if c == CellEmpty {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRows deletes the given rows and prepends as many empty rows,
// keeping the board height invariant. Unknown indices are ignored.
func (b *Board) RemoveRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	drop := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < b.height {
			drop[y] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	kept := make([][]Cell, 0, b.height)
	for y, row := range b.cells {
		if !drop[y] {
			kept = append(kept, row)
		}
	}
	cells := make([][]Cell, 0, b.height)
	for i := 0; i < b.height-len(kept); i++ {
		cells = append(cells, make([]Cell, b.width))
	}
	b.cells = append(cells, kept...)
}

// ClearFullRows removes every fully occupied row and compacts the board,
// returning how many rows were cleared and their former indices.
// A board with no full rows is left untouched.
func (b *Board) ClearFullRows() (int, []int) {
	rows := b.FullRows()
	b.RemoveRows(rows)
	return len(rows), rows
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(out.cells[y], b.cells[y])
	}
	return out
}

// String renders the board as text, one row per line: '.' for empty
// cells and the kind letter for locked ones. Used by snapshots and tests.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if k, ok := c.Kind(); ok {
				sb.WriteString(k.String())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
