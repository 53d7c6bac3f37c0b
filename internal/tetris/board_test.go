package tetris

import (
	"testing"

	"github.com/vselivanov/blockfall/internal/core"
)

// fillRow marks a whole row as occupied, minus the listed gap columns.
func fillRow(b *Board, y int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, g := range gaps {
		skip[g] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.cells[y][x] = CellOf(KindI)
		}
	}
}

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard(10, 20)

	if b.Width() != 10 || b.Height() != 20 {
		t.Fatalf("dims = %dx%d, expected 10x20", b.Width(), b.Height())
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != CellEmpty {
				t.Fatalf("new board should be empty, got %d at (%d,%d)", b.At(x, y), x, y)
			}
		}
	}
}

func TestCellRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		cell := CellOf(kind)
		got, ok := cell.Kind()
		if !ok || got != kind {
			t.Errorf("CellOf(%v).Kind() = %v, %v", kind, got, ok)
		}
	}
	if _, ok := CellEmpty.Kind(); ok {
		t.Error("CellEmpty should not report a kind")
	}
}

func TestCollidesWalls(t *testing.T) {
	b := NewBoard(10, 20)

	// Every kind must collide when any occupied cell leaves the side
	// walls or goes below the floor.
	for _, kind := range Kinds() {
		shape := kind.Shape()

		if !b.Collides(shape, core.Point{X: -1, Y: 5}, core.Point{}) {
			t.Errorf("%v at x=-1 should collide", kind)
		}
		if !b.Collides(shape, core.Point{X: b.Width() - shape.Cols() + 1, Y: 5}, core.Point{}) {
			t.Errorf("%v past the right wall should collide", kind)
		}
		if !b.Collides(shape, core.Point{X: 3, Y: b.Height() - shape.Rows() + 1}, core.Point{}) {
			t.Errorf("%v below the floor should collide", kind)
		}
		if b.Collides(shape, core.Point{X: 3, Y: 5}, core.Point{}) {
			t.Errorf("%v in open space should not collide", kind)
		}
	}
}

func TestCollidesAboveBoardIsPassable(t *testing.T) {
	b := NewBoard(10, 20)

	// Cells above the visible board never collide, so pieces can spawn
	// with their top rows off-grid.
	for _, kind := range Kinds() {
		if b.Collides(kind.Shape(), core.Point{X: 3, Y: -kind.Shape().Rows()}, core.Point{}) {
			t.Errorf("%v fully above the board should not collide", kind)
		}
	}
}

func TestCollidesOccupiedCell(t *testing.T) {
	b := NewBoard(10, 20)
	b.cells[10][4] = CellOf(KindZ)

	shape := KindO.Shape() // 2x2 block
	if !b.Collides(shape, core.Point{X: 4, Y: 10}, core.Point{}) {
		t.Error("placement over a locked cell should collide")
	}
	if !b.Collides(shape, core.Point{X: 3, Y: 8}, core.Point{X: 0, Y: 1}) {
		t.Error("offset placement over a locked cell should collide")
	}
	if b.Collides(shape, core.Point{X: 5, Y: 10}, core.Point{}) {
		t.Error("placement beside a locked cell should not collide")
	}
}

func TestMerge(t *testing.T) {
	b := NewBoard(10, 20)

	b.Merge(KindT.Shape(), core.Point{X: 4, Y: 18}, CellOf(KindT))

	// T canonical: row 0 = {1,1,1}, row 1 = {0,1,0}
	want := []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 6, Y: 18}, {X: 5, Y: 19}}
	for _, p := range want {
		if b.At(p.X, p.Y) != CellOf(KindT) {
			t.Errorf("cell (%d,%d) not merged", p.X, p.Y)
		}
	}
	if b.At(4, 19) != CellEmpty || b.At(6, 19) != CellEmpty {
		t.Error("unoccupied shape cells should stay empty")
	}
}

func TestMergeSkipsOutOfBounds(t *testing.T) {
	b := NewBoard(10, 20)

	// Anchored partially above the board: only on-board cells are written.
	b.Merge(KindO.Shape(), core.Point{X: 0, Y: -1}, CellOf(KindO))

	if b.At(0, 0) != CellOf(KindO) || b.At(1, 0) != CellOf(KindO) {
		t.Error("on-board cells should be merged")
	}
	for x := 0; x < b.Width(); x++ {
		if b.At(x, 1) != CellEmpty {
			t.Errorf("row 1 should stay empty, got cell at x=%d", x)
		}
	}
}

func TestFullRows(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillRow(b, 18, 3) // one gap, must not qualify
	fillRow(b, 10)

	rows := b.FullRows()

	if len(rows) != 2 || rows[0] != 10 || rows[1] != 19 {
		t.Errorf("FullRows() = %v, expected [10 19]", rows)
	}
}

func TestClearFullRowsPreservesDimensions(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillRow(b, 17)

	n, rows := b.ClearFullRows()

	if n != 2 {
		t.Errorf("cleared = %d, expected 2", n)
	}
	if len(rows) != 2 {
		t.Errorf("cleared rows = %v, expected two indices", rows)
	}
	if b.Width() != 10 || b.Height() != 20 {
		t.Errorf("dims after clear = %dx%d, expected 10x20", b.Width(), b.Height())
	}
	if len(b.cells) != 20 || len(b.cells[0]) != 10 {
		t.Error("underlying storage dims changed")
	}
}

func TestClearFullRowsNoMatch(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19, 0)
	before := b.String()

	n, rows := b.ClearFullRows()

	if n != 0 || rows != nil {
		t.Errorf("ClearFullRows() = %d, %v, expected 0, nil", n, rows)
	}
	if b.String() != before {
		t.Error("board with no full rows should be unchanged")
	}
}

func TestClearBottomRowScenario(t *testing.T) {
	// Row 19 filled except column 3; a piece fills the gap; one clear.
	b := NewBoard(10, 20)
	fillRow(b, 19, 3)
	b.cells[18][0] = CellOf(KindL) // stack remnant that must shift down

	b.Merge(core.Matrix{{1}}, core.Point{X: 3, Y: 19}, CellOf(KindI))
	n, rows := b.ClearFullRows()

	if n != 1 {
		t.Fatalf("cleared = %d, expected 1", n)
	}
	if len(rows) != 1 || rows[0] != 19 {
		t.Fatalf("cleared rows = %v, expected [19]", rows)
	}
	if b.Height() != 20 {
		t.Errorf("height = %d, expected 20", b.Height())
	}

	// The emptied row is prepended at index 0...
	for x := 0; x < b.Width(); x++ {
		if b.At(x, 0) != CellEmpty {
			t.Errorf("row 0 should be empty after compaction, got cell at x=%d", x)
		}
	}
	// ...and everything above the cleared row shifts down one.
	if b.At(0, 19) != CellOf(KindL) {
		t.Error("row 18 content should land on row 19 after compaction")
	}
}

func TestRemoveRowsIgnoresUnknownIndices(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	before := b.String()

	b.RemoveRows([]int{-1, 20, 99})

	if b.String() != before {
		t.Error("RemoveRows with out-of-range indices should be a no-op")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard(3, 2)
	b.cells[1][2] = CellOf(KindT)

	got := b.String()
	expected := "...\n..T"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)

	c := b.Clone()
	c.cells[19][0] = CellEmpty

	if b.At(0, 19) == CellEmpty {
		t.Error("mutating a clone should not affect the original")
	}
}
