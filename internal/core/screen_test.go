package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 3, '#', ColorCyan)

	cell := s.GetCell(3, 3)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorCyan {
		t.Errorf("GetCell color = %d, expected ColorCyan", cell.Color)
	}

	// Plain Set leaves the default color
	s.Set(4, 4, '#')
	if s.GetCell(4, 4).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Out of bounds GetCell returns a default space
	if s.GetCell(-1, -1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Out of bounds GetCell should return a default space cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorRed)

	s.Clear()

	if s.GetCell(2, 2) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Clear should reset cells to default spaces")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize() dims = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'A' {
		t.Error("Resize should preserve content within the new bounds")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place characters correctly")
	}

	// Clipping: text extending past the edge should not panic
	s.DrawText(8, 0, "longtext")
	if s.Get(9, 0) != 'o' {
		t.Errorf("DrawText should clip at the edge, got %q at (9,0)", s.Get(9, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextCentered(1, "abcd")

	// (10-4)/2 = 3
	if s.Get(3, 1) != 'a' || s.Get(6, 1) != 'd' {
		t.Error("DrawTextCentered did not center the text")
	}
	if s.Get(2, 1) != ' ' || s.Get(7, 1) != ' ' {
		t.Error("DrawTextCentered wrote outside the text span")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain height-1 newlines")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(1, 1, 4, 3)

	if s.Get(1, 1) != '┌' || s.Get(4, 1) != '┐' {
		t.Error("DrawBox top corners incorrect")
	}
	if s.Get(1, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("DrawBox bottom corners incorrect")
	}
	if s.Get(2, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges incorrect")
	}
}
