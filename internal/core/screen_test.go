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

	s.SetColored(3, 4, 'G', ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != 'G' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4) = %+v, expected green 'G'", cell)
	}

	// Plain Set writes the default color
	s.Set(3, 4, 'X')
	if cell := s.GetCell(3, 4); cell.Color != ColorDefault {
		t.Errorf("Set should reset color to default, got %v", cell.Color)
	}

	// Out of bounds cell is a default space
	if cell := s.GetCell(-1, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipped at the right edge, no panic
	s.DrawText(18, 2, "abc")
	if s.Get(19, 2) != 'b' {
		t.Errorf("clipped text wrong, got %q at (19,2)", s.Get(19, 2))
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColored(0, 0, "hi", ColorCyan)
	if cell := s.GetCell(1, 0); cell.Rune != 'i' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 0) = %+v, expected cyan 'i'", cell)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("DrawBox top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges wrong")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'X')

	s.Resize(20, 15)

	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("Resize to (20, 15) got (%d, %d)", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(5, 5)
	if s.Get(2, 3) != 'X' {
		t.Error("Shrinking should keep content inside the new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
