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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green 'X'", cell)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("out-of-bounds GetCell should return a default cell")
	}
}

func TestScreenResizeDiscardsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X')

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(3, 3) != ' ' {
		t.Error("resize should clear the buffer")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "hello", ColorYellow)

	// Clipped at the right edge
	if s.Get(7, 1) != 'h' || s.Get(8, 1) != 'e' || s.Get(9, 1) != 'l' {
		t.Errorf("row = %q, expected clipped 'hel'", rowString(s, 1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("row = %q, text should be centered", rowString(s, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X') // Should be cleared by the box interior
	s.DrawBox(2, 2, 5, 4, ColorGray)

	if s.Get(2, 2) != '┌' || s.Get(6, 2) != '┐' || s.Get(2, 5) != '└' || s.Get(6, 5) != '┘' {
		t.Error("box corners missing")
	}
	if s.Get(4, 2) != '─' || s.Get(2, 4) != '│' {
		t.Error("box edges missing")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("box interior should be cleared")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	if got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected one newline, got %d", strings.Count(got, "\n"))
	}
}

func rowString(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
