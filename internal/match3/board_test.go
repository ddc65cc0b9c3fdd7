package match3

import (
	"errors"
	"testing"
)

func TestNewBoardInvariants(t *testing.T) {
	b, err := New(8, 6, 3, NewRand(42))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.At(RC(r, c))
			if !cell.Filled {
				t.Fatalf("cell (%d,%d) is empty after init", r, c)
			}
			if int(cell.Color) >= b.Colors {
				t.Fatalf("cell (%d,%d) holds color %d outside palette %d", r, c, cell.Color, b.Colors)
			}
			if cell.Power != PowerNone {
				t.Fatalf("cell (%d,%d) holds a power-up after init", r, c)
			}
		}
	}

	if n := len(FindMatches(b)); n != 0 {
		t.Errorf("fresh board has %d matched cells:\n%s", n, b)
	}
	if !HasValidMove(b) {
		t.Errorf("fresh board has no valid move:\n%s", b)
	}
}

func TestNewBoardManySeeds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b, err := New(8, 6, 3, NewRand(seed))
		if err != nil {
			t.Fatalf("seed %d: New() failed: %v", seed, err)
		}
		if len(FindMatches(b)) != 0 {
			t.Errorf("seed %d: fresh board has matches:\n%s", seed, b)
		}
		if !HasValidMove(b) {
			t.Errorf("seed %d: fresh board has no valid move:\n%s", seed, b)
		}
	}
}

func TestNewBoardConstructionErrors(t *testing.T) {
	tests := []struct {
		rows, cols, colors int
	}{
		{2, 6, 3},
		{8, 2, 3},
		{8, 6, 2},
		{8, 6, MaxColors + 1},
		{MaxRows + 1, 6, 3},
		{8, MaxCols + 1, 3},
	}

	for _, tt := range tests {
		_, err := New(tt.rows, tt.cols, tt.colors, NewRand(1))
		if err == nil {
			t.Errorf("New(%d, %d, %d) should fail", tt.rows, tt.cols, tt.colors)
			continue
		}
		var cerr *ConstructionError
		if !errors.As(err, &cerr) {
			t.Errorf("New(%d, %d, %d) returned %T, want *ConstructionError", tt.rows, tt.cols, tt.colors, err)
		}
	}
}

func TestNewBoardDeterminism(t *testing.T) {
	b1, err := New(8, 6, 3, NewRand(99))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	b2, err := New(8, 6, 3, NewRand(99))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if !b1.Equal(b2) {
		t.Errorf("same seed produced different boards:\n%s\n--\n%s", b1, b2)
	}
}

func TestBoardSwapAndClone(t *testing.T) {
	b := mustBoard(t, []string{
		"RGB",
		"GBR",
		"BRG",
	})

	clone := b.Clone()
	b.Swap(RC(0, 0), RC(0, 1))

	if b.At(RC(0, 0)).Color != ColorGreen || b.At(RC(0, 1)).Color != ColorRed {
		t.Error("Swap did not exchange the cells")
	}
	if clone.At(RC(0, 0)).Color != ColorRed {
		t.Error("Clone shares storage with its source")
	}
	if b.Equal(clone) {
		t.Error("Equal missed a differing cell")
	}
}
