package match3

import "testing"

func TestCollapsePreservesSurvivorOrder(t *testing.T) {
	b := mustBoard(t, []string{
		"R.B",
		".G.",
		"B.R",
		".RG",
	})

	nb, trace := CollapseAndFill(b, nil, &stubRand{vals: []int{0}})

	// Column 0: survivors R(0) and B(2) land in rows 2 and 3, same order.
	if got := nb.At(RC(2, 0)); !got.Filled || got.Color != ColorRed {
		t.Errorf("expected red at (2,0), got %+v", got)
	}
	if got := nb.At(RC(3, 0)); !got.Filled || got.Color != ColorBlue {
		t.Errorf("expected blue at (3,0), got %+v", got)
	}
	if trace[RC(2, 0)] != 0 || trace[RC(3, 0)] != 2 {
		t.Errorf("survivor trace wrong: %v", trace)
	}

	// Every cell of the new board is filled.
	for r := 0; r < nb.Rows; r++ {
		for c := 0; c < nb.Cols; c++ {
			if !nb.At(RC(r, c)).Filled {
				t.Fatalf("cell (%d,%d) left empty after refill", r, c)
			}
		}
	}

	// Input board untouched.
	if b.At(RC(1, 0)).Filled {
		t.Error("CollapseAndFill mutated its input")
	}
}

func TestCollapseTraceForSpawnedCells(t *testing.T) {
	b := mustBoard(t, []string{
		".GB",
		".BG",
		"RGB",
	})

	_, trace := CollapseAndFill(b, nil, &stubRand{vals: []int{0}})

	// Column 0 has one survivor; two cells spawn above the board.
	if trace[RC(0, 0)] != -2 || trace[RC(1, 0)] != -1 {
		t.Errorf("spawned cells should trace to negative rows, got %v", trace)
	}
	if trace[RC(2, 0)] != 2 {
		t.Errorf("unmoved survivor should trace to its own row, got %d", trace[RC(2, 0)])
	}
}

func TestPendingPowerUpsAssignedTopDown(t *testing.T) {
	b := mustBoard(t, []string{
		".GB",
		".BG",
		".GB",
	})

	pending := []PendingPowerUp{
		{Kind: PowerBomb, Col: 0},
		{Kind: PowerLine, Col: 0},
	}
	nb, _ := CollapseAndFill(b, pending, &stubRand{vals: []int{0}})

	if got := nb.At(RC(0, 0)).Power; got != PowerBomb {
		t.Errorf("first pending power-up should land in row 0, got %v", got)
	}
	if got := nb.At(RC(1, 0)).Power; got != PowerLine {
		t.Errorf("second pending power-up should land in row 1, got %v", got)
	}
	if got := nb.At(RC(2, 0)).Power; got != PowerNone {
		t.Errorf("remaining new cells stay plain, got %v", got)
	}
}

func TestRefillAvoidsPairAbove(t *testing.T) {
	// Three new cells fill column 0 top-down. The stub places red in rows 0
	// and 1; the cell in row 2 then sees a red pair directly above and must
	// not complete the triple.
	b := mustBoard(t, []string{
		".GB",
		".BG",
		".GB",
		"BRG",
	})

	nb, _ := CollapseAndFill(b, nil, &stubRand{vals: []int{0, 0, 0}})

	if nb.At(RC(0, 0)).Color != ColorRed || nb.At(RC(1, 0)).Color != ColorRed {
		t.Fatalf("stub should stack two reds, got %v/%v",
			nb.At(RC(0, 0)).Color, nb.At(RC(1, 0)).Color)
	}
	if got := nb.At(RC(2, 0)).Color; got == ColorRed {
		t.Error("refill completed a vertical triple under a pair")
	}
}

func TestRefillAvoidsSandwich(t *testing.T) {
	// Column 0 gets two new cells. Filling top-down, the stub places red at
	// (0,0); the cell at (1,0) is then sandwiched between red above and red
	// below, so red must be excluded there.
	b := mustBoard(t, []string{
		".GB",
		".BG",
		"RGB",
	})

	nb, _ := CollapseAndFill(b, nil, &stubRand{vals: []int{0, 0}})

	if got := nb.At(RC(0, 0)).Color; got != ColorRed {
		t.Fatalf("stub should place red at (0,0), got %v", got)
	}
	if got := nb.At(RC(1, 0)).Color; got == ColorRed {
		t.Error("refill picked the sandwiched color")
	}
}
