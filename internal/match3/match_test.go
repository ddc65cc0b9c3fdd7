package match3

import "testing"

func TestFindMatchGroupsRows(t *testing.T) {
	b := mustBoard(t, []string{
		"RRRGB",
		"GBGBR",
		"BGBRG",
	})

	groups := FindMatchGroups(b)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %v", len(groups), groups)
	}

	g := groups[0]
	if !g.Horizontal {
		t.Error("expected a horizontal group")
	}
	if g.Run != 3 {
		t.Errorf("expected run length 3, got %d", g.Run)
	}
	for _, want := range []Coord{RC(0, 0), RC(0, 1), RC(0, 2)} {
		if !coordsContain(g.Cells, want) {
			t.Errorf("group missing cell %v", want)
		}
	}
}

func TestFindMatchGroupsColumns(t *testing.T) {
	b := mustBoard(t, []string{
		"RGB",
		"RBG",
		"RGB",
		"GBR",
	})

	groups := FindMatchGroups(b)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %v", len(groups), groups)
	}
	if groups[0].Horizontal {
		t.Error("expected a vertical group")
	}
	if groups[0].Run != 3 {
		t.Errorf("expected run length 3, got %d", groups[0].Run)
	}
}

func TestFindMatchGroupsLongRun(t *testing.T) {
	b := mustBoard(t, []string{
		"GGGGG",
		"RBRBR",
		"BRBRB",
	})

	groups := FindMatchGroups(b)
	if len(groups) != 1 {
		t.Fatalf("a run of 5 should be a single group, got %d", len(groups))
	}
	if groups[0].Run != 5 {
		t.Errorf("expected run length 5, got %d", groups[0].Run)
	}
}

func TestFindMatchesEmptyNeverMatches(t *testing.T) {
	b := mustBoard(t, []string{
		"R.R",
		"...",
		"R.R",
	})

	if matched := FindMatches(b); len(matched) != 0 {
		t.Errorf("empty cells must not match, got %v", matched)
	}
}

func TestFindMatchesNoMatch(t *testing.T) {
	b := mustBoard(t, []string{
		"RGB",
		"GBR",
		"BRG",
	})

	if matched := FindMatches(b); len(matched) != 0 {
		t.Errorf("expected no matches, got %v", matched)
	}
}

func TestFindMatchGroupsCross(t *testing.T) {
	// Row and column runs through (1,1) form two separate groups;
	// merging them is MergeGroups' job, not the detector's.
	b := mustBoard(t, []string{
		"BRG",
		"RRR",
		"BRG",
	})

	groups := FindMatchGroups(b)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups (one per orientation), got %d", len(groups))
	}
}
