package match3

import "testing"

func TestMergeGroupsLShape(t *testing.T) {
	// Horizontal run through (1,0..2) and vertical run through (1..3,0)
	// share the corner (1,0).
	groups := []Group{
		rowGroup(1, 0, 3),
		colGroup(0, 1, 3),
	}

	regions := MergeGroups(groups)
	if len(regions) != 1 {
		t.Fatalf("overlapping groups should merge into 1 region, got %d", len(regions))
	}

	r := regions[0]
	if !r.LShape() {
		t.Error("region spanning both orientations should report LShape")
	}
	if r.Size != 5 {
		t.Errorf("corner cell counted once: expected size 5, got %d", r.Size)
	}
	if r.MaxRun != 3 {
		t.Errorf("expected max run 3, got %d", r.MaxRun)
	}
}

func TestMergeGroupsDisjoint(t *testing.T) {
	groups := []Group{
		rowGroup(0, 0, 3),
		rowGroup(4, 2, 4),
	}

	regions := MergeGroups(groups)
	if len(regions) != 2 {
		t.Fatalf("disjoint groups must stay separate, got %d regions", len(regions))
	}
	for _, r := range regions {
		if r.LShape() {
			t.Error("single-orientation region must not report LShape")
		}
	}
}

func TestMergeGroupsTransitive(t *testing.T) {
	// Three groups where A overlaps B and B overlaps C; all three must end
	// up in one region even though A and C never touch.
	groups := []Group{
		rowGroup(0, 0, 3),  // (0,0)-(0,2)
		colGroup(2, 0, 3),  // (0,2)-(2,2)
		rowGroup(2, 2, 3),  // (2,2)-(2,4)
	}

	regions := MergeGroups(groups)
	if len(regions) != 1 {
		t.Fatalf("transitively overlapping groups should merge, got %d regions", len(regions))
	}
	if regions[0].Size != 7 {
		t.Errorf("expected 7 distinct cells, got %d", regions[0].Size)
	}
	if regions[0].MaxRun != 3 {
		t.Errorf("expected max run 3, got %d", regions[0].MaxRun)
	}
}

func TestMergeGroupsMaxRunKept(t *testing.T) {
	groups := []Group{
		rowGroup(0, 0, 5),
		colGroup(0, 0, 3),
	}

	regions := MergeGroups(groups)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	if regions[0].MaxRun != 5 {
		t.Errorf("union must keep the longest run: expected 5, got %d", regions[0].MaxRun)
	}
}
