package match3

import "testing"

func TestClassifyPowerUp(t *testing.T) {
	tests := []struct {
		name     string
		groups   []Group
		wantKind PowerUp
		wantOK   bool
	}{
		{"run of 3", []Group{rowGroup(0, 0, 3)}, PowerNone, false},
		{"run of 4", []Group{rowGroup(0, 0, 4)}, PowerBomb, true},
		{"run of 5", []Group{rowGroup(0, 0, 5)}, PowerBomb, true},
		{"run of 6", []Group{rowGroup(0, 0, 6)}, PowerLine, true},
		{"L of size 5", []Group{rowGroup(1, 0, 3), colGroup(0, 1, 3)}, PowerBomb, true},
		{"L of size 6", []Group{rowGroup(1, 0, 4), colGroup(0, 1, 3)}, PowerLine, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := MergeGroups(tt.groups)
			if len(regions) != 1 {
				t.Fatalf("test regions should merge to 1, got %d", len(regions))
			}

			p, ok := ClassifyPowerUp(regions[0], nil)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && p.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", p.Kind, tt.wantKind)
			}
		})
	}
}

func TestSpawnColumnUsesSwapCellFirstRound(t *testing.T) {
	regions := MergeGroups([]Group{rowGroup(2, 1, 4)})
	swap := &SwapContext{A: RC(2, 3), B: RC(3, 3)}

	p, ok := ClassifyPowerUp(regions[0], swap)
	if !ok {
		t.Fatal("run of 4 should earn a bomb")
	}
	if p.Col != 3 {
		t.Errorf("spawn column should be the swapped cell's column 3, got %d", p.Col)
	}
}

func TestSpawnColumnMiddleIndexWithoutSwap(t *testing.T) {
	regions := MergeGroups([]Group{rowGroup(2, 1, 4)})

	p, ok := ClassifyPowerUp(regions[0], nil)
	if !ok {
		t.Fatal("run of 4 should earn a bomb")
	}
	// Cells are (2,1)..(2,4); middle index 2 of 4 is (2,3).
	if p.Col != 3 {
		t.Errorf("spawn column should come from the middle cell, got %d", p.Col)
	}
}

func TestSpawnColumnSwapCellOutsideRegion(t *testing.T) {
	regions := MergeGroups([]Group{rowGroup(2, 1, 4)})
	swap := &SwapContext{A: RC(5, 0), B: RC(5, 1)}

	p, ok := ClassifyPowerUp(regions[0], swap)
	if !ok {
		t.Fatal("run of 4 should earn a bomb")
	}
	if p.Col != 3 {
		t.Errorf("swap cells outside the region fall back to middle cell, got col %d", p.Col)
	}
}
