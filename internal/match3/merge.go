package match3

// Region is the union of overlapping match groups. An L- or T-shaped match
// spans both a horizontal and a vertical run and merges into one region.
type Region struct {
	Cells  []Coord // insertion order, first group first; duplicates removed
	Size   int     // always len(Cells)
	MaxRun int     // longest single run contained in the region
	HasRow bool    // region contains a horizontal run
	HasCol bool    // region contains a vertical run
}

// LShape reports whether the region spans both orientations.
func (r Region) LShape() bool {
	return r.HasRow && r.HasCol
}

// Contains reports whether the coordinate belongs to the region.
func (r Region) Contains(c Coord) bool {
	for _, rc := range r.Cells {
		if rc == c {
			return true
		}
	}
	return false
}

// MergeGroups unions overlapping groups into connected regions. It starts
// with one region per group and repeatedly folds the first overlapping pair
// it finds, restarting the scan after each union. The group count only ever
// shrinks, so the loop terminates.
func MergeGroups(groups []Group) []Region {
	regions := make([]Region, 0, len(groups))
	for _, g := range groups {
		regions = append(regions, regionFromGroup(g))
	}

	for {
		merged := false
		for i := 0; i < len(regions) && !merged; i++ {
			for j := i + 1; j < len(regions); j++ {
				if !overlaps(regions[i], regions[j]) {
					continue
				}
				regions[i] = union(regions[i], regions[j])
				regions = append(regions[:j], regions[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			return regions
		}
	}
}

func regionFromGroup(g Group) Region {
	cells := make([]Coord, len(g.Cells))
	copy(cells, g.Cells)
	return Region{
		Cells:  cells,
		Size:   len(cells),
		MaxRun: g.Run,
		HasRow: g.Horizontal,
		HasCol: !g.Horizontal,
	}
}

func overlaps(a, b Region) bool {
	for _, c := range b.Cells {
		if a.Contains(c) {
			return true
		}
	}
	return false
}

func union(a, b Region) Region {
	for _, c := range b.Cells {
		if !a.Contains(c) {
			a.Cells = append(a.Cells, c)
		}
	}
	a.Size = len(a.Cells)
	if b.MaxRun > a.MaxRun {
		a.MaxRun = b.MaxRun
	}
	a.HasRow = a.HasRow || b.HasRow
	a.HasCol = a.HasCol || b.HasCol
	return a
}
