package pitremoval

// Cut and fill cost functions. Both are pure: they take a candidate
// elevation level and precomputed elevations (the outflow chain for cut,
// the depression extent for fill) and return a cumulative volume, with no
// side effects, so they are safe to call repeatedly during the ideal-level
// scan. FillVolume is monotone non-decreasing in level; CutVolume is
// monotone non-increasing (raising the channel floor removes less earth).

// CutVolume returns the earth that must be removed along the outflow chain
// to open a channel at the given level: the sum of (z − level) over every
// chain cell whose elevation z exceeds level.
// Complexity: O(len(chain)).
func CutVolume(chain []float64, level float64) float64 {
	var v float64
	for _, z := range chain {
		if z > level {
			v += z - level
		}
	}

	return v
}

// FillVolume returns the earth needed to raise the depression to the given
// level: the sum of (level − z) over every depression cell whose elevation
// z lies below level. Levels beyond the crest are capped at the crest —
// water above the crest would simply spill, so no fill past it is ever
// charged.
// Complexity: O(len(depression)).
func FillVolume(depression []float64, level, crest float64) float64 {
	if level > crest {
		level = crest
	}
	var v float64
	for _, z := range depression {
		if level > z {
			v += level - z
		}
	}

	return v
}

// levels returns the discretized candidate elevations scanned when choosing
// the ideal fill level: pitElev, pitElev+step, … up to crest, with the
// crest itself appended when it does not fall on a step boundary, so
// filling fully to the crest is always one of the candidates.
// Complexity: O((crest−pitElev)/step).
func levels(pitElev, crest, step float64) []float64 {
	ls := make([]float64, 0, int((crest-pitElev)/step)+2)
	for l := pitElev; l <= crest; l += step {
		ls = append(ls, l)
	}
	if ls[len(ls)-1] < crest {
		ls = append(ls, crest)
	}

	return ls
}

// volumeCurves materializes both cost curves over the discretized levels:
// fills[i] and cuts[i] hold the volumes at ls[i], so the level scan indexes
// two flat arrays instead of chasing elevation-keyed lookups.
// Complexity: O(len(ls) × (len(chain)+len(depression))).
func volumeCurves(ls, chain, depression []float64, crest float64) (fills, cuts []float64) {
	fills = make([]float64, len(ls))
	cuts = make([]float64, len(ls))
	for i, l := range ls {
		fills[i] = FillVolume(depression, l, crest)
		cuts[i] = CutVolume(chain, l)
	}

	return fills, cuts
}

// idealLevel scans the curve arrays in ascending level order and returns
// the index of the first level minimizing |fill − cut|. Ties break toward
// the lowest level, which biases toward less total earth movement.
// Complexity: O(len(fills)).
func idealLevel(fills, cuts []float64) int {
	best, bestDiff := 0, -1.0
	for i := range fills {
		diff := fills[i] - cuts[i]
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}

	return best
}
