package clips

import "sort"

// selectClips ranks candidates by score and greedily keeps the best
// mutually non-overlapping subset, capped at maxClips. Greedy interval
// scheduling is a heuristic, not optimal; it is kept deliberately —
// swapping in weighted interval scheduling would change output.
// The stable sort breaks score ties by generation order, keeping the
// result deterministic for a fixed input.
func selectClips(cands []candidate, maxClips int) []candidate {
	ranked := make([]candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var selected []candidate
	for _, c := range ranked {
		if len(selected) >= maxClips {
			break
		}
		if !overlapsAny(c, selected) {
			selected = append(selected, c)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].start < selected[j].start
	})
	return selected
}

// overlapsAny reports interval intersection. Exactly touching spans
// (a.end == b.start) do not overlap.
func overlapsAny(c candidate, chosen []candidate) bool {
	for _, s := range chosen {
		if c.start < s.end && c.end > s.start {
			return true
		}
	}
	return false
}
