package allergen

// infixDistance returns the minimum edit distance between pattern and any
// substring of text (semi-global alignment: the pattern pays for every
// insertion, deletion and substitution while the text's flanks align for
// free). A maxDist >= 0 bounds the search: when no substring of text is
// within maxDist edits the scan gives up and returns -1. maxDist < 0
// disables the bound.
func infixDistance(pattern, text string, maxDist int) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}
	if n == 0 {
		if maxDist >= 0 && m > maxDist {
			return -1
		}
		return m
	}

	// One row per pattern residue; the free text prefix keeps row zero at 0.
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for i := 1; i <= m; i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= n; j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost // substitution or match
			if del := prev[j] + 1; del < d {
				d = del // residue of pattern unmatched
			}
			if ins := curr[j-1] + 1; ins < d {
				d = ins // residue of text consumed inside the match
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if maxDist >= 0 && rowMin > maxDist {
			return -1
		}
		prev, curr = curr, prev
	}

	// The free text suffix means the distance is the best cell of the
	// final row, not the corner.
	best := prev[0]
	for j := 1; j <= n; j++ {
		if prev[j] < best {
			best = prev[j]
		}
	}
	if maxDist >= 0 && best > maxDist {
		return -1
	}
	return best
}
