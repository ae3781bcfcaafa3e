package allergen

import "math"

// bestWindowIdentity slides a win-width window across every valid offset
// of query and aligns each window against the whole target, returning the
// highest identity seen and the offset it occurred at. The first offset
// reaching the maximum wins ties and a perfect window short-circuits the
// scan. A window wider than the query has no valid offsets: (0, -1).
func bestWindowIdentity(query, target string, win int) (best float64, bestStart int) {
	bestStart = -1
	if win <= 0 || win > len(query) {
		return 0, -1
	}

	for i := 0; i+win <= len(query); i++ {
		// a window only matters if it beats the running best, so bound
		// the alignment at the distance that would and skip anything past it
		d := infixDistance(query[i:i+win], target, improveBound(win, best))
		if d < 0 {
			continue
		}

		identity := 1.0 - float64(d)/float64(win)
		if identity > best {
			best = identity
			bestStart = i
		}
		if best == 1.0 {
			return best, bestStart
		}
	}

	return best, bestStart
}

// improveBound is the largest edit distance that still improves on the
// running best identity for a win-width window.
func improveBound(win int, best float64) int {
	return int(math.Ceil(float64(win)*(1.0-best))) - 1
}
