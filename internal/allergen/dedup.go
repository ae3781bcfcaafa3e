package allergen

// DedupByOrganism collapses multiple hits against the same source organism
// into the single highest-scoring hit. Only a strictly greater score
// replaces an organism's incumbent, so the first record seen wins ties.
// Output keeps the order organisms were first encountered in, not score
// order.
func DedupByOrganism(results []MatchResult) []MatchResult {
	best := make(map[string]MatchResult, len(results))
	var order []string

	for _, r := range results {
		name := organism(r.Description)
		incumbent, seen := best[name]
		if !seen {
			best[name] = r
			order = append(order, name)
			continue
		}
		if r.Score > incumbent.Score {
			best[name] = r
		}
	}

	deduped := make([]MatchResult, 0, len(order))
	for _, name := range order {
		deduped = append(deduped, best[name])
	}
	return deduped
}
