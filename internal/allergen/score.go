package allergen

import (
	"strings"

	"github.com/shenliangjun042510/allergen/config"
)

// MatchMode tags which scanning mode produced a MatchResult. It reflects
// whether epitope adjustment was requested for the scan, not whether a
// particular window actually overlapped an epitope.
type MatchMode int

const (
	// ModeGlobal is plain sliding-window scanning.
	ModeGlobal MatchMode = iota

	// ModeEpitopeAdjusted is sliding-window scanning with epitope-aware
	// score adjustment.
	ModeEpitopeAdjusted
)

func (m MatchMode) String() string {
	if m == ModeEpitopeAdjusted {
		return "global_epitope_adjusted"
	}
	return "global_no_epitope"
}

// MatchResult is the full score sheet for one (query, reference) pair that
// passed the identity threshold. Every field is populated before a result
// is handed to the dispatcher; partially-scored candidates are never
// reported.
type MatchResult struct {
	// QueryID is the identifier of the query the result belongs to
	QueryID string

	// ID is the full identifier of the matched reference entry
	ID string

	// Accession is the parsed accession of the matched entry
	Accession string

	// Description is the matched entry's FASTA description
	Description string

	// Identity is the best raw window identity in [0, 1]
	Identity float64

	// AdjustedIdentity is Identity after the epitope penalty, if any
	AdjustedIdentity float64

	// Score is AdjustedIdentity plus the exact k-mer bonus, if earned
	Score float64

	// HasKmerMatch is true when any query k-mer occurs verbatim in the
	// reference sequence
	HasKmerMatch bool

	// Mode tags the scanning mode the result was produced under
	Mode MatchMode

	// WindowContainsEpitope is true when the best window holds a known
	// epitope of the matched accession as an exact substring
	WindowContainsEpitope bool

	// Window is the best-matching query window
	Window string

	// WindowHits counts (possibly overlapping) exact occurrences of
	// Window in the reference sequence
	WindowHits int

	// KmerHits sums exact occurrences of every query k-mer in the
	// reference sequence
	KmerHits int

	// Organism is the source organism parsed from Description
	Organism string
}

// scoreTarget scores one reference record against the query. It returns
// nil for self-matches and for candidates whose best window identity is
// below the reporting threshold: those are not reported at all, not merely
// scored low.
func scoreTarget(query Sequence, rec Record, cat *EpitopeCatalog, epitopeAdjust bool, conf *config.Config) *MatchResult {
	if rec.Seq == query.Seq {
		return nil // self-match
	}

	best, bestStart := bestWindowIdentity(query.Seq, rec.Seq, conf.WindowWidth)
	if best < conf.IdentityThreshold || bestStart < 0 {
		return nil
	}

	window := query.Seq[bestStart : bestStart+conf.WindowWidth]

	adjusted := best
	containsEpitope := false
	if epitopeAdjust {
		for _, epitope := range cat.Epitopes(rec.Accession) {
			if epitope != "" && strings.Contains(window, epitope) {
				containsEpitope = true
				break
			}
		}
		if !containsEpitope {
			// the window misses every known epitope (or the accession is
			// uncatalogued): reduced confidence it binds antibodies
			adjusted = best * conf.EpitopeFactor
		}
	}

	exact := hasExactKmer(query.Seq, rec.Seq, conf.KmerLength)
	score := adjusted
	if exact {
		score += conf.ExactBonus
	}

	mode := ModeGlobal
	if epitopeAdjust {
		mode = ModeEpitopeAdjusted
	}

	return &MatchResult{
		QueryID:               query.ID,
		ID:                    rec.ID,
		Accession:             rec.Accession,
		Description:           rec.Description,
		Identity:              best,
		AdjustedIdentity:      adjusted,
		Score:                 score,
		HasKmerMatch:          exact,
		Mode:                  mode,
		WindowContainsEpitope: containsEpitope,
		Window:                window,
		WindowHits:            countHits(window, rec.Seq),
		KmerHits:              kmerHits(query.Seq, rec.Seq, conf.KmerLength),
		Organism:              organism(rec.Description),
	}
}

// countHits counts possibly-overlapping exact occurrences of sub in s.
func countHits(sub, s string) int {
	if sub == "" {
		return 0
	}
	count, start := 0, 0
	for {
		i := strings.Index(s[start:], sub)
		if i < 0 {
			return count
		}
		count++
		start += i + 1 // overlaps allowed
	}
}

// kmerSet returns the set of distinct length-k substrings of seq.
func kmerSet(seq string, k int) map[string]struct{} {
	mers := make(map[string]struct{})
	if k <= 0 {
		return mers
	}
	for i := 0; i+k <= len(seq); i++ {
		mers[seq[i:i+k]] = struct{}{}
	}
	return mers
}

// hasExactKmer reports whether any length-k substring of query occurs
// verbatim in target.
func hasExactKmer(query, target string, k int) bool {
	for mer := range kmerSet(query, k) {
		if strings.Contains(target, mer) {
			return true
		}
	}
	return false
}

// kmerHits sums the (possibly overlapping) exact occurrences of every
// distinct query k-mer in target.
func kmerHits(query, target string, k int) int {
	total := 0
	for mer := range kmerSet(query, k) {
		total += countHits(mer, target)
	}
	return total
}
