package allergen

import (
	"encoding/json"
	"fmt"
	"os"
)

// EpitopeCatalog maps sequence accessions to their known immunologically
// significant substrings. It is built once before a run and read-only
// afterwards, so concurrent scan workers can share it freely.
type EpitopeCatalog struct {
	epitopes map[string][]string
}

// NewEpitopeCatalog builds a catalog from already-deserialized data.
func NewEpitopeCatalog(epitopes map[string][]string) *EpitopeCatalog {
	m := make(map[string][]string, len(epitopes))
	for acc, eps := range epitopes {
		m[acc] = append([]string(nil), eps...)
	}
	return &EpitopeCatalog{epitopes: m}
}

// ReadEpitopeCatalog reads an accession -> epitope list JSON file.
func ReadEpitopeCatalog(path string) (*EpitopeCatalog, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read epitope catalog from %s: %v", path, err)
	}

	epitopes := make(map[string][]string)
	if err := json.Unmarshal(dat, &epitopes); err != nil {
		return nil, fmt.Errorf("failed to parse epitope catalog %s: %v", path, err)
	}

	return NewEpitopeCatalog(epitopes), nil
}

// Epitopes returns the known epitopes of an accession. Accessions without
// a catalog entry, and a nil catalog, return nothing: downstream scoring
// treats that as "no epitopes available", never as an error.
func (c *EpitopeCatalog) Epitopes(accession string) []string {
	if c == nil {
		return nil
	}
	return c.epitopes[accession]
}

// Len returns the number of catalogued accessions.
func (c *EpitopeCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.epitopes)
}

// BestEpitopeIdentity aligns each epitope of at least minLen residues
// against the full query and returns the best identity plus every epitope
// tied for it. A strict improvement resets the matched set while an exact
// tie appends to it; a perfect epitope returns immediately, alone.
func BestEpitopeIdentity(query string, epitopes []string, minLen int) (float64, []string) {
	best := 0.0
	var matched []string

	for _, epitope := range epitopes {
		if len(epitope) < minLen {
			continue // too short to be a meaningful anchor
		}

		d := infixDistance(epitope, query, -1)
		if d < 0 {
			continue
		}

		identity := 1.0 - float64(d)/float64(len(epitope))
		if identity > best {
			best = identity
			matched = []string{epitope}
		} else if identity == best {
			matched = append(matched, epitope)
		}

		if identity == 1.0 {
			return 1.0, []string{epitope}
		}
	}

	return best, matched
}
