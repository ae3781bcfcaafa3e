// Package allergen predicts cross-reactive allergens: reference sequences
// whose primary structure is close enough to a query protein that
// antibodies raised against one may bind the other.
package allergen

import (
	"regexp"
	"strings"
)

// Sequence is a single parsed FASTA record.
type Sequence struct {
	// ID is the first whitespace separated field of the FASTA header
	ID string

	// Description is the full FASTA header line (without the '>')
	Description string

	// Seq is the residue string: letters only, uppercased
	Seq string
}

// Record is a reference database Sequence plus its parsed accession.
type Record struct {
	Sequence

	// Accession is the canonical accession of the entry. UniProt FASTA
	// identifiers look like "sp|Q9SQI9|PROF_ARAHY": the accession is the
	// second |-separated field. Identifiers without a separator are used
	// as-is.
	Accession string
}

// NewRecord wraps a Sequence with its parsed accession.
func NewRecord(s Sequence) Record {
	return Record{
		Sequence:  s,
		Accession: accession(s.ID),
	}
}

// accession pulls the canonical accession out of a FASTA identifier.
func accession(id string) string {
	fields := strings.Split(id, "|")
	if len(fields) > 1 && fields[1] != "" {
		return fields[1]
	}
	return id
}

// organismRx matches the OS= annotation of a UniProt description, up to
// the next annotation key or the end of the line.
var organismRx = regexp.MustCompile(`OS=([^=]+?)\s*(?:OX=|GN=|PE=|SV=|$)`)

// organism extracts the source organism from a FASTA description.
// Descriptions without an OS= annotation map to "Unknown".
func organism(description string) string {
	m := organismRx.FindStringSubmatch(description)
	if m == nil {
		return "Unknown"
	}
	return strings.TrimSpace(m[1])
}
