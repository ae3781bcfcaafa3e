package allergen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// unwantedChars matches anything that isn't a residue letter.
var unwantedChars = regexp.MustCompile(`(?im)[^a-z]`)

// read a FASTA file (by its path on local FS) to a slice of Sequences.
func read(path string) (seqs []Sequence, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return readFasta(path, string(dat))
}

// readFasta parses multi-FASTA contents to Sequences.
func readFasta(path, contents string) (seqs []Sequence, err error) {
	// split by newlines
	lines := strings.Split(contents, "\n")

	// read in the headers
	var headerIndices []int
	var descriptions []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			descriptions = append(descriptions, strings.TrimSpace(line[1:]))
		}
	}

	// accumulate the residues from between the headers
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		seqJoined := strings.Join(seqLines, "")
		seq := unwantedChars.ReplaceAllString(seqJoined, "")
		seq = strings.ToUpper(seq)

		id := descriptions[i]
		if fields := strings.Fields(id); len(fields) > 0 {
			id = fields[0]
		}

		seqs = append(seqs, Sequence{
			ID:          id,
			Description: descriptions[i],
			Seq:         seq,
		})
	}

	// opened and parsed file but found nothing
	if len(seqs) < 1 {
		return seqs, fmt.Errorf("failed to parse sequence(s) from %s", path)
	}

	return seqs, nil
}

// readQuery reads the single query record in a FASTA file. Files with more
// than one record log a warning and use the first.
func readQuery(path string) (Sequence, error) {
	seqs, err := read(path)
	if err != nil {
		return Sequence{}, fmt.Errorf("failed to read query sequence from %s: %v", path, err)
	}

	if len(seqs) > 1 {
		stderr.Printf(
			"warning: %d sequences were in %s. Only querying the first: %s\n",
			len(seqs),
			path,
			seqs[0].ID,
		)
	}

	return seqs[0], nil
}

// readQueries resolves a query input path to a list of query sequences:
// a FASTA file holds one query, a directory holds one query file per
// sequence (the layout the fetch command writes).
func readQueries(path string) ([]Sequence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to find query input at %s: %v", path, err)
	}

	if !info.IsDir() {
		query, err := readQuery(path)
		if err != nil {
			return nil, err
		}
		return []Sequence{query}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query directory %s: %v", path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".fa") || strings.HasSuffix(name, ".fasta") {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("failed to find any FASTA files in %s", path)
	}

	var queries []Sequence
	for _, file := range files {
		query, err := readQuery(file)
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}

	return queries, nil
}

// readDatabase reads the reference allergen database (a multi-FASTA file)
// and wraps each entry with its parsed accession.
func readDatabase(path string) ([]Record, error) {
	seqs, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference database from %s: %v", path, err)
	}

	records := make([]Record, 0, len(seqs))
	for _, s := range seqs {
		records = append(records, NewRecord(s))
	}

	return records, nil
}
