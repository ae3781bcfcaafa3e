package allergen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"
)

// SortByScore orders results by composite score descending, keeping the
// incoming order between equal scores.
func SortByScore(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

// SortForReport orders a multi-query batch by query identifier, then by
// composite score descending within each query's group.
func SortForReport(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].QueryID != results[j].QueryID {
			return results[i].QueryID < results[j].QueryID
		}
		return results[i].Score > results[j].Score
	})
}

// WriteReport writes the human-readable report: one section per query with
// its surviving matches enumerated in rank order. An empty result set is a
// valid outcome and still produces a (short) report.
func WriteReport(w io.Writer, results []MatchResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No potential cross-reactive allergens found.")
		return err
	}

	currentQuery := ""
	for i, r := range results {
		if r.QueryID != currentQuery {
			currentQuery = r.QueryID
			if _, err := fmt.Fprintf(w, "\n==== Query: %s ====\n", currentQuery); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w,
			"%d. %s\n"+
				"   Name: %s\n"+
				"   Identity: %.3f\n"+
				"   Exact k-mer match: %v\n"+
				"   Score: %.3f\n"+
				"   Match mode: %s\n",
			i+1, r.ID, r.Description, r.Identity, r.HasKmerMatch, r.Score, r.Mode)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeReportFile writes the report to a results file, creating parent
// directories as needed.
func writeReportFile(path string, results []MatchResult) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory %s: %v", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file %s: %v", path, err)
	}
	defer f.Close()

	return WriteReport(f, results)
}

// resultHeader is the column order of the tabular result hand-off.
var resultHeader = []string{
	"query_id",
	"id",
	"description",
	"organism",
	"identity",
	"identity_adjusted",
	"score",
	"kmer_match",
	"match_mode",
	"window",
	"window_hits",
	"kmer_hits",
}

// Rows flattens results to a header row plus one row per MatchResult, the
// shape the presentation collaborator consumes. The id column carries the
// accession rather than the full identifier.
func Rows(results []MatchResult) [][]string {
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, resultHeader)

	for _, r := range results {
		rows = append(rows, []string{
			r.QueryID,
			r.Accession,
			r.Description,
			r.Organism,
			strconv.FormatFloat(r.Identity, 'f', 4, 64),
			strconv.FormatFloat(r.AdjustedIdentity, 'f', 4, 64),
			strconv.FormatFloat(r.Score, 'f', 4, 64),
			strconv.FormatBool(r.HasKmerMatch),
			r.Mode.String(),
			r.Window,
			strconv.Itoa(r.WindowHits),
			strconv.Itoa(r.KmerHits),
		})
	}

	return rows
}

// WriteCSV writes the tabular result rows as CSV.
func WriteCSV(w io.Writer, results []MatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Rows(results)); err != nil {
		return fmt.Errorf("failed to write results table: %v", err)
	}
	cw.Flush()
	return cw.Error()
}

// writeTable logs a ranked summary of the results to w.
func writeTable(w io.Writer, results []MatchResult) {
	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "query\taccession\torganism\tidentity\tscore\tmode\t\n")
	for _, r := range results {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%.3f\t%.3f\t%s\n",
			r.QueryID, r.Accession, r.Organism, r.Identity, r.Score, r.Mode)
	}
	writer.Flush()
}
