package allergen

import (
	"fmt"
	"os"
	"time"

	"github.com/shenliangjun042510/allergen/config"
	"github.com/spf13/cobra"
)

// PredictCmd is for scanning query sequences against the reference
// allergen database from the CLI.
func PredictCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	if _, err := Predict(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Predict scans each query sequence against the reference database,
// deduplicates the hits by source organism, ranks them, and writes the
// report. The caller blocks until every query has been scored.
func Predict(flags *Flags, conf *config.Config) ([]MatchResult, error) {
	start := time.Now()

	db, err := readDatabase(flags.db)
	if err != nil {
		return nil, err
	}

	var cat *EpitopeCatalog
	if flags.epitopes != "" {
		if cat, err = ReadEpitopeCatalog(flags.epitopes); err != nil {
			return nil, err
		}
	}

	queries, err := readQueries(flags.in)
	if err != nil {
		return nil, err
	}

	var all []MatchResult
	for i, query := range queries {
		if conf.Verbose {
			fmt.Printf("[%d/%d] scanning %s against %d reference entries\n",
				i+1, len(queries), query.ID, len(db))
		}

		results := ScanDatabase(query, db, cat, flags.epitopeAdjust, conf)
		if len(results) == 0 {
			stderr.Printf("no potential cross-reactive allergens found for %s\n", query.ID)
			continue
		}

		results = DedupByOrganism(results)
		SortByScore(results)
		all = append(all, results...)

		if conf.Verbose {
			fmt.Printf("  %d potential cross-reactive allergens\n", len(results))
		}
	}

	SortForReport(all)

	if err := writeReportFile(flags.out, all); err != nil {
		return nil, err
	}
	writeTable(os.Stdout, all)

	if conf.Verbose {
		fmt.Printf("%s\n\n", time.Since(start))
	}

	return all, nil
}
