package allergen

import (
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/shenliangjun042510/allergen/config"
)

// ScanDatabase fans the query out against every reference record on a
// fixed pool of workers and collects the surviving MatchResults. Results
// arrive in completion order: callers needing a stable order re-sort
// downstream (see report.go). Candidates below the identity threshold and
// self-matches are dropped silently; a candidate that fails outright is
// logged and skipped, never fatal for the batch.
func ScanDatabase(query Sequence, db []Record, cat *EpitopeCatalog, epitopeAdjust bool, conf *config.Config) []MatchResult {
	threads := conf.WorkerCount()

	jobs := make(chan Record, threads*2)
	out := make(chan *MatchResult, threads*2)

	var bar *pb.ProgressBar
	if conf.Verbose {
		bar = pb.StartNew(len(db))
	}

	// workers: each candidate is pure computation over the shared
	// read-only db and catalog, so no locking is needed
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for rec := range jobs {
				out <- scoreRecord(query, rec, cat, epitopeAdjust, conf)
			}
		}()
	}

	// collector
	var results []MatchResult
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range out {
			if bar != nil {
				bar.Increment()
			}
			if r != nil {
				results = append(results, *r)
			}
		}
	}()

	for _, rec := range db {
		jobs <- rec
	}
	close(jobs)
	wg.Wait()
	close(out)
	cwg.Wait()

	if bar != nil {
		bar.Finish()
	}

	return results
}

// scoreRecord isolates a single candidate's scoring: a panic on one
// malformed record becomes a logged skip instead of a batch failure.
func scoreRecord(query Sequence, rec Record, cat *EpitopeCatalog, epitopeAdjust bool, conf *config.Config) (result *MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			stderr.Printf("skipping %s: %v\n", rec.ID, r)
			result = nil
		}
	}()

	return scoreTarget(query, rec, cat, epitopeAdjust, conf)
}
