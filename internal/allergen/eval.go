package allergen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shenliangjun042510/allergen/config"
	"github.com/spf13/cobra"
)

// Metrics summarizes binary classification performance of the scoring
// engine over a labeled benchmark at a decision threshold.
type Metrics struct {
	// Threshold is the score at or above which a pair is called cross-reactive
	Threshold float64

	// Positives and Negatives are the benchmark sizes
	Positives int
	Negatives int

	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64

	// AUC is the area under the ROC curve, computed from score ranks
	AUC float64
}

// EvaluateCmd is for benchmarking the scoring engine against labeled
// positive/negative sequence pairs from the CLI.
func EvaluateCmd(cmd *cobra.Command, args []string) {
	posDir, _ := cmd.Flags().GetString("positives")
	negDir, _ := cmd.Flags().GetString("negatives")
	if posDir == "" || negDir == "" {
		cmd.Help()
		stderr.Fatalln("\nboth --positives and --negatives directories are required.")
	}

	epitopesPath, _ := cmd.Flags().GetString("epitopes")
	epitopeAdjust, _ := cmd.Flags().GetBool("local")
	conf := config.New()

	var cat *EpitopeCatalog
	if epitopesPath != "" {
		var err error
		if cat, err = ReadEpitopeCatalog(epitopesPath); err != nil {
			stderr.Fatalln(err)
		}
	}

	m, err := Evaluate(posDir, negDir, cat, epitopeAdjust, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "threshold\tpos\tneg\taccuracy\tprecision\trecall\tf1\tauc\t\n")
	fmt.Fprintf(writer, "%.2f\t%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
		m.Threshold, m.Positives, m.Negatives, m.Accuracy, m.Precision, m.Recall, m.F1, m.AUC)
	writer.Flush()
}

// Evaluate scores every labeled pair file in the positive and negative
// directories and derives classification metrics at the configured
// identity threshold.
func Evaluate(posDir, negDir string, cat *EpitopeCatalog, epitopeAdjust bool, conf *config.Config) (*Metrics, error) {
	pos, err := evaluateDir(posDir, cat, epitopeAdjust, conf)
	if err != nil {
		return nil, err
	}
	neg, err := evaluateDir(negDir, cat, epitopeAdjust, conf)
	if err != nil {
		return nil, err
	}
	if len(pos) == 0 && len(neg) == 0 {
		return nil, fmt.Errorf("failed to find any labeled pairs in %s and %s", posDir, negDir)
	}

	threshold := conf.IdentityThreshold

	tp, fp, tn, fn := 0, 0, 0, 0
	for _, s := range pos {
		if s >= threshold {
			tp++
		} else {
			fn++
		}
	}
	for _, s := range neg {
		if s >= threshold {
			fp++
		} else {
			tn++
		}
	}

	m := &Metrics{
		Threshold: threshold,
		Positives: len(pos),
		Negatives: len(neg),
		Accuracy:  float64(tp+tn) / float64(len(pos)+len(neg)),
		AUC:       rocAUC(pos, neg),
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	return m, nil
}

// evaluateDir scores each pair file in dir: every FASTA must hold exactly
// two records, the query followed by its single-candidate "database".
// Pairs that produce no match above threshold score 0.0; files with a
// different record count are skipped with a warning.
func evaluateDir(dir string, cat *EpitopeCatalog, epitopeAdjust bool, conf *config.Config) (scores []float64, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark directory %s: %v", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".fa") || strings.HasSuffix(name, ".fasta") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		seqs, err := read(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if len(seqs) != 2 {
			stderr.Printf("warning: %s holds %d sequences, not a query/target pair. skipping\n", name, len(seqs))
			continue
		}

		db := []Record{NewRecord(seqs[1])}
		results := ScanDatabase(seqs[0], db, cat, epitopeAdjust, conf)

		score := 0.0
		if len(results) > 0 {
			score = results[0].Score
		}
		scores = append(scores, score)
	}

	return scores, nil
}

// rocAUC computes the area under the ROC curve as the probability a
// positive pair outscores a negative one, ties counting half.
func rocAUC(pos, neg []float64) float64 {
	if len(pos) == 0 || len(neg) == 0 {
		return 0
	}

	wins := 0.0
	for _, p := range pos {
		for _, n := range neg {
			switch {
			case p > n:
				wins += 1.0
			case p == n:
				wins += 0.5
			}
		}
	}
	return wins / float64(len(pos)*len(neg))
}
