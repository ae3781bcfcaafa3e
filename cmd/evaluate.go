package cmd

import (
	"github.com/shenliangjun042510/allergen/internal/allergen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// evaluateCmd is for benchmarking the scoring engine against labeled
// sequence pairs.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Benchmark the scoring engine on labeled sequence pairs",
	Run:   allergen.EvaluateCmd,
	Long: `Score labeled positive and negative query/target pairs and report
classification metrics at the identity threshold.

Each FASTA file in the positive and negative directories holds exactly two
sequences: the query followed by its candidate. Pairs without a match above
the threshold score 0.0. Accuracy, precision, recall and F1 are computed at
the threshold; the ROC AUC is computed from the raw scores.`,
	Example:                    "  allergen evaluate --positives data/pos --negatives data/neg --local --epitopes epitope_map.json",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"eval", "benchmark"},
}

// set flags
func init() {
	evaluateCmd.Flags().StringP("positives", "p", "", "directory of cross-reactive pair FASTA files")
	evaluateCmd.Flags().StringP("negatives", "n", "", "directory of non-cross-reactive pair FASTA files")
	evaluateCmd.Flags().StringP("epitopes", "e", "", "path to an epitope catalog JSON (accession to epitope list)")
	evaluateCmd.Flags().BoolP("local", "l", false, "adjust window scores using the epitope catalog")
	evaluateCmd.Flags().Float64P("identity", "t", 0.35, "decision threshold for the metrics")

	evaluateCmd.MarkFlagRequired("positives")
	evaluateCmd.MarkFlagRequired("negatives")

	viper.BindPFlag("identity-threshold", evaluateCmd.Flags().Lookup("identity"))

	RootCmd.AddCommand(evaluateCmd)
}
