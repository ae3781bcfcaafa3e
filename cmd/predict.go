package cmd

import (
	"github.com/shenliangjun042510/allergen/internal/allergen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// predictCmd is for scanning query sequences against the reference
// allergen database.
var predictCmd = &cobra.Command{
	Use:   "predict [query]",
	Short: "Predict cross-reactive allergens for query protein sequences",
	Run:   allergen.PredictCmd,
	Long: `Scan each query protein sequence against a reference allergen database.

Every reference entry is scored with a sliding-window identity scan: the
best-matching window of the query is aligned against the full reference
sequence, exact k-mer anchors add a score bonus, and (with --local) windows
that miss the entry's known epitopes are penalized. Hits against the same
source organism are collapsed to the best one and the surviving matches are
ranked by score in the written report.`,
	Example:                    "  allergen predict --in fasta_files --db uniprotkb_allergen.fasta --local --epitopes epitope_map.json",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"scan", "predictions"},
}

// set flags
func init() {
	predictCmd.Flags().StringP("in", "i", "", "path to a query FASTA file or a directory of query FASTA files")
	predictCmd.Flags().StringP("out", "o", "", "path to write the ranked report to (default <in>.predictions.txt)")
	predictCmd.Flags().StringP("db", "d", "", "path to the reference allergen database (multi-FASTA)")
	predictCmd.Flags().StringP("epitopes", "e", "", "path to an epitope catalog JSON (accession to epitope list)")
	predictCmd.Flags().BoolP("local", "l", false, "adjust window scores using the epitope catalog")
	predictCmd.Flags().IntP("window", "w", 80, "sliding window width in residues")
	predictCmd.Flags().Float64P("identity", "t", 0.35, "window identity threshold for reporting a candidate")
	predictCmd.Flags().IntP("threads", "p", 0, "number of scan workers (0 = one per CPU)")

	predictCmd.MarkFlagRequired("db")

	// bind the scan parameters to viper
	viper.BindPFlag("window-width", predictCmd.Flags().Lookup("window"))
	viper.BindPFlag("identity-threshold", predictCmd.Flags().Lookup("identity"))
	viper.BindPFlag("threads", predictCmd.Flags().Lookup("threads"))

	RootCmd.AddCommand(predictCmd)
}
