package cmd

import (
	"github.com/shenliangjun042510/allergen/internal/allergen"
	"github.com/spf13/cobra"
)

// fetchCmd is for downloading query sequences by accession.
var fetchCmd = &cobra.Command{
	Use:   "fetch [accession ...]",
	Short: "Download query FASTA files from UniProt by accession",
	Run:   allergen.FetchCmd,
	Long: `Download the FASTA record of each accession from the UniProt REST API
into a query directory, one file per sequence, ready for 'allergen predict --in'.
Accessions that cannot be resolved are listed but do not fail the download.`,
	Example:                    "  allergen fetch --out fasta_files Q9SQI9 P15494",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"download"},
}

// set flags
func init() {
	fetchCmd.Flags().StringP("out", "o", "fasta_files", "directory to write the fetched FASTA files to")

	RootCmd.AddCommand(fetchCmd)
}
