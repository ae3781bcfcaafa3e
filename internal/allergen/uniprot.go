package allergen

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// uniprotURL is the REST endpoint query sequences are fetched from.
// a var so tests can point it at a local server.
var uniprotURL = "https://rest.uniprot.org/uniprotkb"

// FetchCmd is for downloading query FASTA files by accession from the CLI.
func FetchCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno accessions passed.")
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = "fasta_files"
	}

	missing, err := Fetch(args, outDir)
	if err != nil {
		stderr.Fatalln(err)
	}

	fmt.Printf("fetched %d of %d sequences into %s\n", len(args)-len(missing), len(args), outDir)
	for _, acc := range missing {
		stderr.Printf("failed to resolve %s\n", acc)
	}
}

// Fetch downloads the FASTA record of each accession into outDir, one file
// per sequence (the layout readQueries consumes). Accessions that cannot
// be resolved are returned rather than failing the whole download.
func Fetch(accessions []string, outDir string) (missing []string, err error) {
	if err = os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create query directory %s: %v", outDir, err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	for _, acc := range accessions {
		resp, err := client.Get(fmt.Sprintf("%s/%s.fasta", uniprotURL, acc))
		if err != nil {
			stderr.Printf("failed to fetch %s: %v\n", acc, err)
			missing = append(missing, acc)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK || len(body) == 0 {
			missing = append(missing, acc)
			continue
		}

		path := filepath.Join(outDir, acc+".fasta")
		if err := os.WriteFile(path, body, 0644); err != nil {
			return missing, fmt.Errorf("failed to write %s: %v", path, err)
		}
	}

	return missing, nil
}
