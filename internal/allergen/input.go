package allergen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shenliangjun042510/allergen/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "out", "db", etc that are
// used by multiple commands.
type Flags struct {
	// in is the path to a query FASTA file or a directory of query FASTA files
	in string

	// out is the path the ranked report is written to
	out string

	// db is the path to the reference allergen database (multi-FASTA)
	db string

	// epitopes is the path to an epitope catalog JSON (accession -> epitope list)
	epitopes string

	// epitopeAdjust turns on epitope-aware score adjustment
	epitopeAdjust bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, db, epitopes string, epitopeAdjust bool) *Flags {
	if out == "" {
		p := inputParser{}
		out = p.guessOutput(in)
	}

	return &Flags{
		in:            in,
		out:           out,
		db:            db,
		epitopes:      epitopes,
		epitopeAdjust: epitopeAdjust,
	}
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object.
// returns Flags and a Config struct for allergen.Predict.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput(); err != nil {
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.in)
	}

	if fs.db, err = cmd.Flags().GetString("db"); fs.db == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno reference database passed.")
	}

	fs.epitopes, _ = cmd.Flags().GetString("epitopes")
	fs.epitopeAdjust, _ = cmd.Flags().GetBool("local")

	return fs, c
}

// guessInput returns the FASTA file in the current directory, if there is
// exactly one.
func (p *inputParser) guessInput() (in string, err error) {
	dirContents, err := os.ReadDir(".")
	if err != nil {
		return "", err
	}

	var fastas []string
	for _, entry := range dirContents {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".fa") || strings.HasSuffix(name, ".fasta") {
			fastas = append(fastas, entry.Name())
		}
	}

	if len(fastas) != 1 {
		return "", fmt.Errorf(
			"failed to find a query FASTA file in the current directory, pass one with --in",
		)
	}

	return fastas[0], nil
}

// guessOutput gives the report path based on the input path.
func (p *inputParser) guessOutput(in string) (out string) {
	ext := filepath.Ext(in)
	noExt := in[0 : len(in)-len(ext)]
	return noExt + ".predictions.txt"
}
