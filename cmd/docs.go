package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd regenerates the Markdown documentation pages from the command tree.
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown docs for every command",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		if err := doc.GenMarkdownTree(RootCmd, out); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

func init() {
	docsCmd.Flags().StringP("out", "o", "./docs", "directory to write the Markdown files to")

	RootCmd.AddCommand(docsCmd)
}
