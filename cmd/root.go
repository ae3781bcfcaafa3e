// Package cmd is for command line interactions with the allergen application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "allergen",
	Short: `Predict cross-reactive allergens for protein sequences.
Scan queries against a reference allergen database and rank the plausible
cross-reactive entries per source organism`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(readSettings)

	RootCmd.PersistentFlags().StringP("settings", "s", "", "path to a settings file (YAML or JSON)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log scan progress")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// readSettings loads the settings file into viper, if one was passed.
func readSettings() {
	settings := viper.GetString("settings")
	if settings == "" {
		return
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file %s: %v", settings, err)
	}
}
