// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those bound from the command line.
type Config struct {
	// the width of the sliding window compared against each reference sequence
	WindowWidth int `mapstructure:"window-width"`

	// the minimum window identity for a candidate to be reported at all
	IdentityThreshold float64 `mapstructure:"identity-threshold"`

	// the factor a window's identity is multiplied by when it misses
	// every known epitope of the matched accession
	EpitopeFactor float64 `mapstructure:"epitope-factor"`

	// the minimum epitope length considered a meaningful anchor
	EpitopeMinLength int `mapstructure:"epitope-min-length"`

	// the k-mer length used for exact-match anchors
	KmerLength int `mapstructure:"kmer-length"`

	// the additive score bonus applied when a query k-mer occurs
	// verbatim in the reference sequence
	ExactBonus float64 `mapstructure:"exact-bonus"`

	// the number of scan workers. 0 means one per CPU
	Threads int `mapstructure:"threads"`

	// whether to log progress while scanning
	Verbose bool `mapstructure:"verbose"`
}

// setDefaults populates viper with the stock scan parameters. Flags and
// settings files override them (see: /cmd).
func setDefaults() {
	viper.SetDefault("window-width", 80)
	viper.SetDefault("identity-threshold", 0.35)
	viper.SetDefault("epitope-factor", 0.8)
	viper.SetDefault("epitope-min-length", 6)
	viper.SetDefault("kmer-length", 8)
	viper.SetDefault("exact-bonus", 0.1)
	viper.SetDefault("threads", 0)
}

// New returns a new Config struct populated by Viper settings (either from
// a local settings file) and/or command line arguments.
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return c
}

// WorkerCount resolves the Threads setting to a concrete worker count.
func (c *Config) WorkerCount() int {
	if c.Threads > 0 {
		return c.Threads
	}
	return runtime.NumCPU()
}
