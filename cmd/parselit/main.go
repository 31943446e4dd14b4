// Package main provides the parselit CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parselit",
	Short: "Normalize bibliographic export files into relational tables",
	Long: `parselit ingests bibliographic CSV exports (Scopus, Web of Science)
and produces a normalized, deduplicated relational dataset: records, authors,
venues, keywords, affiliations and their link tables.

Free-text affiliation strings are parsed into institution/city/country, and
authors, venues and keywords are deduplicated across the whole file with
stable identifiers. Commands output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for PARSELIT_* overrides)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version

	log.SetOutput(os.Stderr)
}
