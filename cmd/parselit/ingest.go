package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xdarabseh/Parsing-Literature/internal/config"
	"github.com/xdarabseh/Parsing-Literature/internal/export"
	"github.com/xdarabseh/Parsing-Literature/internal/pipeline"
	"github.com/xdarabseh/Parsing-Literature/internal/source"
	"github.com/xdarabseh/Parsing-Literature/internal/tabular"
)

var (
	ingestFormat     string
	ingestOutDir     string
	ingestSQLitePath string
	ingestConfigPath string
)

func init() {
	ingestCmd.Flags().StringVar(&ingestFormat, "format", "", "Input format ("+strings.Join(formatNames(), ", ")+")")
	ingestCmd.Flags().StringVar(&ingestOutDir, "out", "", "Output directory for CSV tables (default from config)")
	ingestCmd.Flags().StringVar(&ingestSQLitePath, "sqlite", "", "Also write the dataset to a SQLite database at this path")
	ingestCmd.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config file (default "+config.DefaultFilename+")")
	ingestCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Ingest one vendor CSV export into normalized tables",
	Long: `Ingest one vendor CSV export into normalized tables.

Usage:
  parselit ingest --format scopus export.csv
  parselit ingest --format wos savedrecs.csv --out tables/ --sqlite out.db

Supported formats:
  scopus  - Scopus CSV export
  wos     - Web of Science CSV export`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

// IngestResult reports the size of each produced collection.
type IngestResult struct {
	Format         string `json:"format"`
	Records        int    `json:"records"`
	Authors        int    `json:"authors"`
	Venues         int    `json:"venues"`
	Keywords       int    `json:"keywords"`
	Affiliations   int    `json:"affiliations"`
	RecordAuthors  int    `json:"record_authors"`
	RecordKeywords int    `json:"record_keywords"`
	OutputDir      string `json:"output_dir"`
	SQLitePath     string `json:"sqlite_path,omitempty"`
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ingestConfigPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	adapter, ok := source.ByName(ingestFormat)
	if !ok {
		exitWithError(ExitConfigError, "unknown format: %s (supported: %s)",
			ingestFormat, strings.Join(formatNames(), ", "))
	}

	outDir := ingestOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	file, err := tabular.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	ds, err := pipeline.Run(file, adapter, log)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if err := export.WriteCSVDir(ds, outDir, log); err != nil {
		exitWithError(ExitError, "exporting tables: %v", err)
	}
	if ingestSQLitePath != "" {
		if err := export.WriteSQLite(ds, ingestSQLitePath); err != nil {
			exitWithError(ExitError, "exporting sqlite: %v", err)
		}
	}

	result := IngestResult{
		Format:         adapter.Name(),
		Records:        len(ds.Records),
		Authors:        len(ds.Authors),
		Venues:         len(ds.Venues),
		Keywords:       len(ds.Keywords),
		Affiliations:   len(ds.Affiliations),
		RecordAuthors:  len(ds.RecordAuthors),
		RecordKeywords: len(ds.RecordKeywords),
		OutputDir:      outDir,
		SQLitePath:     ingestSQLitePath,
	}

	if humanOutput {
		fmt.Printf("Ingested %s export %s\n", result.Format, args[0])
		fmt.Printf("  Records:      %d\n", result.Records)
		fmt.Printf("  Authors:      %d\n", result.Authors)
		fmt.Printf("  Venues:       %d\n", result.Venues)
		fmt.Printf("  Keywords:     %d\n", result.Keywords)
		fmt.Printf("  Affiliations: %d\n", result.Affiliations)
		fmt.Printf("  Links:        %d author, %d keyword\n", result.RecordAuthors, result.RecordKeywords)
		fmt.Printf("Tables written to %s\n", outDir)
		if ingestSQLitePath != "" {
			fmt.Printf("SQLite database written to %s\n", ingestSQLitePath)
		}
		return nil
	}
	return outputJSON(result)
}

func formatNames() []string {
	var names []string
	for _, a := range source.Adapters() {
		names = append(names, a.Name())
	}
	return names
}
