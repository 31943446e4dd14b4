package pipeline

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/xdarabseh/Parsing-Literature/internal/source"
	"github.com/xdarabseh/Parsing-Literature/internal/tabular"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func scopusFile(rows []tabular.Row) *tabular.File {
	return &tabular.File{
		Headers: source.Scopus{}.RequiredColumns(),
		Rows:    rows,
	}
}

func TestRunValidatesColumns(t *testing.T) {
	f := &tabular.File{Headers: []string{"Title", "Year"}}

	_, err := Run(f, source.Scopus{}, quietLogger())
	if err == nil {
		t.Fatal("Run() expected column validation error")
	}
	if !strings.Contains(err.Error(), "missing required columns") {
		t.Errorf("error = %q, want missing-columns message", err)
	}
	if !strings.Contains(err.Error(), "EID") {
		t.Errorf("error = %q, should name the missing column", err)
	}
}

func TestRunAssemblesCollections(t *testing.T) {
	rows := []tabular.Row{
		{
			"Title":                     "Paper One",
			"Author full names":         "Smith, John (12345)",
			"Authors with affiliations": "Smith, John, Dept of X, Atlanta, GA 30332",
			"Source title":              "Journal A",
			"Author Keywords":           "bim; lidar",
			"Document Type":             "Article",
			"Year":                      "2020",
			"EID":                       "2-s2.0-1",
		},
		{
			"Title":                     "Paper Two",
			"Author full names":         "Smith, John (12345); Doe, Jane (67890)",
			"Authors with affiliations": "Doe, Jane, Univ A, Paris, France",
			"Source title":              "Journal A",
			"Author Keywords":           "bim",
			"Document Type":             "Article",
			"Year":                      "2021",
			"EID":                       "2-s2.0-2",
		},
	}

	ds, err := Run(scopusFile(rows), source.Scopus{}, quietLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(ds.Records) != 2 {
		t.Errorf("records = %d, want 2", len(ds.Records))
	}
	if len(ds.Authors) != 2 {
		t.Errorf("authors = %d, want 2 (Smith deduplicated)", len(ds.Authors))
	}
	if len(ds.Venues) != 1 {
		t.Errorf("venues = %d, want 1", len(ds.Venues))
	}
	if len(ds.Keywords) != 2 {
		t.Errorf("keywords = %d, want 2", len(ds.Keywords))
	}
	if len(ds.Affiliations) != 2 {
		t.Errorf("affiliations = %d, want 2", len(ds.Affiliations))
	}
	if len(ds.RecordAuthors) != 3 {
		t.Errorf("record_authors = %d, want 3", len(ds.RecordAuthors))
	}
	if len(ds.RecordKeywords) != 3 {
		t.Errorf("record_keywords = %d, want 3", len(ds.RecordKeywords))
	}

	// Authors flatten in first-reference order.
	if ds.Authors[0].LastName != "Smith" || ds.Authors[1].LastName != "Doe" {
		t.Errorf("authors out of order: %+v", ds.Authors)
	}
}

// Re-running ingestion on the same rows yields collections identical up to
// identifier relabeling.
func TestRunIsIdempotent(t *testing.T) {
	rows := []tabular.Row{
		{
			"Title":                     "Paper One",
			"Author full names":         "Smith, John (12345)",
			"Authors with affiliations": "Smith, John, Univ A, Paris, France",
			"Source title":              "Journal A",
			"Author Keywords":           "bim",
			"Document Type":             "Article",
			"Year":                      "2020",
			"EID":                       "2-s2.0-1",
		},
	}

	first, err := Run(scopusFile(rows), source.Scopus{}, quietLogger())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := Run(scopusFile(rows), source.Scopus{}, quietLogger())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if len(first.Authors) != len(second.Authors) ||
		len(first.Venues) != len(second.Venues) ||
		len(first.Affiliations) != len(second.Affiliations) ||
		len(first.RecordAuthors) != len(second.RecordAuthors) {
		t.Fatal("runs produced different cardinalities")
	}
	if first.Authors[0].ID == second.Authors[0].ID {
		t.Error("identifiers must be freshly generated per run")
	}
	if first.Authors[0].LastName != second.Authors[0].LastName ||
		first.Affiliations[0].Institution != second.Affiliations[0].Institution {
		t.Error("attribute values differ between identical runs")
	}
}

func TestRunEmptyFile(t *testing.T) {
	ds, err := Run(scopusFile(nil), source.Scopus{}, quietLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ds.Records) != 0 || len(ds.Authors) != 0 {
		t.Errorf("empty input must yield empty collections: %+v", ds)
	}
}

func TestRunWebOfScience(t *testing.T) {
	f := &tabular.File{
		Headers: source.WebOfScience{}.RequiredColumns(),
		Rows: []tabular.Row{
			{
				"Article Title":      "Paper One",
				"Author Full Names":  "Doe, Jane; Lee, Kim",
				"Researcher Ids":     "Doe, Jane/A-1/123",
				"Addresses":          "[Doe, Jane; Lee, Kim] University A, Paris, France",
				"Author Keywords":    "bim",
				"Source Title":       "Journal A",
				"Publication Year":   "2021",
				"UT (Unique WOS ID)": "WOS:000001",
				"Publication Type":   "J",
			},
		},
	}

	ds, err := Run(f, source.WebOfScience{}, quietLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ds.Authors) != 2 || len(ds.Affiliations) != 1 || len(ds.RecordAuthors) != 2 {
		t.Errorf("got %d authors, %d affiliations, %d links",
			len(ds.Authors), len(ds.Affiliations), len(ds.RecordAuthors))
	}
	if ds.Records[0].DocumentType != "Journal" {
		t.Errorf("DocumentType = %q, want Journal", ds.Records[0].DocumentType)
	}
}
