package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	ds := sampleDataset()

	if err := WriteSQLite(ds, path); err != nil {
		t.Fatalf("WriteSQLite() error = %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	counts := map[string]int{
		"records":        2,
		"authors":        1,
		"venues":         1,
		"keywords":       0,
		"affiliations":   1,
		"record_authors": 2,
	}
	for table, want := range counts {
		var got int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("counting %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s holds %d rows, want %d", table, got, want)
		}
	}

	// Nil year and missing affiliation land as NULL.
	var nullYears int
	if err := db.QueryRow("SELECT COUNT(*) FROM records WHERE publication_year IS NULL").Scan(&nullYears); err != nil {
		t.Fatalf("querying null years: %v", err)
	}
	if nullYears != 1 {
		t.Errorf("records with NULL year = %d, want 1", nullYears)
	}

	var nullAffils int
	if err := db.QueryRow("SELECT COUNT(*) FROM record_authors WHERE affiliation_id IS NULL").Scan(&nullAffils); err != nil {
		t.Fatalf("querying null affiliations: %v", err)
	}
	if nullAffils != 1 {
		t.Errorf("links with NULL affiliation = %d, want 1", nullAffils)
	}
}
