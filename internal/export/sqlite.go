package export

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/xdarabseh/Parsing-Literature/internal/pipeline"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS records (
		record_id TEXT PRIMARY KEY,
		title TEXT,
		abstract TEXT,
		document_type TEXT,
		publication_year INTEGER,
		doi TEXT,
		source_id TEXT,
		venue_id TEXT
	);

	CREATE TABLE IF NOT EXISTS authors (
		author_id TEXT PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		scopus_author_id TEXT,
		researcher_id TEXT,
		orcid TEXT
	);

	CREATE TABLE IF NOT EXISTS venues (
		venue_id TEXT PRIMARY KEY,
		venue_name TEXT,
		venue_type TEXT,
		issn TEXT
	);

	CREATE TABLE IF NOT EXISTS keywords (
		keyword_id TEXT PRIMARY KEY,
		keyword TEXT
	);

	CREATE TABLE IF NOT EXISTS affiliations (
		affiliation_id TEXT PRIMARY KEY,
		institution_name TEXT,
		city TEXT,
		country TEXT
	);

	CREATE TABLE IF NOT EXISTS record_authors (
		record_id TEXT,
		author_id TEXT,
		affiliation_id TEXT
	);

	CREATE TABLE IF NOT EXISTS record_keywords (
		record_id TEXT,
		keyword_id TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_record_authors_record ON record_authors(record_id);
	CREATE INDEX IF NOT EXISTS idx_record_keywords_record ON record_keywords(record_id);
`

// WriteSQLite writes all seven collections into a SQLite database at path,
// creating the schema if needed. All inserts run in one transaction: either
// the whole dataset lands or nothing does.
func WriteSQLite(ds *pipeline.Dataset, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range ds.Records {
		_, err := tx.Exec(
			`INSERT INTO records (record_id, title, abstract, document_type, publication_year, doi, source_id, venue_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Title, r.Abstract, r.DocumentType, nullableInt(r.Year), r.DOI, r.SourceID, nullableString(r.VenueID),
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	for _, a := range ds.Authors {
		_, err := tx.Exec(
			`INSERT INTO authors (author_id, first_name, last_name, scopus_author_id, researcher_id, orcid)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, a.FirstName, a.LastName, nullableString(a.ScopusID), nullableString(a.ResearcherID), nullableString(a.ORCID),
		)
		if err != nil {
			return fmt.Errorf("inserting author %s: %w", a.ID, err)
		}
	}

	for _, v := range ds.Venues {
		_, err := tx.Exec(
			`INSERT INTO venues (venue_id, venue_name, venue_type, issn) VALUES (?, ?, ?, ?)`,
			v.ID, v.Name, v.Type, nullableString(v.ISSN),
		)
		if err != nil {
			return fmt.Errorf("inserting venue %s: %w", v.ID, err)
		}
	}

	for _, k := range ds.Keywords {
		if _, err := tx.Exec(`INSERT INTO keywords (keyword_id, keyword) VALUES (?, ?)`, k.ID, k.Text); err != nil {
			return fmt.Errorf("inserting keyword %s: %w", k.ID, err)
		}
	}

	for _, a := range ds.Affiliations {
		_, err := tx.Exec(
			`INSERT INTO affiliations (affiliation_id, institution_name, city, country) VALUES (?, ?, ?, ?)`,
			a.ID, a.Institution, a.City, a.Country,
		)
		if err != nil {
			return fmt.Errorf("inserting affiliation %s: %w", a.ID, err)
		}
	}

	for _, l := range ds.RecordAuthors {
		_, err := tx.Exec(
			`INSERT INTO record_authors (record_id, author_id, affiliation_id) VALUES (?, ?, ?)`,
			l.RecordID, l.AuthorID, nullableString(l.AffiliationID),
		)
		if err != nil {
			return fmt.Errorf("inserting record_author link: %w", err)
		}
	}

	for _, l := range ds.RecordKeywords {
		_, err := tx.Exec(
			`INSERT INTO record_keywords (record_id, keyword_id) VALUES (?, ?)`,
			l.RecordID, l.KeywordID,
		)
		if err != nil {
			return fmt.Errorf("inserting record_keyword link: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(i *int) interface{} {
	if i == nil {
		return nil
	}
	return *i
}
