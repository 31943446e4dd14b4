// Package export writes the collections of an ingestion run to tabular
// targets: one CSV file per collection, or a SQLite database.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/xdarabseh/Parsing-Literature/internal/pipeline"
)

// table is one collection rendered as header plus rows.
type table struct {
	name   string
	header []string
	rows   [][]string
}

func tables(ds *pipeline.Dataset) []table {
	records := table{
		name:   "records",
		header: []string{"record_id", "title", "abstract", "document_type", "publication_year", "doi", "source_id", "venue_id"},
	}
	for _, r := range ds.Records {
		records.rows = append(records.rows, []string{
			r.ID, r.Title, r.Abstract, r.DocumentType, yearString(r.Year), r.DOI, r.SourceID, r.VenueID,
		})
	}

	authors := table{
		name:   "authors",
		header: []string{"author_id", "first_name", "last_name", "scopus_author_id", "researcher_id", "orcid"},
	}
	for _, a := range ds.Authors {
		authors.rows = append(authors.rows, []string{
			a.ID, a.FirstName, a.LastName, a.ScopusID, a.ResearcherID, a.ORCID,
		})
	}

	venues := table{
		name:   "venues",
		header: []string{"venue_id", "venue_name", "venue_type", "issn"},
	}
	for _, v := range ds.Venues {
		venues.rows = append(venues.rows, []string{v.ID, v.Name, v.Type, v.ISSN})
	}

	keywords := table{
		name:   "keywords",
		header: []string{"keyword_id", "keyword"},
	}
	for _, k := range ds.Keywords {
		keywords.rows = append(keywords.rows, []string{k.ID, k.Text})
	}

	affiliations := table{
		name:   "affiliations",
		header: []string{"affiliation_id", "institution_name", "city", "country"},
	}
	for _, a := range ds.Affiliations {
		affiliations.rows = append(affiliations.rows, []string{a.ID, a.Institution, a.City, a.Country})
	}

	recordAuthors := table{
		name:   "record_authors",
		header: []string{"record_id", "author_id", "affiliation_id"},
	}
	for _, l := range ds.RecordAuthors {
		recordAuthors.rows = append(recordAuthors.rows, []string{l.RecordID, l.AuthorID, l.AffiliationID})
	}

	recordKeywords := table{
		name:   "record_keywords",
		header: []string{"record_id", "keyword_id"},
	}
	for _, l := range ds.RecordKeywords {
		recordKeywords.rows = append(recordKeywords.rows, []string{l.RecordID, l.KeywordID})
	}

	return []table{records, authors, venues, keywords, affiliations, recordAuthors, recordKeywords}
}

func yearString(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

// WriteCSVDir writes one <collection>.csv per non-empty collection into dir,
// creating the directory if needed. Empty collections are skipped.
func WriteCSVDir(ds *pipeline.Dataset, dir string, log *logrus.Logger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, t := range tables(ds) {
		if len(t.rows) == 0 {
			log.WithField("collection", t.name).Debug("skipping empty collection")
			continue
		}
		if err := writeCSV(filepath.Join(dir, t.name+".csv"), t); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"collection": t.name, "rows": len(t.rows)}).Info("wrote collection")
	}
	return nil
}

func writeCSV(path string, t table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		return fmt.Errorf("writing %s header: %w", t.name, err)
	}
	for i, row := range t.rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", t.name, i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", t.name, err)
	}
	return nil
}
