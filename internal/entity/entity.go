// Package entity defines the normalized relational model produced by an
// ingestion run, and the registry that deduplicates entities within a run.
package entity

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier. Identifiers are random, never
// derived from input, and never reused.
func NewID() string {
	return uuid.NewString()
}

// Record is one bibliographic publication entry. Records are never
// deduplicated: every input row yields a new Record.
type Record struct {
	ID           string `json:"record_id"`
	Title        string `json:"title"`
	Abstract     string `json:"abstract"`
	DocumentType string `json:"document_type"`
	Year         *int   `json:"publication_year"`
	DOI          string `json:"doi"`
	SourceID     string `json:"source_id"` // vendor UID: Scopus EID, WoS UT
	VenueID      string `json:"venue_id"`  // empty when no venue could be resolved
}

// Venue is the journal, series or conference a Record appeared in.
type Venue struct {
	ID   string `json:"venue_id"`
	Name string `json:"venue_name"`
	Type string `json:"venue_type"`
	ISSN string `json:"issn"`
}

// Author is a deduplicated author. At most one of the external identifier
// fields is the dedup key; the others may be empty.
type Author struct {
	ID           string `json:"author_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ScopusID     string `json:"scopus_author_id"`
	ResearcherID string `json:"researcher_id"`
	ORCID        string `json:"orcid"`
}

// Keyword is a deduplicated, lowercased keyword.
type Keyword struct {
	ID   string `json:"keyword_id"`
	Text string `json:"keyword"`
}

// Affiliation is a normalized institution/city/country triple. The dedup key
// is the lowercased raw affiliation text, not the parsed fields, so distinct
// spellings of one institution remain distinct entities.
type Affiliation struct {
	ID          string `json:"affiliation_id"`
	Institution string `json:"institution_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// RecordAuthor links a Record to an Author, optionally via the Affiliation
// under which the author appeared on that record. AffiliationID is empty
// only when no affiliation text could be associated with the author.
type RecordAuthor struct {
	RecordID      string `json:"record_id"`
	AuthorID      string `json:"author_id"`
	AffiliationID string `json:"affiliation_id"`
}

// RecordKeyword links a Record to a Keyword.
type RecordKeyword struct {
	RecordID  string `json:"record_id"`
	KeywordID string `json:"keyword_id"`
}
