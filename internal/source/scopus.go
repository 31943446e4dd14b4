package source

import (
	"regexp"
	"strings"

	"github.com/xdarabseh/Parsing-Literature/internal/entity"
	"github.com/xdarabseh/Parsing-Literature/internal/tabular"
)

// scopusAuthorRe extracts one "Last, First (1234567)" entry from the
// "Author full names" column: name up to the first comma, the remainder, and
// the numeric Scopus author id in parentheses.
var scopusAuthorRe = regexp.MustCompile(`([^,]+),\s(.*?)\s\((\d+)\)`)

// Scopus ingests Scopus CSV exports. Authors and their affiliations arrive
// in two parallel ";"-separated columns that must be joined on the
// reconstructed "Last, First" name; the join is best-effort and leaves the
// affiliation empty when the two columns spell a name differently.
type Scopus struct{}

func (Scopus) Name() string { return "scopus" }

func (Scopus) RequiredColumns() []string {
	return []string{
		"Title", "Author full names", "Authors with affiliations", "Affiliations",
		"Source title", "Author Keywords", "Abstract", "Document Type", "Year",
		"DOI", "EID",
	}
}

func (Scopus) IngestRow(row tabular.Row, reg *Registries) RowResult {
	venueID := resolveVenue(row, "ISSN", "Source title", "Journal", reg)

	record := &entity.Record{
		ID:           entity.NewID(),
		Title:        strings.TrimSpace(row["Title"]),
		Abstract:     strings.TrimSpace(row["Abstract"]),
		DocumentType: strings.TrimSpace(row["Document Type"]),
		Year:         parseYear(row["Year"]),
		DOI:          row["DOI"],
		SourceID:     row["EID"],
		VenueID:      venueID,
	}

	res := RowResult{
		Record:   record,
		Keywords: resolveKeywords(record.ID, row["Author Keywords"], reg),
	}

	affiliations := scopusAffiliationMap(row["Authors with affiliations"])

	for _, rawEntry := range strings.Split(row["Author full names"], ";") {
		m := scopusAuthorRe.FindStringSubmatch(strings.TrimSpace(rawEntry))
		if m == nil {
			continue // malformed entry, drop this association only
		}
		last := strings.TrimSpace(m[1])
		first := strings.TrimSpace(m[2])
		scopusID := strings.TrimSpace(m[3])

		author, _ := reg.Authors.Resolve(scopusID, func() *entity.Author {
			return &entity.Author{
				ID:        entity.NewID(),
				FirstName: first,
				LastName:  last,
				ScopusID:  scopusID,
			}
		})

		var affilID string
		if text, ok := affiliations[last+", "+first]; ok {
			affilID = resolveAffiliation(text, reg)
		}

		res.Authors = append(res.Authors, entity.RecordAuthor{
			RecordID:      record.ID,
			AuthorID:      author.ID,
			AffiliationID: affilID,
		})
	}

	return res
}

// scopusAffiliationMap builds the "Last, First" -> affiliation text lookup
// from the "Authors with affiliations" column, where each ";"-separated entry
// reads "Last, First, <affiliation text, possibly with commas>". Entries with
// fewer than three comma segments carry no affiliation and are skipped.
func scopusAffiliationMap(field string) map[string]string {
	out := make(map[string]string)
	if field == "" {
		return out
	}
	for _, rawEntry := range strings.Split(field, ";") {
		parts := strings.Split(strings.TrimSpace(rawEntry), ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 3 {
			continue
		}
		name := parts[0] + ", " + parts[1]
		out[name] = strings.Join(parts[2:], ", ")
	}
	return out
}
