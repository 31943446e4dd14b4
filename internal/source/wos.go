package source

import (
	"regexp"
	"strings"

	"github.com/xdarabseh/Parsing-Literature/internal/entity"
	"github.com/xdarabseh/Parsing-Literature/internal/tabular"
)

// wosAddressRe extracts one "[Author A; Author B] affiliation text" group
// from the Addresses column. Groups carry no separator beyond the opening
// bracket of the next group, so the affiliation text runs up to the next "["
// or end of string.
var wosAddressRe = regexp.MustCompile(`\[([^\]]*)\]\s*([^\[]*)`)

// wosDocumentTypes maps Web of Science publication type codes to names.
// Unknown codes pass through unchanged.
var wosDocumentTypes = map[string]string{
	"J": "Journal",
	"B": "Book",
	"S": "Series",
	"P": "Patent",
	"C": "Conference",
}

// WebOfScience ingests Web of Science CSV exports. Author identities arrive
// in three ";"-separated columns (full names, researcher ids, ORCIDs) that
// are aligned by position; the author/affiliation association is encoded in
// the bracket-grouped Addresses column, with every author of one group
// sharing that group's affiliation.
type WebOfScience struct{}

func (WebOfScience) Name() string { return "wos" }

func (WebOfScience) RequiredColumns() []string {
	return []string{
		"Article Title", "Author Full Names", "Addresses", "Author Keywords",
		"Source Title", "Publication Year", "UT (Unique WOS ID)",
	}
}

func (WebOfScience) IngestRow(row tabular.Row, reg *Registries) RowResult {
	venueID := resolveVenue(row, "ISSN", "Source Title", "", reg)

	docType := strings.TrimSpace(row["Publication Type"])
	if mapped, ok := wosDocumentTypes[docType]; ok {
		docType = mapped
	}

	record := &entity.Record{
		ID:           entity.NewID(),
		Title:        strings.TrimSpace(row["Article Title"]),
		Abstract:     strings.TrimSpace(row["Abstract"]),
		DocumentType: docType,
		Year:         parseYear(row["Publication Year"]),
		DOI:          row["DOI"],
		SourceID:     row["UT (Unique WOS ID)"],
		VenueID:      venueID,
	}

	res := RowResult{
		Record:   record,
		Keywords: resolveKeywords(record.ID, row["Author Keywords"], reg),
	}

	ids := wosAuthorIDMap(row["Author Full Names"], row["Researcher Ids"], row["ORCIDs"])

	for _, group := range wosAddressRe.FindAllStringSubmatch(row["Addresses"], -1) {
		affilText := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(group[2]), ";"))
		affilID := resolveAffiliation(affilText, reg)

		for _, name := range strings.Split(group[1], "; ") {
			details, ok := ids[name]
			if !ok {
				continue // name not present in the full-name column, drop
			}

			last, first := name, ""
			if i := strings.Index(name, ","); i >= 0 {
				last = strings.TrimSpace(name[:i])
				first = strings.TrimSpace(name[i+1:])
			}

			key := details.researcherID
			if key == "" {
				key = details.orcid
			}
			if key == "" {
				key = strings.ToLower(name)
			}

			author, ok := reg.Authors.Resolve(key, func() *entity.Author {
				return &entity.Author{
					ID:           entity.NewID(),
					FirstName:    first,
					LastName:     last,
					ResearcherID: details.researcherID,
					ORCID:        details.orcid,
				}
			})
			if !ok {
				continue
			}

			res.Authors = append(res.Authors, entity.RecordAuthor{
				RecordID:      record.ID,
				AuthorID:      author.ID,
				AffiliationID: affilID,
			})
		}
	}

	return res
}

type wosAuthorIDs struct {
	researcherID string
	orcid        string
}

// wosAuthorIDMap zips the full-name, researcher-id and ORCID columns by
// position. Identifier tokens read "Name/ID"; the id is the suffix after the
// last "/". Positions missing from the id columns are treated as having no
// identifier, and surplus id tokens are ignored.
func wosAuthorIDMap(names, researcherIDs, orcids string) map[string]wosAuthorIDs {
	nameList := splitTrim(names, ";")
	ridList := splitTrim(researcherIDs, ";")
	orcidList := splitTrim(orcids, ";")

	out := make(map[string]wosAuthorIDs, len(nameList))
	for i, name := range nameList {
		var ids wosAuthorIDs
		if i < len(ridList) {
			ids.researcherID = idSuffix(ridList[i])
		}
		if i < len(orcidList) {
			ids.orcid = idSuffix(orcidList[i])
		}
		out[name] = ids
	}
	return out
}

// idSuffix returns everything after the last "/" in a token, or empty when
// the token has no slash.
func idSuffix(token string) string {
	if i := strings.LastIndex(token, "/"); i >= 0 {
		return token[i+1:]
	}
	return ""
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
