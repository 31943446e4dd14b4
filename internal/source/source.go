// Package source implements the per-vendor extraction strategies that turn
// raw export rows into normalized entities and links.
//
// Both vendors describe the same conceptual entities but encode author and
// affiliation linkage very differently: Scopus spreads it across two parallel
// ";"-separated columns joined by name, Web of Science packs it into one
// column of bracket-grouped addresses. Each encoding gets its own Adapter;
// venue and keyword handling is shared.
package source

import (
	"strings"

	"github.com/xdarabseh/Parsing-Literature/internal/affiliation"
	"github.com/xdarabseh/Parsing-Literature/internal/entity"
	"github.com/xdarabseh/Parsing-Literature/internal/tabular"
)

// Adapter extracts one vendor format. Implementations must be row-local:
// a malformed author or affiliation entry drops that single association and
// never fails the row.
type Adapter interface {
	// Name is the format name accepted on the command line.
	Name() string
	// RequiredColumns lists the columns that must be present before any row
	// is processed.
	RequiredColumns() []string
	// IngestRow extracts one row, resolving shared entities through reg.
	IngestRow(row tabular.Row, reg *Registries) RowResult
}

// Adapters lists every available vendor adapter.
func Adapters() []Adapter {
	return []Adapter{Scopus{}, WebOfScience{}}
}

// ByName returns the adapter registered under name.
func ByName(name string) (Adapter, bool) {
	for _, a := range Adapters() {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// Registries groups the four entity stores owned by one ingestion run.
type Registries struct {
	Venues       *entity.Registry[*entity.Venue]
	Authors      *entity.Registry[*entity.Author]
	Keywords     *entity.Registry[*entity.Keyword]
	Affiliations *entity.Registry[*entity.Affiliation]
}

// NewRegistries returns empty registries for a fresh run.
func NewRegistries() *Registries {
	return &Registries{
		Venues:       entity.NewRegistry[*entity.Venue](),
		Authors:      entity.NewRegistry[*entity.Author](),
		Keywords:     entity.NewRegistry[*entity.Keyword](),
		Affiliations: entity.NewRegistry[*entity.Affiliation](),
	}
}

// RowResult is everything one row contributes to the dataset.
type RowResult struct {
	Record   *entity.Record
	Keywords []entity.RecordKeyword
	Authors  []entity.RecordAuthor
}

// resolveVenue deduplicates the row's venue by ISSN when present, falling
// back to the lowercased source title. Returns an empty id when neither
// field carries a value.
func resolveVenue(row tabular.Row, issnCol, titleCol, venueType string, reg *Registries) string {
	issn := strings.TrimSpace(row[issnCol])
	key := issn
	if key == "" {
		key = strings.ToLower(strings.TrimSpace(row[titleCol]))
	}

	v, ok := reg.Venues.Resolve(key, func() *entity.Venue {
		return &entity.Venue{
			ID:   entity.NewID(),
			Name: strings.TrimSpace(row[titleCol]),
			Type: venueType,
			ISSN: issn,
		}
	})
	if !ok {
		return ""
	}
	return v.ID
}

// resolveKeywords splits a ";"-separated keyword field, deduplicating each
// lowercased keyword and linking it to the record. An empty field yields no
// links.
func resolveKeywords(recordID, field string, reg *Registries) []entity.RecordKeyword {
	if field == "" {
		return nil
	}

	var links []entity.RecordKeyword
	for _, raw := range strings.Split(field, ";") {
		text := strings.ToLower(strings.TrimSpace(raw))
		if text == "" {
			continue
		}
		kw, _ := reg.Keywords.Resolve(text, func() *entity.Keyword {
			return &entity.Keyword{ID: entity.NewID(), Text: text}
		})
		links = append(links, entity.RecordKeyword{RecordID: recordID, KeywordID: kw.ID})
	}
	return links
}

// resolveAffiliation deduplicates an affiliation by its lowercased raw text,
// normalizing the text into fields only on first occurrence.
func resolveAffiliation(raw string, reg *Registries) string {
	a, ok := reg.Affiliations.Resolve(strings.ToLower(raw), func() *entity.Affiliation {
		parsed := affiliation.Parse(raw)
		return &entity.Affiliation{
			ID:          entity.NewID(),
			Institution: parsed.Institution,
			City:        parsed.City,
			Country:     parsed.Country,
		}
	})
	if !ok {
		return ""
	}
	return a.ID
}

// parseYear converts an all-digit year field to an int, yielding nil for
// anything else. A bad year never fails a row.
func parseYear(s string) *int {
	if s == "" {
		return nil
	}
	year := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil
		}
		year = year*10 + int(c-'0')
	}
	return &year
}
