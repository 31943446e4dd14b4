// Package affiliation normalizes free-text affiliation strings into
// institution, city and country fields.
//
// Vendor exports encode affiliations as comma-delimited postal strings with
// the country (if present) last and the city second to last. Real data breaks
// that rule in two recurring ways: US addresses end in "STATE ZIP" with no
// country, and some institutions legally end in a corporate suffix ("Acme
// Analytics, Ltd") that would otherwise be mistaken for a city. Parse layers
// targeted exceptions for both on top of the general rule, in a fixed order:
// country, then US address, then business suffix, then the generic split.
package affiliation

import (
	"regexp"
	"strings"

	"github.com/xdarabseh/Parsing-Literature/internal/country"
)

// Unknown is the placeholder value for fields the parser cannot determine.
const Unknown = "Unknown"

// Affiliation is the normalized form of one raw affiliation string.
// No field is ever empty; unresolved fields hold Unknown.
type Affiliation struct {
	Institution string `json:"institution_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// businessSuffixes are corporate forms that may legitimately terminate an
// institution name. A trailing segment reducing to one of these is part of
// the institution, not a city.
var businessSuffixes = map[string]bool{
	"ltd":  true,
	"inc":  true,
	"co":   true,
	"llc":  true,
	"corp": true,
	"gmbh": true,
	"ag":   true,
	"bv":   true,
	"srl":  true,
	"spa":  true,
	"pty":  true,
}

// usStateRe matches a trailing US-address segment such as "GA 30332" or
// "TX USA": a two-letter state code, whitespace, optionally a zip code, then
// any remainder.
var usStateRe = regexp.MustCompile(`^([A-Z]{2})\s+(?:\d{5})?.*$`)

var nonLetterRe = regexp.MustCompile(`[^a-zA-Z]`)

// Parse normalizes one raw affiliation string. It is total: malformed or
// empty input yields Unknown fields rather than an error.
func Parse(raw string) Affiliation {
	var a Affiliation
	work := strings.TrimSpace(raw)

	if name, rest, ok := country.Match(work); ok {
		a.Country = name
		work = rest
	}

	var parts []string
	for _, p := range strings.Split(work, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch {
	case len(parts) > 0 && a.Country == "" && usStateRe.MatchString(parts[len(parts)-1]):
		// US address without explicit country: the state code stands in for
		// the city and the country is implied.
		a.City = usStateRe.FindStringSubmatch(parts[len(parts)-1])[1]
		a.Country = "United States"
		a.Institution = strings.Join(parts[:len(parts)-1], ", ")
	case len(parts) > 1:
		last := strings.ToLower(nonLetterRe.ReplaceAllString(parts[len(parts)-1], ""))
		if businessSuffixes[last] {
			a.Institution = strings.Join(parts, ", ")
		} else {
			a.City = parts[len(parts)-1]
			a.Institution = strings.Join(parts[:len(parts)-1], ", ")
		}
	case len(parts) == 1:
		a.Institution = parts[0]
	default:
		a.Institution = work
	}

	if a.Institution == "" {
		a.Institution = Unknown
	}
	if a.City == "" {
		a.City = Unknown
	}
	if a.Country == "" {
		a.Country = Unknown
	}
	return a
}
