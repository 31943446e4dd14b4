// Package country matches country names at the end of postal-style address strings.
package country

import (
	"regexp"
	"sort"
	"strings"
)

// Names lists every country name and accepted alias the matcher recognizes,
// including colloquial and historic forms, common abbreviations, and the
// constituent countries of the United Kingdom as they appear in vendor exports.
var Names = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Antigua and Barbuda", "Argentina", "Armenia",
	"Australia", "Austria", "Azerbaijan", "Bahamas", "Bahrain", "Bangladesh", "Barbados", "Belarus", "Belgium",
	"Belize", "Benin", "Bermuda", "Bhutan", "Bolivia", "Bosnia and Herzegovina", "Botswana", "Brazil", "Brunei", "Brunei Darussalam",
	"Bulgaria", "Burkina Faso", "Burundi", "Cabo Verde", "Cambodia", "Cameroon", "Canada", "Central African Republic",
	"Chad", "Chile", "China", "Colombia", "Comoros", "Congo, Democratic Republic of the",
	"Congo, Republic of the", "Costa Rica", "Cote d'Ivoire", "Croatia", "Cuba", "Cyprus", "Czech Republic", "Czechia",
	"Denmark", "Djibouti", "Dominica", "Dominican Republic", "Ecuador", "Egypt", "El Salvador",
	"Equatorial Guinea", "Eritrea", "Estonia", "Eswatini", "Ethiopia", "Fiji", "Finland", "France", "French Guiana", "Gabon",
	"Gambia", "Georgia", "Germany", "Ghana", "Greece", "Grenada", "Guam", "Guatemala", "Guinea", "Guinea-Bissau",
	"Guyana", "Haiti", "Honduras", "Hong Kong", "Hungary", "Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland",
	"Israel", "Italy", "Jamaica", "Japan", "Jordan", "Kazakhstan", "Kenya", "Kiribati", "Kosovo", "Kuwait",
	"Kyrgyzstan", "Laos", "Latvia", "Lebanon", "Lesotho", "Liberia", "Libya", "Liechtenstein", "Lithuania",
	"Luxembourg", "Macao", "Madagascar", "Malawi", "Malaysia", "Maldives", "Mali", "Malta", "Marshall Islands",
	"Mauritania", "Mauritius", "Mexico", "Micronesia", "Moldova", "Monaco", "Mongolia", "Montenegro",
	"Morocco", "Mozambique", "Myanmar", "Burma", "Namibia", "Nauru", "Nepal", "Netherlands", "New Zealand",
	"Nicaragua", "Niger", "Nigeria", "North Korea", "North Macedonia", "Norway", "Oman", "Pakistan", "Palau",
	"Palestine", "State of Palestine", "Panama", "Papua New Guinea", "Paraguay", "Peru", "Philippines", "Poland", "Portugal",
	"Puerto Rico", "Qatar", "Romania", "Russia", "Russian Federation", "Rwanda", "Saint Kitts and Nevis", "Saint Lucia",
	"Saint Vincent and the Grenadines", "Samoa", "San Marino", "Sao Tome and Principe", "Saudi Arabia",
	"Senegal", "Serbia", "Seychelles", "Sierra Leone", "Singapore", "Slovakia", "Slovenia", "Solomon Islands",
	"Somalia", "South Africa", "South Korea", "South Sudan", "Spain", "Sri Lanka", "Sudan", "Suriname",
	"Sweden", "Switzerland", "Syria", "Syrian Arab Republic", "Taiwan", "Tajikistan", "Tanzania", "Thailand", "Timor-Leste",
	"Togo", "Tonga", "Trinidad and Tobago", "Tunisia", "Turkey", "Turkiye", "Turkmenistan", "Tuvalu", "Uganda",
	"Ukraine", "United Arab Emirates", "U Arab Emirates", "UAE", "United Kingdom", "UK", "United States of America", "United States", "USA",
	"Uruguay", "Uzbekistan", "Vanuatu", "Vatican City", "Venezuela", "Viet Nam", "Vietnam", "Yemen", "Zambia", "Zimbabwe",
	"Peoples R China", "England", "Scotland", "Wales", "Northern Ireland", "North Ireland",
}

// suffixRe matches ", <country>" at the end of a string, optionally followed
// by trailing spaces. Alternatives are ordered longest first: Go's regexp
// picks the leftmost matching alternative at a given position, so without the
// ordering "United States" would shadow "United States of America".
var suffixRe = compileSuffixPattern()

func compileSuffixPattern() *regexp.Regexp {
	sorted := make([]string, len(Names))
	copy(sorted, Names)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, name := range sorted {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(?i),\s*(` + strings.Join(quoted, "|") + `)\b *$`)
}

// Match looks for a country name at the end of s, preceded by a comma.
// On success it returns the canonicalized country, the remainder of s with
// the matched suffix (including its leading comma) removed, and true.
// Otherwise it returns s unchanged.
func Match(s string) (name, rest string, ok bool) {
	m := suffixRe.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s, false
	}
	name = Canonical(strings.TrimSpace(s[m[2]:m[3]]))
	rest = strings.TrimSpace(s[:m[0]])
	return name, rest, true
}

// Canonical folds alternate spellings onto one preferred form. Names without
// a preferred form are returned unchanged, preserving their input casing.
func Canonical(name string) string {
	switch strings.ToLower(name) {
	case "turkiye":
		return "Turkey"
	case "north ireland":
		return "Northern Ireland"
	case "u arab emirates", "uae":
		return "United Arab Emirates"
	}
	return name
}
