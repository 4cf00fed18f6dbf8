// Package geo holds the structured location shape shared by job and
// profile records, and the parser that derives it from free text.
package geo

import "strings"

// Location is the structured form of a free-text location string.
// Coordinates are (longitude, latitude); records crawled without
// geodata keep the (0, 0) placeholder.
type Location struct {
	City        string     `json:"city"`
	State       string     `json:"state"`
	Country     string     `json:"country"`
	Coordinates [2]float64 `json:"coordinates"`
}

func (l Location) IsZero() bool {
	return l.City == "" && l.State == "" && l.Country == "" &&
		l.Coordinates[0] == 0 && l.Coordinates[1] == 0
}

// Parse derives a Location from raw free text. It never fails: blank or
// unparseable input yields the zero Location. Tokens are split on runs
// of commas and whitespace. With four or more tokens only the first,
// second and last are kept (city, state, country); middle tokens are
// discarded. Casing is preserved as extracted.
func Parse(raw string) Location {
	var loc Location

	parts := splitTokens(raw)
	if len(parts) == 0 {
		return loc
	}

	switch len(parts) {
	case 1:
		loc.City = parts[0]
	case 2:
		loc.City = parts[0]
		loc.State = parts[1]
	case 3:
		loc.City = parts[0]
		loc.State = parts[1]
		loc.Country = parts[2]
	default:
		loc.City = parts[0]
		loc.State = parts[1]
		loc.Country = parts[len(parts)-1]
	}

	return loc
}

func splitTokens(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ',', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
