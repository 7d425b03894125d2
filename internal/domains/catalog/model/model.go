package model

import (
	"strings"
)

const (
	EntityName = "timezones"
)

// Location is one entry of the timezone catalog. Offset is the base (non-DST) offset in hours.
type Location struct {
	Text    string  `json:"text"              yaml:"text"`
	Abbr    string  `json:"abbr"              yaml:"abbr"`
	Offset  float64 `json:"offset"            yaml:"offset"`
	Emoji   string  `json:"emoji,omitempty"   yaml:"emoji,omitempty"`
	City    string  `json:"city,omitempty"    yaml:"city,omitempty"`
	Country string  `json:"country,omitempty" yaml:"country,omitempty"`
}

// Label renders "<emoji> <city>, <country>", falling back to the text when the city is unknown.
func (l Location) Label() string {
	if l.City == "" {
		return strings.TrimSpace(l.Emoji + " " + l.Text)
	}

	place := l.City
	if l.Country != "" {
		place += ", " + l.Country
	}

	return strings.TrimSpace(l.Emoji + " " + place)
}

// Matches reports whether query is a case-insensitive substring of the text, abbr, city or country.
func (l Location) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	for _, field := range []string{l.Text, l.Abbr, l.City, l.Country} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}
