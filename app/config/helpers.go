package config

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	DatePlaceholder = "{date}"
	dateLayout      = "20060102"
)

// GetRecordLimit returns the number of grant records processed per run
func (m *MappingSettings) GetRecordLimit() int {
	if m.RecordLimit == nil {
		return DefaultRecordLimit
	}
	return *m.RecordLimit
}

// GetLocale returns the parsed locale tag used for amount formatting
func (m *MappingSettings) GetLocale() language.Tag {
	tag, err := language.Parse(m.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// ResolveURL substitutes the UTC calendar date of now into the URL template
func (s *SourceSettings) ResolveURL(now time.Time) string {
	return strings.ReplaceAll(s.URLTemplate, DatePlaceholder, now.UTC().Format(dateLayout))
}
