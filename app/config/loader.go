package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURLTemplate  = "https://www.grants.gov/xml-extract/GrantsDBExtract{date}v2.zip"
	DefaultRecordLimit  = 100
	DefaultOrganization = "Grants.gov"
	DefaultCategory     = "Government"
	DefaultLocale       = "en-US"
)

// Loader handles loading and validation of the import profile
type Loader struct {
	path string
}

// NewLoader creates a new profile loader; an empty path yields the built-in profile
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the profile file, applies defaults and validates the result
func (l *Loader) Load() (*Profile, error) {
	var profile Profile

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}

		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		slog.Debug("Loaded import profile", "path", l.path)
	}

	l.setDefaults(&profile)

	if err := l.validate(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", l.path, err)
	}

	return &profile, nil
}

// Default returns the built-in profile
func Default() *Profile {
	var profile Profile
	(&Loader{}).setDefaults(&profile)
	return &profile
}

// setDefaults applies default values to the profile
func (l *Loader) setDefaults(profile *Profile) {
	if profile.Source.URLTemplate == "" {
		profile.Source.URLTemplate = DefaultURLTemplate
	}
	if profile.Mapping.RecordLimit == nil {
		limit := DefaultRecordLimit
		profile.Mapping.RecordLimit = &limit
	}
	if profile.Mapping.DefaultOrganization == "" {
		profile.Mapping.DefaultOrganization = DefaultOrganization
	}
	if len(profile.Mapping.Categories) == 0 {
		profile.Mapping.Categories = []string{DefaultCategory}
	}
	if profile.Mapping.Locale == "" {
		profile.Mapping.Locale = DefaultLocale
	}
}

// validate validates the profile
func (l *Loader) validate(profile *Profile) error {
	if !strings.Contains(profile.Source.URLTemplate, DatePlaceholder) {
		return fmt.Errorf("url template must contain %s", DatePlaceholder)
	}
	if profile.Mapping.GetRecordLimit() < 0 {
		return fmt.Errorf("record limit must be non-negative")
	}
	for i, category := range profile.Mapping.Categories {
		if strings.TrimSpace(category) == "" {
			return fmt.Errorf("empty category at index %d", i)
		}
	}
	if _, err := language.Parse(profile.Mapping.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", profile.Mapping.Locale, err)
	}

	return nil
}
