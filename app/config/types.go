package config

// Profile represents a complete import profile
type Profile struct {
	Source  SourceSettings  `yaml:"source"`
	Mapping MappingSettings `yaml:"mapping"`
}

// SourceSettings describes where the remote extract is published
type SourceSettings struct {
	URLTemplate string `yaml:"url_template"` // {date} is replaced with YYYYMMDD
}

// MappingSettings controls how grant records are normalized
type MappingSettings struct {
	RecordLimit         *int     `yaml:"record_limit"` // 0 disables the limit
	DefaultOrganization string   `yaml:"default_organization"`
	Categories          []string `yaml:"categories"`
	Locale              string   `yaml:"locale"`
}
