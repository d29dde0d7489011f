package config

// SiteConfig contains the site metadata rendered into envelope headers
// and feed channels.
type SiteConfig struct {
	Title   string `yaml:"title" validate:"required"`
	WebPath string `yaml:"webPath" validate:"omitempty,url"`
	Charset string `yaml:"charset"`
	Version string `yaml:"version"`
}

// SerializerConfig contains the default pagination window and output mode.
type SerializerConfig struct {
	Offset int    `yaml:"offset" validate:"gte=0"`
	Limit  int    `yaml:"limit" validate:"gte=0"`
	Mode   string `yaml:"mode" validate:"omitempty,oneof=generic rss xspf itunes"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Site       SiteConfig       `yaml:"site" validate:"required"`
	Serializer SerializerConfig `yaml:"serializer"`
}
