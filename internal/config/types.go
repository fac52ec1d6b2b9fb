package config

// Config is the top-level reatler configuration, corresponding to .reatler.yml.
type Config struct {
	Output     string       `yaml:"output" koanf:"output"`
	Format     string       `yaml:"format" koanf:"format"`
	Include    []string     `yaml:"include" koanf:"include"`
	Ignore     []string     `yaml:"ignore" koanf:"ignore"`
	IgnoreFile string       `yaml:"ignore_file" koanf:"ignore_file"`
	Clipboard  bool         `yaml:"clipboard" koanf:"clipboard"`
	Finder     FinderConfig `yaml:"finder" koanf:"finder"`
}

// FinderConfig holds settings for the --smart directory lookup.
type FinderConfig struct {
	Binary         string `yaml:"binary" koanf:"binary"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}
