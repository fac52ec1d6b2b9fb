package config

import (
	"time"

	"github.com/ziadkadry99/reatler/internal/walker"
)

// FileName is the config file looked up in the working directory.
const FileName = ".reatler.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:     "output.txt",
		Format:     "text",
		IgnoreFile: walker.DefaultIgnoreFile,
		Clipboard:  true,
		Finder: FinderConfig{
			Binary:         "fd",
			TimeoutSeconds: 10,
		},
	}
}

// FinderTimeout returns the configured fd timeout as a duration.
func (c *Config) FinderTimeout() time.Duration {
	return time.Duration(c.Finder.TimeoutSeconds) * time.Second
}
