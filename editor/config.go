package editor

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/schemaforge/schemaforge/session"
)

// Config carries the host-tunable knobs of an editing session.
type Config struct {
	// SessionKey is the store key the workspace persists under.
	SessionKey string `yaml:"sessionKey"`
	// PrettyPreview selects indented JSON for the live preview.
	PrettyPreview bool `yaml:"prettyPreview"`
	// Verbose lowers the log level to debug.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		SessionKey:    session.DefaultKey,
		PrettyPreview: true,
	}
}

// ConfigFromYAML overlays a YAML document onto the default configuration.
func ConfigFromYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("editor: decode config: %w", err)
	}
	if cfg.SessionKey == "" {
		cfg.SessionKey = session.DefaultKey
	}
	return cfg, nil
}
