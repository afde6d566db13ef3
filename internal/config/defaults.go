package config

import (
	_ "embed"
)

//go:embed defaults/tileforge.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			DBPath: "~/.tileforge/catalog.db",
		},
		Viewer: ViewerConfig{
			EmptyGlyph: " ",
			GlyphRamp:  "#%*+=-:.",
			StepFast:   10,
		},
		Server: ServerConfig{
			Address:         ":23234",
			IdleTimeoutMins: 30,
		},
	}
}
