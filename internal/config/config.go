// Package config provides YAML-based configuration loading for the
// tileforge tools.
package config

import "github.com/vovakirdan/tileforge/internal/text"

// Config is the root tileforge configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Server  ServerConfig  `yaml:"server"`
}

// CatalogConfig points at the map catalog database.
type CatalogConfig struct {
	DBPath string `yaml:"db_path"`
}

// ViewerConfig controls how tiles are drawn in the terminal viewer.
type ViewerConfig struct {
	EmptyGlyph string         `yaml:"empty_glyph"` // Drawn for cells that decoded as empty
	GlyphRamp  string         `yaml:"glyph_ramp"`  // Tiles without a glyph cycle through this by id
	Glyphs     map[int]string `yaml:"glyphs"`      // Per-tile overrides, keyed by tile id
	StepFast   int            `yaml:"step_fast"`   // Pan distance for page-style movement
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address         string `yaml:"address"`
	HostKeyPath     string `yaml:"host_key"` // Auto-generated under ~/.tileforge when empty
	IdleTimeoutMins int    `yaml:"idle_timeout_mins"`
}

// Glyph resolves the display glyph for a tile id. Explicit overrides come
// first, empty cells draw the empty glyph, glyph-band tiles draw their
// rune, and everything else cycles through the ramp by id.
func (v ViewerConfig) Glyph(id int32) string {
	if s, ok := v.Glyphs[int(id)]; ok {
		return s
	}
	if id < 0 {
		return v.EmptyGlyph
	}
	if r, ok := text.RuneFor(id); ok {
		return string(r)
	}
	if ramp := []rune(v.GlyphRamp); len(ramp) > 0 {
		return string(ramp[int(id)%len(ramp)])
	}
	return v.EmptyGlyph
}
