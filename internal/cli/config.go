package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"
)

// configFileName is looked for in the working directory, mirroring how
// the teacher's CLI would look for a project-local config file.
const configFileName = "raggedblocks.toml"

// Config holds the raggedblocks.toml settings: default algorithm,
// layout settings, frame size, cache backend, and log level. CLI flags
// take precedence over these values wherever both are set.
//
// CacheBackend is one of "file" (default), "memory", "none", or a
// "redis://host:port/db" URL selecting pkg/cache's RedisCache.
type Config struct {
	Algorithm        string  `toml:"algorithm"`
	TranslateWraps   bool    `toml:"translate_wraps"`
	SimplifyOutlines bool    `toml:"simplify_outlines"`
	IdealLeading     float64 `toml:"ideal_leading"`
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	CellWidth        float64 `toml:"cell_width"`
	CellHeight       float64 `toml:"cell_height"`
	CacheBackend     string  `toml:"cache_backend"`
	LogLevel         string  `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no raggedblocks.toml
// is present, matching pipeline.Options' own defaults plus a file-backed
// cache and a monospace measurer sized for terminal preview.
func DefaultConfig() Config {
	return Config{
		Algorithm:    pipeline.DefaultAlgorithm,
		Width:        pipeline.DefaultWidth,
		Height:       pipeline.DefaultHeight,
		CellWidth:    defaultCellWidth,
		CellHeight:   defaultCellHeight,
		CacheBackend: "file",
		LogLevel:     "info",
	}
}

// loadConfigIfPresent reads path as TOML, returning DefaultConfig() with
// loaded values layered on top. A missing file is not an error.
func loadConfigIfPresent(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
