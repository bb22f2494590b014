// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Model selects the projection implementation: "legacy" or "physics".
	Model string `koanf:"model"`

	// CatalogPath optionally points at a YAML modification catalog that
	// replaces the built-in registry.
	CatalogPath string `koanf:"catalog_path"`

	// MaxModsPerRequest bounds the selected mod set for one projection.
	MaxModsPerRequest int `koanf:"max_mods_per_request"`

	// ZeroToSixtyFloorSec is the hard physical floor for projected 0-60.
	ZeroToSixtyFloorSec float64 `koanf:"zero_to_sixty_floor_sec"`

	// DampingFactor derates the 0-60 improvement per unit of
	// power-to-weight gain.
	DampingFactor float64 `koanf:"damping_factor"`

	// ResultCacheSize bounds the projection memoization cache; zero
	// disables caching.
	ResultCacheSize int `koanf:"result_cache_size"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9090",
		Model:               "legacy",
		CatalogPath:         "",
		MaxModsPerRequest:   32,
		ZeroToSixtyFloorSec: 2.8,
		DampingFactor:       0.35,
		ResultCacheSize:     10_000,
	}
}
