package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if DYNO_CONFIG is set
//  3. env (prefix DYNO_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote providers

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("DYNO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DYNO_ADDR, DYNO_MODEL, ...
	// Map env keys like DYNO_MAX_MODS_PER_REQUEST -> max_mods_per_request.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("DYNO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "dyno_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch cfg.Model {
	case "legacy", "physics":
	default:
		return fmt.Errorf("%w: model must be legacy or physics, got %q", ErrInvalidConfig, cfg.Model)
	}
	if cfg.MaxModsPerRequest <= 0 {
		return fmt.Errorf("%w: max_mods_per_request must be positive", ErrInvalidConfig)
	}
	if cfg.ZeroToSixtyFloorSec <= 0 {
		return fmt.Errorf("%w: zero_to_sixty_floor_sec must be positive", ErrInvalidConfig)
	}
	if cfg.DampingFactor <= 0 || cfg.DampingFactor > 1 {
		return fmt.Errorf("%w: damping_factor must be in (0,1]", ErrInvalidConfig)
	}
	if cfg.ResultCacheSize < 0 {
		return fmt.Errorf("%w: result_cache_size must not be negative", ErrInvalidConfig)
	}
	return nil
}
