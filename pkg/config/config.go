// Package config loads wortwolke configuration from TOML files with
// environment overrides.
//
// Every field has a working default, so the zero-config path (no file, no
// env) produces a usable setup: in-process layout, no shared cache, no
// analytics store.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Redis  RedisConfig  `toml:"redis"`
	Mongo  MongoConfig  `toml:"mongo"`
}

// LayoutConfig mirrors cloud.Config for file-based tuning.
type LayoutConfig struct {
	MinSpacing      float64 `toml:"min_spacing"`
	MinTapTarget    float64 `toml:"min_tap_target"`
	FontMin         float64 `toml:"font_min"`
	FontMax         float64 `toml:"font_max"`
	MaxIterations   int     `toml:"max_iterations"`
	Seed            uint64  `toml:"seed"`
	MaxRadius       float64 `toml:"max_radius"`
	AngleIncrement  float64 `toml:"angle_increment"`
	RadiusIncrement float64 `toml:"radius_increment"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and tunes the layout cache.
type CacheConfig struct {
	// Dir enables the file backend when set and Redis is not configured.
	Dir string `toml:"dir"`

	// TTL is the cached layout lifetime, e.g. "24h". Empty means the default.
	TTL string `toml:"ttl"`
}

// RedisConfig enables the Redis cache backend when Addr is set.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig enables the MongoDB analytics sink when URI is set.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the zero-config setup.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads TOML configuration from path and applies environment overrides.
// An empty path loads defaults plus env only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if os.IsNotExist(err) {
				return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
			}
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays WORTWOLKE_* environment variables on the loaded file.
// Only deployment wiring is overridable this way; layout tunables stay in
// the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("WORTWOLKE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("WORTWOLKE_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("WORTWOLKE_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("WORTWOLKE_MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("WORTWOLKE_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
}

// LayoutDefaults converts the file's layout section to a cloud.Config,
// filling unset fields with the standard defaults.
func (c Config) LayoutDefaults() cloud.Config {
	lc := cloud.Config{
		MinSpacing:      c.Layout.MinSpacing,
		MinTapTarget:    c.Layout.MinTapTarget,
		FontSize:        cloud.FontRange{Min: c.Layout.FontMin, Max: c.Layout.FontMax},
		MaxIterations:   c.Layout.MaxIterations,
		Seed:            c.Layout.Seed,
		MaxRadius:       c.Layout.MaxRadius,
		AngleIncrement:  c.Layout.AngleIncrement,
		RadiusIncrement: c.Layout.RadiusIncrement,
	}
	return lc.Normalize()
}

// CacheTTL parses the configured cache TTL. A zero return tells callers to
// use cache.DefaultTTL; malformed values degrade to that default rather than
// failing startup.
func (c Config) CacheTTL() time.Duration {
	if c.Cache.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0
	}
	return d
}
