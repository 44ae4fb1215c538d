// Package config loads the glyphgrid runtime configuration file.
//
// The runtime config is a TOML file (conventionally "glyphgrid.toml")
// covering everything that is not placement data: where the placement
// asset packs live, the default grid mode and prop size, and the HTTP
// server settings. The placement assets themselves stay JSON; their schema
// belongs to the asset packs, not to this engine.
//
//	assets_dir = "assets"
//	grid_mode = "diamond"
//	prop_size = "medium"
//
//	[server]
//	listen = ":8460"
//
//	[server.cache]
//	backend = "memory"   # none | memory | redis
//	redis_addr = "localhost:6379"
//	ttl = "1h"
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
)

// Cache backend names accepted in [server.cache].
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Duration is a time.Duration that unmarshals from TOML strings like "1h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Settings is the decoded runtime configuration.
type Settings struct {
	AssetsDir string `toml:"assets_dir"`
	GridMode  string `toml:"grid_mode"`
	PropSize  string `toml:"prop_size"`
	Server    Server `toml:"server"`
}

// Server configures the HTTP placement API.
type Server struct {
	Listen string      `toml:"listen"`
	Cache  CacheConfig `toml:"cache"`
}

// CacheConfig configures the server's placement-result cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	return Settings{
		AssetsDir: "assets",
		GridMode:  string(pictograph.Diamond),
		PropSize:  string(placement.DefaultPropSize),
		Server: Server{
			Listen: ":8460",
			Cache: CacheConfig{
				Backend: CacheMemory,
				TTL:     Duration(time.Hour),
			},
		},
	}
}

// Load reads and validates a settings file. A missing file yields the
// defaults; a present but unparsable or invalid file is a
// configuration-load error and should be fatal to the caller.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return Settings{}, gerr.Wrap(gerr.ErrCodeConfigMissing, err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, gerr.Wrap(gerr.ErrCodeConfigParse, err, "parsing %s", path)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the enum-valued fields.
func (s Settings) Validate() error {
	if _, err := pictograph.ParseGridMode(s.GridMode); err != nil {
		return gerr.Wrap(gerr.ErrCodeConfigSchema, err, "grid_mode")
	}
	switch placement.PropSize(s.PropSize) {
	case placement.PropSmall, placement.PropMedium, placement.PropLarge:
	default:
		return gerr.New(gerr.ErrCodeConfigSchema, "invalid prop_size %q", s.PropSize)
	}
	switch s.Server.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return gerr.New(gerr.ErrCodeConfigSchema, "invalid cache backend %q", s.Server.Cache.Backend)
	}
	if s.Server.Cache.Backend == CacheRedis && s.Server.Cache.RedisAddr == "" {
		return gerr.New(gerr.ErrCodeConfigSchema, "cache backend %q requires redis_addr", CacheRedis)
	}
	return nil
}

// GridModeValue returns the parsed grid mode. Call after Validate.
func (s Settings) GridModeValue() pictograph.GridMode {
	return pictograph.GridMode(s.GridMode)
}

// PropSizeValue returns the parsed prop size. Call after Validate.
func (s Settings) PropSizeValue() placement.PropSize {
	return placement.PropSize(s.PropSize)
}

// String renders a one-line summary for logging.
func (s Settings) String() string {
	return fmt.Sprintf("assets=%s grid=%s prop=%s listen=%s cache=%s",
		s.AssetsDir, s.GridMode, s.PropSize, s.Server.Listen, s.Server.Cache.Backend)
}
