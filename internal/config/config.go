package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"

	"github.com/llehouerou/reels/internal/media"
)

const appName = "reels"

type Config struct {
	Feed       []FeedItem `koanf:"feed"`        // explicit pages; empty uses the demo rotation
	FeedLength int        `koanf:"feed_length"` // pages when feed is empty (default: 3)
	Icons      string     `koanf:"icons"`       // "nerd", "unicode", or "none"

	Player PlayerConfig `koanf:"player"`
	Timing TimingConfig `koanf:"timing"`
	Log    LogConfig    `koanf:"log"`
}

// FeedItem is one configured page.
type FeedItem struct {
	Kind   string `koanf:"kind"` // "video" or "image"; guessed from the extension when empty
	Source string `koanf:"source"`
}

// PlayerConfig selects the playback transport.
type PlayerConfig struct {
	Backend       string `koanf:"backend"`        // "mpv" or "clock"
	MPVPath       string `koanf:"mpv_path"`       // mpv binary (default: "mpv" on PATH)
	ClockDuration int    `koanf:"clock_duration"` // seconds per item for the clock backend (default: 15)
}

// TimingConfig holds overlay and polling durations in milliseconds.
type TimingConfig struct {
	PauseIconMS int `koanf:"pause_icon_ms"` // default: 2000
	TapIconMS   int `koanf:"tap_icon_ms"`   // default: 3000
	TrackMS     int `koanf:"track_ms"`      // default: 3000
	PollMS      int `koanf:"poll_ms"`       // default: 250
	ReloadMS    int `koanf:"reload_ms"`     // default: 1000
}

// LogConfig controls the log file.
type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level"` // logrus level name (default: "info")
	JSON    bool   `koanf:"json"`
}

const (
	BackendMPV   = "mpv"
	BackendClock = "clock"
)

// Load reads the standard config files. Later files override earlier ones.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order; missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	for i, item := range cfg.Feed {
		cfg.Feed[i].Source = expandPath(strings.TrimSpace(item.Source))
	}
	cfg.Player.MPVPath = expandPath(cfg.Player.MPVPath)
	cfg.Player.Backend = strings.ToLower(strings.TrimSpace(cfg.Player.Backend))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for i, item := range c.Feed {
		if item.Source == "" {
			return fmt.Errorf("feed[%d]: source is required", i)
		}
		if item.Kind != "" {
			if _, ok := media.ParseKind(item.Kind); !ok {
				return fmt.Errorf("feed[%d]: unknown kind %q", i, item.Kind)
			}
		}
	}
	switch c.Player.Backend {
	case "", BackendMPV, BackendClock:
	default:
		return fmt.Errorf("player.backend: unknown backend %q", c.Player.Backend)
	}
	return nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/reels/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Items returns the configured feed as media items.
func (c *Config) Items() []media.Item {
	return lo.Map(c.Feed, func(f FeedItem, _ int) media.Item {
		kind, ok := media.ParseKind(f.Kind)
		if !ok {
			kind = media.KindFromPath(f.Source)
		}
		return media.Item{Kind: kind, Source: f.Source}
	})
}

// GetFeedLength returns the page count used with the demo rotation.
func (c *Config) GetFeedLength() int {
	if c.FeedLength <= 0 {
		return 3
	}
	return c.FeedLength
}

// GetPlayerConfig returns the player configuration with defaults applied.
// With no backend configured, mpv is used when found on PATH.
func (c *Config) GetPlayerConfig(mpvAvailable func(string) bool) PlayerConfig {
	cfg := c.Player
	if cfg.MPVPath == "" {
		cfg.MPVPath = "mpv"
	}
	if cfg.ClockDuration <= 0 {
		cfg.ClockDuration = 15
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendClock
		if mpvAvailable != nil && mpvAvailable(cfg.MPVPath) {
			cfg.Backend = BackendMPV
		}
	}
	return cfg
}

// ClockLength returns the clock backend item length.
func (p PlayerConfig) ClockLength() time.Duration {
	return time.Duration(p.ClockDuration) * time.Second
}

// GetTimingConfig returns the timing configuration with defaults applied.
func (c *Config) GetTimingConfig() TimingConfig {
	cfg := c.Timing

	if cfg.PauseIconMS <= 0 {
		cfg.PauseIconMS = 2000
	}
	if cfg.TapIconMS <= 0 {
		cfg.TapIconMS = 3000
	}
	if cfg.TrackMS <= 0 {
		cfg.TrackMS = 3000
	}
	if cfg.PollMS <= 0 {
		cfg.PollMS = 250
	}
	if cfg.ReloadMS <= 0 {
		cfg.ReloadMS = 1000
	}

	return cfg
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func (t TimingConfig) PauseIcon() time.Duration { return ms(t.PauseIconMS) }
func (t TimingConfig) TapIcon() time.Duration   { return ms(t.TapIconMS) }
func (t TimingConfig) Track() time.Duration     { return ms(t.TrackMS) }
func (t TimingConfig) Poll() time.Duration      { return ms(t.PollMS) }
func (t TimingConfig) Reload() time.Duration    { return ms(t.ReloadMS) }
