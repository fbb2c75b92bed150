//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/reels/internal/media"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/videos/a.mp4",
			expected: filepath.Join(home, "videos", "a.mp4"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/media/a.mp4",
			expected: "/srv/media/a.mp4",
		},
		{
			name:     "url unchanged",
			input:    "https://example.com/a.mp4",
			expected: "https://example.com/a.mp4",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under %q", paths[0], appName)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom_ParsesAllSections(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
feed_length = 5
icons = "unicode"

[[feed]]
kind = "video"
source = "/srv/a.mp4"

[[feed]]
source = "/srv/b.png"

[player]
backend = "Clock"
clock_duration = 20

[timing]
pause_icon_ms = 1500
poll_ms = 100

[log]
enabled = true
level = "debug"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.FeedLength != 5 {
		t.Errorf("FeedLength = %d, want 5", cfg.FeedLength)
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want unicode", cfg.Icons)
	}
	if cfg.Player.Backend != BackendClock {
		t.Errorf("Backend = %q, want %q", cfg.Player.Backend, BackendClock)
	}
	if !cfg.Log.Enabled || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v, want enabled debug", cfg.Log)
	}

	items := cfg.Items()
	want := []media.Item{
		{Kind: media.Video, Source: "/srv/a.mp4"},
		{Kind: media.Image, Source: "/srv/b.png"},
	}
	if len(items) != len(want) {
		t.Fatalf("Items() len = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Items()[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}

	timing := cfg.GetTimingConfig()
	if timing.PauseIcon() != 1500*time.Millisecond {
		t.Errorf("PauseIcon = %v, want 1.5s", timing.PauseIcon())
	}
	if timing.Poll() != 100*time.Millisecond {
		t.Errorf("Poll = %v, want 100ms", timing.Poll())
	}
	if timing.Track() != 3*time.Second {
		t.Errorf("Track = %v, want 3s default", timing.Track())
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "a.toml", "icons = \"nerd\"\nfeed_length = 4\n")
	second := writeConfig(t, dir, "b.toml", "icons = \"none\"\n")

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Icons != "none" {
		t.Errorf("Icons = %q, want none", cfg.Icons)
	}
	if cfg.FeedLength != 4 {
		t.Errorf("FeedLength = %d, want 4", cfg.FeedLength)
	}
}

func TestLoadFrom_MissingFilesSkipped(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if len(cfg.Feed) != 0 {
		t.Errorf("Feed = %v, want empty", cfg.Feed)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: "feed_length = ["},
		{name: "unknown backend", content: "[player]\nbackend = \"vlc\"\n"},
		{name: "unknown kind", content: "[[feed]]\nkind = \"audio\"\nsource = \"a.mp3\"\n"},
		{name: "missing source", content: "[[feed]]\nkind = \"video\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)
			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom() error = nil, want error")
			}
		})
	}
}

func TestGetPlayerConfig_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		available   bool
		wantBackend string
	}{
		{name: "mpv found", available: true, wantBackend: BackendMPV},
		{name: "mpv missing", available: false, wantBackend: BackendClock},
		{
			name:        "explicit clock ignores mpv",
			config:      Config{Player: PlayerConfig{Backend: BackendClock}},
			available:   true,
			wantBackend: BackendClock,
		},
		{
			name:        "explicit mpv kept",
			config:      Config{Player: PlayerConfig{Backend: BackendMPV}},
			available:   false,
			wantBackend: BackendMPV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := tt.config.GetPlayerConfig(func(string) bool { return tt.available })
			if player.Backend != tt.wantBackend {
				t.Errorf("Backend = %q, want %q", player.Backend, tt.wantBackend)
			}
			if player.MPVPath != "mpv" {
				t.Errorf("MPVPath = %q, want mpv", player.MPVPath)
			}
			if player.ClockLength() != 15*time.Second {
				t.Errorf("ClockLength = %v, want 15s", player.ClockLength())
			}
		})
	}
}

func TestGetTimingConfig_Defaults(t *testing.T) {
	timing := (&Config{}).GetTimingConfig()

	if timing.PauseIcon() != 2*time.Second {
		t.Errorf("PauseIcon = %v, want 2s", timing.PauseIcon())
	}
	if timing.TapIcon() != 3*time.Second {
		t.Errorf("TapIcon = %v, want 3s", timing.TapIcon())
	}
	if timing.Track() != 3*time.Second {
		t.Errorf("Track = %v, want 3s", timing.Track())
	}
	if timing.Poll() != 250*time.Millisecond {
		t.Errorf("Poll = %v, want 250ms", timing.Poll())
	}
	if timing.Reload() != time.Second {
		t.Errorf("Reload = %v, want 1s", timing.Reload())
	}
}

func TestGetFeedLength(t *testing.T) {
	if got := (&Config{}).GetFeedLength(); got != 3 {
		t.Errorf("GetFeedLength() = %d, want 3", got)
	}
	if got := (&Config{FeedLength: 7}).GetFeedLength(); got != 7 {
		t.Errorf("GetFeedLength() = %d, want 7", got)
	}
}
