//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionPrevPage, []string{"k", "up"}, "Previous", "feed"},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}
	if r.bindings == nil {
		t.Error("bindings map is nil")
	}
	if r.byAction == nil {
		t.Error("byAction map is nil")
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"enter", ActionTap},
		{"j", ActionNextPage},
		{"down", ActionNextPage},
		{"k", ActionPrevPage},
		{"shift+right", ActionSeekForward},
		{"shift+left", ActionSeekBack},
		{"r", ActionRefresh},
		{"1", ActionTabHome},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionNextPage, []string{"j", "down"}, "Next", "feed"},
		{ActionNextPage, []string{"down", "pgdown"}, "Next", "other"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionNextPage)
	want := []string{"j", "down", "pgdown"}
	if !slices.Equal(keys, want) {
		t.Errorf("KeysFor = %v, want %v (deduplicated, in order)", keys, want)
	}
	if keys := r.KeysFor(ActionQuit); len(keys) != 0 {
		t.Errorf("KeysFor(unbound) = %v, want empty", keys)
	}
}

func TestAll_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestByContext(t *testing.T) {
	playback := ByContext("playback")
	if len(playback) == 0 {
		t.Fatal("ByContext(playback) returned nothing")
	}
	for _, b := range playback {
		if b.Context != "playback" {
			t.Errorf("binding %q has context %q", b.Action, b.Context)
		}
	}
}

func TestNewHelp(t *testing.T) {
	h := NewHelp()

	short := h.ShortHelp()
	if len(short) != 5 {
		t.Fatalf("ShortHelp len = %d, want 5", len(short))
	}
	if short[0].Help().Key != "space" {
		t.Errorf("first short key = %q, want space", short[0].Help().Key)
	}
	if len(h.FullHelp()) != 4 {
		t.Errorf("FullHelp columns = %d, want 4", len(h.FullHelp()))
	}
}
