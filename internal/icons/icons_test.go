package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if Current() != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("none")
}

func TestPlayback(t *testing.T) {
	Init("none")
	defer Init("none")

	if got := Playback(true); got != ">" {
		t.Errorf("Playback(paused) = %q, want %q", got, ">")
	}
	if got := Playback(false); got != "||" {
		t.Errorf("Playback(playing) = %q, want %q", got, "||")
	}

	Init("unicode")
	if got := Playback(true); got != "▶" {
		t.Errorf("unicode Playback(paused) = %q, want %q", got, "▶")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		icon, name, want string
	}{
		{"", "Home", "Home"},
		{"⌂", "Home", "⌂ Home"},
	}
	for _, tt := range tests {
		if got := Label(tt.icon, tt.name); got != tt.want {
			t.Errorf("Label(%q, %q) = %q, want %q", tt.icon, tt.name, got, tt.want)
		}
	}
}

func TestIconSetsComplete(t *testing.T) {
	for name, set := range map[string]Icons{"nerd": nerdIcons, "unicode": unicodeIcons} {
		for field, v := range map[string]string{
			"Play": set.Play, "Pause": set.Pause, "Like": set.Like,
			"Home": set.Home, "Inbox": set.Inbox, "Reload": set.Reload,
		} {
			if v == "" {
				t.Errorf("%s icons: %s is empty", name, field)
			}
		}
	}
}
