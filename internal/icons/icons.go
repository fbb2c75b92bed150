package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Play    string
	Pause   string
	Like    string
	Comment string
	Share   string
	Views   string
	Home    string
	Search  string
	Inbox   string
	Profile string
	Reload  string
	Image   string
}

var (
	nerdIcons = Icons{
		Play:    "\uf04b",     // nf-fa-play
		Pause:   "\uf04c",     // nf-fa-pause
		Like:    "\U000f08d0", // nf-md-heart
		Comment: "\U000f0189", // nf-md-comment
		Share:   "\U000f0496", // nf-md-share
		Views:   "\uf06e",     // nf-fa-eye
		Home:    "\uf015",     // nf-fa-home
		Search:  "\uf002",     // nf-fa-search
		Inbox:   "\uf01c",     // nf-fa-inbox
		Profile: "\uf007",     // nf-fa-user
		Reload:  "\U000f0453", // nf-md-reload
		Image:   "\uf03e",     // nf-fa-image
	}

	unicodeIcons = Icons{
		Play:    "▶",
		Pause:   "⏸",
		Like:    "♥",
		Comment: "💬",
		Share:   "↗",
		Views:   "👁",
		Home:    "⌂",
		Search:  "🔍",
		Inbox:   "✉",
		Profile: "👤",
		Reload:  "⟳",
		Image:   "🖼",
	}

	noneIcons = Icons{
		Play:    ">",
		Pause:   "||",
		Like:    "<3",
		Comment: "[c]",
		Share:   "->",
		Views:   "#",
		Home:    "",
		Search:  "",
		Inbox:   "",
		Profile: "",
		Reload:  "*",
		Image:   "[img]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set. Call this once at startup with the config
// value; unknown styles fall back to "none".
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Playback returns the affordance glyph for a paused or playing reel.
// A paused reel shows Play (the action a tap performs).
func Playback(paused bool) string {
	if paused {
		return current.Play
	}
	return current.Pause
}

// Label formats a navigation label with its icon. For "none" style the
// label is shown alone.
func Label(icon, name string) string {
	if icon == "" {
		return name
	}
	return icon + " " + name
}
