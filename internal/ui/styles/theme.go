// Package styles holds the colour palette and lipgloss styles of the feed.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accents
	Primary   lipgloss.Color // played part of the track, active tab
	Secondary lipgloss.Color // gradient end, like counter

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgPage    lipgloss.Color // caption card behind media
	BgOverlay lipgloss.Color // affordance icon and preview bubble
	BgNav     lipgloss.Color

	TrackEmpty lipgloss.Color
	Badge      lipgloss.Color
	Error      lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles used by the views.
type Styles struct {
	Base        lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Title       lipgloss.Style
	Card        lipgloss.Style // media placeholder card
	Affordance  lipgloss.Style // play/pause icon box
	Preview     lipgloss.Style // scrub time bubble
	TrackFill   lipgloss.Style
	TrackEmpty  lipgloss.Style
	Handle      lipgloss.Style
	Action      lipgloss.Style // right-hand counters
	Nav         lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	Badge       lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#fe2c55"),
	Secondary: lipgloss.Color("#25f4ee"),

	FgBase:   lipgloss.Color("#f0f0f0"),
	FgMuted:  lipgloss.Color("#a0a0a0"),
	FgSubtle: lipgloss.Color("#585858"),

	BgPage:    lipgloss.Color("#121212"),
	BgOverlay: lipgloss.Color("#303030"),
	BgNav:     lipgloss.Color("#000000"),

	TrackEmpty: lipgloss.Color("#4a4a4a"),
	Badge:      lipgloss.Color("#fe2c55"),
	Error:      lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Card: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Background(t.BgPage),
		Affordance: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgOverlay).
			Bold(true),
		Preview: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgOverlay).
			Padding(0, 1),
		TrackFill:  lipgloss.NewStyle().Foreground(t.Primary),
		TrackEmpty: lipgloss.NewStyle().Foreground(t.TrackEmpty),
		Handle:     lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
		Action:     base,
		Nav:        lipgloss.NewStyle().Background(t.BgNav),
		NavActive: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgNav).
			Bold(true).
			Underline(true),
		NavInactive: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Background(t.BgNav),
		Badge: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.Badge).
			Bold(true),
		Status: lipgloss.NewStyle().Foreground(t.FgMuted),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
