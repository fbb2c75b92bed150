package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/samber/lo"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "feed", "playback", "tabs"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionRefresh, []string{"r"}, "Refresh feed", "global"},

	// Feed
	{ActionNextPage, []string{"j", "down", "pgdown"}, "Next reel", "feed"},
	{ActionPrevPage, []string{"k", "up", "pgup"}, "Previous reel", "feed"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionTap, []string{"enter"}, "Show/hide controls", "playback"},
	{ActionSeekForward, []string{"shift+right", "l"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"shift+left", "h"}, "Seek -5s", "playback"},

	// Tabs
	{ActionTabHome, []string{"1"}, "Home", "tabs"},
	{ActionTabSearch, []string{"2"}, "Search", "tabs"},
	{ActionTabInbox, []string{"3"}, "Inbox", "tabs"},
	{ActionTabProfile, []string{"4"}, "Profile", "tabs"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	return lo.Filter(All, func(b Binding, _ int) bool {
		return b.Context == context
	})
}

// helpKey is the label shown in help for a key string.
func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyBinding converts b into a bubbles key binding for help rendering.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey(b.Keys[0]), b.Description),
	)
}

// Help implements help.KeyMap over the bindings.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help key map: a short line with the essentials and
// one column per context.
func NewHelp() Help {
	byAction := lo.KeyBy(All, func(b Binding) Action { return b.Action })
	short := lo.Map(
		[]Action{ActionPlayPause, ActionNextPage, ActionPrevPage, ActionHelp, ActionQuit},
		func(a Action, _ int) key.Binding { return byAction[a].KeyBinding() },
	)
	full := lo.Map([]string{"playback", "feed", "global", "tabs"}, func(ctx string, _ int) []key.Binding {
		return lo.Map(ByContext(ctx), func(b Binding, _ int) key.Binding { return b.KeyBinding() })
	})
	return Help{short: short, full: full}
}

func (h Help) ShortHelp() []key.Binding { return h.short }

func (h Help) FullHelp() [][]key.Binding { return h.full }
