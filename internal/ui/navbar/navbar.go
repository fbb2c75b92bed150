// Package navbar renders the bottom navigation bar and resolves clicks on
// its tabs.
package navbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reels/internal/icons"
	"github.com/llehouerou/reels/internal/ui/render"
	"github.com/llehouerou/reels/internal/ui/styles"
)

// Tab is a navigation destination.
type Tab int

const (
	Home Tab = iota
	Search
	Inbox
	Profile
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{Home, Search, Inbox, Profile}

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case Home:
		return "Home"
	case Search:
		return "Search"
	case Inbox:
		return "Inbox"
	case Profile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// Icon returns the glyph of the tab in the active icon style.
func (t Tab) Icon() string {
	ic := icons.Current()
	switch t {
	case Home:
		return ic.Home
	case Search:
		return ic.Search
	case Inbox:
		return ic.Inbox
	case Profile:
		return ic.Profile
	}
	return ""
}

// InboxBadge is the unread count shown on the Inbox tab.
const InboxBadge = 3

// Height is the number of rows the bar occupies.
const Height = 1

// Model is the navigation bar state.
type Model struct {
	active    Tab
	reloading bool
	spinner   spinner.Model
	width     int
}

// New returns a bar with Home active.
func New() Model {
	return Model{
		active:  Home,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// SetWidth sets the bar width in cells.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Active returns the highlighted tab.
func (m Model) Active() Tab {
	return m.active
}

// SetActive highlights t.
func (m *Model) SetActive(t Tab) {
	m.active = t
}

// Reloading reports whether the reload indicator is shown.
func (m Model) Reloading() bool {
	return m.reloading
}

// SetReloading toggles the reload indicator. Turning it on returns the
// command that starts the spinner.
func (m *Model) SetReloading(on bool) tea.Cmd {
	wasOn := m.reloading
	m.reloading = on
	if on && !wasOn {
		return m.spinner.Tick
	}
	return nil
}

// Init starts the spinner when the bar is created already reloading.
func (m Model) Init() tea.Cmd {
	if m.reloading {
		return m.spinner.Tick
	}
	return nil
}

// Update advances the spinner while reloading.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !m.reloading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return m, cmd
}

// slot returns the start column and width of the i-th tab.
func (m Model) slot(i int) (x, w int) {
	n := len(Tabs)
	base := m.width / n
	extra := m.width % n
	x = i*base + min(i, extra)
	w = base
	if i < extra {
		w++
	}
	return x, w
}

// TabAt returns the tab under column x.
func (m Model) TabAt(x int) (Tab, bool) {
	if x < 0 || x >= m.width {
		return Home, false
	}
	for i, t := range Tabs {
		start, w := m.slot(i)
		if x >= start && x < start+w {
			return t, true
		}
	}
	return Home, false
}

// View renders the bar as a single line of exactly the configured width.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	for i, t := range Tabs {
		_, w := m.slot(i)
		label := icons.Label(t.Icon(), t.String())
		if t == Home && m.reloading {
			label = m.spinner.View() + " Reloading"
		}
		style := s.NavInactive
		if t == m.active {
			style = s.NavActive
		}
		text := style.Render(render.Truncate(label, w))
		if t == Inbox && w >= len(label)+5 {
			text += s.Nav.Render(" ") + s.Badge.Render(" "+strconv.Itoa(InboxBadge)+" ")
		}
		b.WriteString(s.Nav.Render(render.Center(text, w)))
	}
	return b.String()
}
