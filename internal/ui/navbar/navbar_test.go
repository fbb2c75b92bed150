package navbar

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reels/internal/icons"
	"github.com/llehouerou/reels/internal/ui/testutil"
)

func newBar(width int) Model {
	icons.Init("none")
	m := New()
	m.SetWidth(width)
	return m
}

func TestViewWidth(t *testing.T) {
	for _, w := range []int{80, 81, 83, 40, 120} {
		m := newBar(w)
		assert.Equal(t, w, ansi.StringWidth(m.View()), "width %d", w)
	}
	assert.Empty(t, newBar(0).View())
}

func TestViewLabels(t *testing.T) {
	m := newBar(80)
	view := testutil.StripANSI(m.View())

	for _, tab := range Tabs {
		assert.Contains(t, view, tab.String())
	}
	assert.Contains(t, view, " 3 ", "inbox badge")
}

func TestTabAt(t *testing.T) {
	m := newBar(80)

	tests := []struct {
		x    int
		want Tab
		ok   bool
	}{
		{0, Home, true},
		{19, Home, true},
		{20, Search, true},
		{45, Inbox, true},
		{79, Profile, true},
		{80, Home, false},
		{-1, Home, false},
	}
	for _, tt := range tests {
		got, ok := m.TabAt(tt.x)
		assert.Equal(t, tt.ok, ok, "x=%d", tt.x)
		if tt.ok {
			assert.Equal(t, tt.want, got, "x=%d", tt.x)
		}
	}
}

func TestTabAtMatchesView(t *testing.T) {
	m := newBar(83)
	view := m.View()
	for _, tab := range Tabs {
		x, _, ok := testutil.Locate(view, tab.String())
		require.True(t, ok, tab.String())
		got, ok := m.TabAt(x)
		require.True(t, ok)
		assert.Equal(t, tab, got, "label %s is inside its own slot", tab)
	}
}

func TestSlotsCoverWidth(t *testing.T) {
	m := newBar(83)
	next := 0
	for i := range Tabs {
		x, w := m.slot(i)
		assert.Equal(t, next, x)
		next = x + w
	}
	assert.Equal(t, 83, next)
}

func TestActive(t *testing.T) {
	m := newBar(80)
	assert.Equal(t, Home, m.Active())
	m.SetActive(Inbox)
	assert.Equal(t, Inbox, m.Active())
}

func TestReloading(t *testing.T) {
	m := newBar(80)

	cmd := m.SetReloading(true)
	require.NotNil(t, cmd, "spinner starts")
	assert.True(t, m.Reloading())
	assert.Contains(t, testutil.StripANSI(m.View()), "Reloading")
	assert.NotContains(t, testutil.StripANSI(m.View()), "Home")

	assert.Nil(t, m.SetReloading(true), "already running")

	tick, ok := cmd().(spinner.TickMsg)
	require.True(t, ok)
	m, next := m.Update(tick)
	assert.NotNil(t, next, "spinner keeps ticking while reloading")

	assert.Nil(t, m.SetReloading(false))
	assert.Contains(t, testutil.StripANSI(m.View()), "Home")
	_, next = m.Update(tick)
	assert.Nil(t, next, "spinner stops once reloading ends")
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "Unknown", Tab(99).String())
}

func TestInit(t *testing.T) {
	m := newBar(80)
	assert.Nil(t, m.Init())
	m.SetReloading(true)
	assert.NotNil(t, m.Init())
}
