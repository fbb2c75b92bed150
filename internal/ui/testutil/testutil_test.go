package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("bold")
	assert.Equal(t, "bold", StripANSI(styled))
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "ab", StripANSI("a\x1b_Ga=d,d=i,i=1\x1b\\b"), "kitty APC sequences are removed")
}

func TestFindLine(t *testing.T) {
	out := "first\nsecond line\nthird"
	assert.Equal(t, "second line", FindLine(out, "second"))
	assert.Equal(t, "", FindLine(out, "missing"))
	assert.True(t, ContainsLine(out, "third"))
}

func TestLocate(t *testing.T) {
	view := "......\n..日x..\n......"
	x, y, ok := Locate(view, "x")
	assert.True(t, ok)
	assert.Equal(t, 4, x, "wide rune counts two cells")
	assert.Equal(t, 1, y)

	_, _, ok = Locate(view, "z")
	assert.False(t, ok)
}

func TestCell(t *testing.T) {
	view := "abc\ndef"
	assert.Equal(t, "e", Cell(view, 1, 1))
	assert.Equal(t, "", Cell(view, 0, 5))
	assert.Equal(t, "", Cell(view, -1, 0))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 2, CountLines("a\n   \nb\n"))
	assert.Equal(t, 0, CountLines(""))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 5, MaxWidth("ab\nabcde\nabc"))
}

type echoModel struct {
	msgs []tea.Msg
}

func (m echoModel) Init() tea.Cmd { return nil }

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.msgs = append(m.msgs, msg)
	return m, func() tea.Msg { return msg }
}

func (m echoModel) View() string { return "echo" }

func TestHarness(t *testing.T) {
	h := NewHarness(echoModel{}, 80, 24)
	h.Tap(3, 4)
	h.Key("j")

	m := h.Model().(echoModel)
	assert.Len(t, m.msgs, 4)
	assert.Equal(t, tea.WindowSizeMsg{Width: 80, Height: 24}, m.msgs[0])

	press, ok := m.msgs[1].(tea.MouseMsg)
	assert.True(t, ok)
	assert.Equal(t, tea.MouseActionPress, press.Action)
	assert.Equal(t, 3, press.X)

	assert.Len(t, h.Commands(), 4)
	assert.Equal(t, m.msgs[3], ExecuteCmd(h.Commands()[3]))
	h.ClearCommands()
	assert.Empty(t, h.Commands())
	assert.True(t, h.ViewContains("echo"))
}
