package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a Bubble Tea model in tests, recording the commands its
// Update returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m and sends it an initial window size.
func NewHarness(m tea.Model, width, height int) *Harness {
	h := &Harness{model: m}
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// Send delivers msg to the model and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Key sends a rune key such as "j" or " ".
func (h *Harness) Key(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SpecialKey sends a non-rune key.
func (h *Harness) SpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Press sends a left-button press at cell (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Drag sends a motion event with the left button held.
func (h *Harness) Drag(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

// Release sends a button release at cell (x, y).
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Tap sends a press followed by a release at the same cell.
func (h *Harness) Tap(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// Wheel sends a wheel step; down scrolls toward the next page.
func (h *Harness) Wheel(x, y int, down bool) tea.Cmd {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ViewContains checks if the plain view contains substr.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
