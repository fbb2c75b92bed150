//go:build !linux

package mpris

import tea "github.com/charmbracelet/bubbletea"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ func(tea.Msg)) (*Adapter, error) {
	return &Adapter{}, nil
}

// Publish is a no-op on non-Linux platforms.
func (a *Adapter) Publish(_ Status) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
