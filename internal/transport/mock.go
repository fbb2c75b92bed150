package transport

import "time"

// Mock is a test double for Transport.
type Mock struct {
	ready     bool
	playing   bool
	position  time.Duration
	duration  time.Duration
	loads     []string
	commands  []string
	seekCalls []time.Duration
	err       error
}

// NewMock creates a ready mock with the given duration.
func NewMock(duration time.Duration) *Mock {
	return &Mock{ready: true, duration: duration}
}

func (m *Mock) Load(source string) error {
	m.loads = append(m.loads, source)
	if m.err != nil {
		return m.err
	}
	m.ready = true
	m.playing = false
	m.position = 0
	return nil
}

func (m *Mock) Stop() error {
	m.commands = append(m.commands, "stop")
	m.ready = false
	m.playing = false
	return nil
}

func (m *Mock) Ready() bool { return m.ready }

func (m *Mock) Play() error {
	if !m.ready {
		return ErrNotLoaded
	}
	if m.err != nil {
		return m.err
	}
	m.commands = append(m.commands, "play")
	m.playing = true
	return nil
}

func (m *Mock) Pause() error {
	if !m.ready {
		return ErrNotLoaded
	}
	if m.err != nil {
		return m.err
	}
	m.commands = append(m.commands, "pause")
	m.playing = false
	return nil
}

func (m *Mock) SeekTo(pos time.Duration) error {
	if !m.ready {
		return ErrNotLoaded
	}
	if m.err != nil {
		return m.err
	}
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
	return nil
}

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Close() error { return nil }

// Test helpers

func (m *Mock) SetReady(ready bool) { m.ready = ready }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// SetError makes subsequent commands fail with err.
func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Playing() bool { return m.playing }

func (m *Mock) Loads() []string { return m.loads }

// Commands returns play/pause/stop commands in the order received.
func (m *Mock) Commands() []string { return m.commands }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// ResetCalls clears recorded commands and seeks.
func (m *Mock) ResetCalls() {
	m.commands = nil
	m.seekCalls = nil
}
