package transport

import (
	"sync"
	"time"
)

// Clock is a simulated transport: a looping timeline of fixed length that
// advances with wall time while playing. It is used when no real player is
// available, and renders nothing.
type Clock struct {
	mu      sync.Mutex
	now     func() time.Time
	length  time.Duration
	source  string
	loaded  bool
	playing bool
	base    time.Duration // position at anchor
	anchor  time.Time
}

// NewClock creates a clock transport whose items all last length.
func NewClock(length time.Duration) *Clock {
	return &Clock{now: time.Now, length: length}
}

// SetNowFunc replaces the time source. Intended for tests.
func (c *Clock) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Clock) Load(source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = source
	c.loaded = true
	c.playing = false
	c.base = 0
	c.anchor = c.now()
	return nil
}

func (c *Clock) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.playing = false
	c.base = 0
	c.source = ""
	return nil
}

func (c *Clock) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Clock) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNotLoaded
	}
	if c.playing {
		return nil
	}
	c.anchor = c.now()
	c.playing = true
	return nil
}

func (c *Clock) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNotLoaded
	}
	if !c.playing {
		return nil
	}
	c.base = c.positionLocked()
	c.playing = false
	return nil
}

func (c *Clock) SeekTo(pos time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNotLoaded
	}
	c.base = min(max(pos, 0), c.length)
	c.anchor = c.now()
	return nil
}

func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return 0
	}
	return c.positionLocked()
}

func (c *Clock) positionLocked() time.Duration {
	pos := c.base
	if c.playing {
		pos += c.now().Sub(c.anchor)
	}
	if c.length > 0 {
		pos %= c.length
	}
	return pos
}

func (c *Clock) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return 0
	}
	return c.length
}

// Source returns the loaded source, or "" when nothing is loaded.
func (c *Clock) Source() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

func (c *Clock) Close() error {
	return c.Stop()
}
