// Package mpris exposes the active reel on the MPRIS D-Bus interface.
// Remote requests are forwarded to the UI loop as messages; D-Bus property
// reads are served from a status snapshot the UI publishes.
package mpris

import (
	"sync"
	"time"
)

// Command is a remote request.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdNext
	CmdPrevious
	CmdSeek        // relative, by Offset
	CmdSetPosition // absolute, to Offset
)

// CommandMsg carries a remote request into the UI loop.
type CommandMsg struct {
	Command Command
	Offset  time.Duration
}

// Status is what D-Bus clients can read about the active reel.
type Status struct {
	Source   string
	Title    string
	Author   string
	Video    bool
	Playing  bool
	Position time.Duration
	Duration time.Duration
	Index    int
	Len      int
	Views    int
}

// statusStore guards the published snapshot; D-Bus calls arrive on
// their own goroutines.
type statusStore struct {
	mu     sync.RWMutex
	status Status
}

func (s *statusStore) set(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

func (s *statusStore) get() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
