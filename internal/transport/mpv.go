package transport

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	defaultPoll       = 250 * time.Millisecond
)

// MPV drives an external mpv process over its JSON-IPC socket. The process
// is started lazily on the first Load and kept idle between items.
// Position and duration are served from a cache refreshed by a poller so
// the UI never blocks on IPC to read them.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	pollStop   chan struct{}
	poll       time.Duration
	log        logrus.FieldLogger

	mu sync.Mutex // serializes socket exchanges

	stateMu  sync.RWMutex
	loaded   bool
	gen      uint64 // bumped by Load and Stop; polls from an older file are dropped
	position time.Duration
	duration time.Duration
}

// NewMPV creates an mpv transport. binary defaults to "mpv" on PATH.
func NewMPV(binary string, log logrus.FieldLogger) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MPV{
		binary: binary,
		poll:   defaultPoll,
		log:    log.WithField("transport", "mpv"),
	}
}

// Available reports whether the mpv binary can be found.
func Available(binary string) bool {
	if binary == "" {
		binary = "mpv"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

func (m *MPV) start() error {
	if m.running() {
		return nil
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("reels-%x.sock", randomBytes))

	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--idle=yes",
		"--force-window=yes",
		"--loop-file=inf",
		"--keep-open=yes",
		"--title=reels",
	}

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			m.log.Warn("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.startPoller()
	m.log.WithField("socket", m.socketPath).Info("mpv started")
	return nil
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

func (m *MPV) running() bool {
	if m.exited == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

// Load replaces the current file. Playback stays paused until Play.
func (m *MPV) Load(source string) error {
	target, err := sanitizeMediaTarget(source)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	if err := m.start(); err != nil {
		return err
	}

	m.stateMu.Lock()
	m.loaded = false
	m.gen++
	m.position = 0
	m.duration = 0
	m.stateMu.Unlock()

	if _, err := m.sendCommand("set_property", "pause", true); err != nil {
		return fmt.Errorf("pause before load: %w", err)
	}
	if _, err := m.sendCommand("loadfile", target, "replace"); err != nil {
		return fmt.Errorf("loadfile: %w", err)
	}

	m.stateMu.Lock()
	m.loaded = true
	m.stateMu.Unlock()
	m.log.WithField("source", target).Debug("loaded")
	return nil
}

// Stop unloads the current file, leaving mpv idle.
func (m *MPV) Stop() error {
	m.stateMu.Lock()
	wasLoaded := m.loaded
	m.loaded = false
	m.gen++
	m.position = 0
	m.duration = 0
	m.stateMu.Unlock()

	if !wasLoaded || !m.running() {
		return nil
	}
	_, err := m.sendCommand("stop")
	return err
}

func (m *MPV) Ready() bool {
	m.stateMu.RLock()
	loaded := m.loaded
	m.stateMu.RUnlock()
	return loaded && m.running()
}

func (m *MPV) Play() error {
	if !m.Ready() {
		return ErrNotLoaded
	}
	_, err := m.sendCommand("set_property", "pause", false)
	return err
}

func (m *MPV) Pause() error {
	if !m.Ready() {
		return ErrNotLoaded
	}
	_, err := m.sendCommand("set_property", "pause", true)
	return err
}

// SeekTo moves to an absolute position and updates the cached position
// so the next read reflects the seek.
func (m *MPV) SeekTo(pos time.Duration) error {
	if !m.Ready() {
		return ErrNotLoaded
	}
	if _, err := m.sendCommand("seek", pos.Seconds(), "absolute"); err != nil {
		return err
	}
	m.stateMu.Lock()
	m.position = pos
	m.stateMu.Unlock()
	return nil
}

func (m *MPV) Position() time.Duration {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.position
}

func (m *MPV) Duration() time.Duration {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.duration
}

func (m *MPV) startPoller() {
	stop := make(chan struct{})
	m.pollStop = stop
	exited := m.exited
	go func() {
		ticker := time.NewTicker(m.poll)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-exited:
				return
			case <-ticker.C:
				m.refresh()
			}
		}
	}()
}

// refresh reads time-pos and duration into the cache. Properties are
// unavailable while a file is loading; that keeps the cached zero.
func (m *MPV) refresh() {
	m.stateMu.RLock()
	loaded, gen := m.loaded, m.gen
	m.stateMu.RUnlock()
	if !loaded {
		return
	}

	pos, err := m.getFloatProperty("time-pos")
	if err != nil {
		if !errors.Is(err, errPropertyUnavailable) {
			m.log.WithError(err).Debug("poll time-pos")
		}
		return
	}
	dur, err := m.getFloatProperty("duration")
	if err != nil {
		dur = 0
	}

	m.storeTimes(gen, secondsToDuration(pos), secondsToDuration(dur))
}

// storeTimes caches a poll result unless another Load or Stop happened
// since the poll started. It reports whether the values were kept.
func (m *MPV) storeTimes(gen uint64, pos, dur time.Duration) bool {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	if !m.loaded || m.gen != gen {
		return false
	}
	m.position = pos
	m.duration = dur
	return true
}

// Close quits mpv and removes its socket.
func (m *MPV) Close() error {
	if m.pollStop != nil {
		close(m.pollStop)
		m.pollStop = nil
	}
	if !m.running() {
		return nil
	}

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// sanitizeMediaTarget rejects sources that mpv could read as flags or
// that use unsupported schemes.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty source")
	}
	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in source")
	}
	if strings.HasPrefix(l, "-") {
		return "", errors.New("source must not start with '-'")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}
