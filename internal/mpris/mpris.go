//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Adapter connects the feed to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	store  *statusStore
}

// New creates and starts a new MPRIS adapter. Remote requests are passed
// to send as CommandMsg values.
func New(send func(tea.Msg)) (*Adapter, error) {
	a := &Adapter{store: &statusStore{}}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{send: send, store: a.store}

	a.server = server.NewServer("reels", rootAdapter, playerAdapter)

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Publish updates the snapshot served to D-Bus clients.
func (a *Adapter) Publish(st Status) {
	a.store.set(st)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Reels", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"video/mp4", "video/webm", "image/jpeg", "image/png"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	send  func(tea.Msg)
	store *statusStore
}

func (p *playerAdapter) command(c Command, offset time.Duration) error {
	if p.send != nil {
		p.send(CommandMsg{Command: c, Offset: offset})
	}
	return nil
}

func (p *playerAdapter) Next() error     { return p.command(CmdNext, 0) }
func (p *playerAdapter) Previous() error { return p.command(CmdPrevious, 0) }
func (p *playerAdapter) Pause() error    { return p.command(CmdPause, 0) }
func (p *playerAdapter) PlayPause() error {
	return p.command(CmdPlayPause, 0)
}
func (p *playerAdapter) Stop() error { return p.command(CmdPause, 0) }
func (p *playerAdapter) Play() error { return p.command(CmdPlay, 0) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.command(CmdSeek, time.Duration(offset)*time.Microsecond)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.command(CmdSetPosition, time.Duration(position)*time.Microsecond)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	st := p.store.get()
	switch {
	case !st.Video:
		return types.PlaybackStatusStopped, nil
	case st.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.store.get()
	if st.Source == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(st.Source)),
		Length:      types.Microseconds(st.Duration.Microseconds()),
		Title:       st.Title,
		TrackNumber: st.Index + 1,
		Url:         st.Source,
		UseCount:    st.Views,
	}
	if st.Author != "" {
		meta.Artist = []string{st.Author}
	}
	if art := FindCover(st.Source, st.Video); art != "" {
		meta.ArtUrl = art
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.store.get().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	st := p.store.get()
	return st.Index < st.Len-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.store.get().Index > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.store.get().Video, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.store.get().Video, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	st := p.store.get()
	return st.Video && st.Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
