// internal/app/update.go
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reels/internal/app/handler"
	"github.com/llehouerou/reels/internal/errmsg"
	"github.com/llehouerou/reels/internal/keymap"
	"github.com/llehouerou/reels/internal/mpris"
	"github.com/llehouerou/reels/internal/reel"
	"github.com/llehouerou/reels/internal/schedule"
	"github.com/llehouerou/reels/internal/surface"
	"github.com/llehouerou/reels/internal/ui/navbar"
	"github.com/llehouerou/reels/internal/ui/reelview"
)

// seekStep is the keyboard seek distance.
const seekStep = 5 * time.Second

// Update handles messages and returns updated model and commands. Timers
// may have changed the reload state, so the navigation bar is synced
// after every message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	chrome := m.syncChrome()
	return m, tea.Batch(cmd, chrome)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case schedule.FiredMsg:
		msg.Run()
		return m, nil

	case PollMsg:
		m.Reel.TimeUpdate()
		m.publish()
		return m, PollCmd(m.poll)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Nav, cmd = m.Nav.Update(msg)
		return m, cmd

	case mpris.CommandMsg:
		return m.handleRemote(msg)

	case ImageFlushedMsg:
		m.imagePending = ""
		return m, nil

	case ErrorClearMsg:
		if m.ErrorMsg == msg.Text {
			m.ErrorMsg = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	w, h := m.pageSize()
	m.Pager.SetViewport(w, h)
	m.Reel.SetLayout(reelview.ComputeLayout(w, h))
	m.Nav.SetWidth(w)
	m.Help.Width = w
	cmd := m.prepareImage()
	return m, cmd
}

// handleMouseMsg routes pointer input. While a drag holds the pointer
// capture, motion and release go to the captured handler wherever they
// happen; otherwise motion is dropped and presses are taps.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	p := surface.Pointer{X: msg.X, Y: msg.Y}

	if m.Surface.Captured() {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.Surface.Move(p)
		case tea.MouseActionRelease:
			m.Surface.Up(p)
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	_, pageHeight := m.pageSize()
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		if m.Nav.Active() == navbar.Home {
			cmd := m.scrollBy(1)
			return m, cmd
		}
	case tea.MouseButtonWheelUp:
		if m.Nav.Active() == navbar.Home {
			cmd := m.scrollBy(-1)
			return m, cmd
		}
	case tea.MouseButtonLeft:
		if msg.Y >= pageHeight {
			if tab, ok := m.Nav.TabAt(msg.X); ok {
				cmd := m.selectTab(tab)
				return m, cmd
			}
			return m, nil
		}
		if m.Nav.Active() == navbar.Home {
			m.Reel.Tap(p)
		}
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.Keys.Resolve(msg.String())

	// Help overlay: any key closes it, quit still quits.
	if m.ShowHelp && action != keymap.ActionQuit {
		m.ShowHelp = false
		return m, nil
	}

	_, cmd := handler.Chain(action,
		m.handleGlobalKeys,
		m.handleTabKeys,
		m.handleFeedKeys,
		m.handlePlaybackKeys,
	)
	return m, cmd
}

func (m *Model) handleGlobalKeys(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionQuit:
		m.Close()
		if m.Images != nil {
			m.imagePending += m.Images.Clear()
		}
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.ShowHelp = true
		return handler.HandledNoCmd
	case keymap.ActionRefresh:
		if m.Nav.Active() != navbar.Home {
			return handler.Handled(m.selectTab(navbar.Home))
		}
		return handler.Handled(m.refresh())
	}
	return handler.NotHandled
}

func (m *Model) handleTabKeys(action keymap.Action) handler.Result {
	tabs := map[keymap.Action]navbar.Tab{
		keymap.ActionTabHome:    navbar.Home,
		keymap.ActionTabSearch:  navbar.Search,
		keymap.ActionTabInbox:   navbar.Inbox,
		keymap.ActionTabProfile: navbar.Profile,
	}
	tab, ok := tabs[action]
	if !ok {
		return handler.NotHandled
	}
	return handler.Handled(m.selectTab(tab))
}

func (m *Model) handleFeedKeys(action keymap.Action) handler.Result {
	if m.Nav.Active() != navbar.Home {
		return handler.NotHandled
	}
	switch action {
	case keymap.ActionNextPage:
		return handler.Handled(m.scrollBy(1))
	case keymap.ActionPrevPage:
		return handler.Handled(m.scrollBy(-1))
	}
	return handler.NotHandled
}

func (m *Model) handlePlaybackKeys(action keymap.Action) handler.Result {
	if m.Nav.Active() != navbar.Home {
		return handler.NotHandled
	}
	switch action {
	case keymap.ActionPlayPause:
		return handler.Handled(m.reportPlaybackErr(errmsg.OpPlaybackToggle, m.Reel.Toggle()))
	case keymap.ActionTap:
		m.Reel.ToggleOverlays()
		return handler.HandledNoCmd
	case keymap.ActionSeekForward:
		return handler.Handled(m.reportPlaybackErr(errmsg.OpPlaybackSeek, m.Reel.SeekBy(seekStep)))
	case keymap.ActionSeekBack:
		return handler.Handled(m.reportPlaybackErr(errmsg.OpPlaybackSeek, m.Reel.SeekBy(-seekStep)))
	}
	return handler.NotHandled
}

// reportPlaybackErr surfaces transport failures. A transport that is not
// ready is a silent no-op.
func (m *Model) reportPlaybackErr(op errmsg.Op, err error) tea.Cmd {
	if err == nil || errors.Is(err, reel.ErrTransportNotReady) {
		return nil
	}
	return m.setError(errmsg.Format(op, err))
}

func (m Model) handleRemote(msg mpris.CommandMsg) (Model, tea.Cmd) {
	if m.Nav.Active() != navbar.Home {
		return m, nil
	}
	op := errmsg.OpPlaybackToggle
	var err error
	switch msg.Command {
	case mpris.CmdPlayPause:
		err = m.Reel.Toggle()
	case mpris.CmdPlay:
		err = m.Reel.Play()
	case mpris.CmdPause:
		err = m.Reel.Pause()
	case mpris.CmdNext:
		cmd := m.scrollBy(1)
		return m, cmd
	case mpris.CmdPrevious:
		cmd := m.scrollBy(-1)
		return m, cmd
	case mpris.CmdSeek:
		op = errmsg.OpPlaybackSeek
		err = m.Reel.SeekBy(msg.Offset)
	case mpris.CmdSetPosition:
		op = errmsg.OpPlaybackSeek
		err = m.Reel.SeekTo(msg.Offset)
	}
	cmd := m.reportPlaybackErr(op, err)
	m.publish()
	return m, cmd
}
