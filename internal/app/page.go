// internal/app/page.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reels/internal/errmsg"
	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/mpris"
	"github.com/llehouerou/reels/internal/reel"
	"github.com/llehouerou/reels/internal/state"
	"github.com/llehouerou/reels/internal/ui/navbar"
	"github.com/llehouerou/reels/internal/ui/reelview"
)

// pageSize is the area left to a page above the navigation bar.
func (m Model) pageSize() (width, height int) {
	return m.Width, max(m.Height-navbar.Height, 0)
}

// mountCurrent mounts the current page on the controller and records the
// view. It returns the command flushing any image sequences.
func (m *Model) mountCurrent() tea.Cmd {
	page := m.Pager.Current()
	item := page.Item

	var cmds []tea.Cmd
	if err := m.Reel.SetItem(item); err != nil {
		cmds = append(cmds, m.setError(errmsg.FormatWith(errmsg.OpMediaLoad, item.Source, err)))
	}
	m.Reel.SetLayout(reelview.ComputeLayout(m.pageSize()))
	m.Caption = media.ReadCaption(item)

	if m.StateMgr != nil {
		views, err := m.StateMgr.RecordView(item.Source)
		if err != nil {
			m.log.WithError(err).Debug("record view")
		}
		m.Views = views
		m.StateMgr.SaveFeed(state.FeedState{PageIndex: page.Index, Source: item.Source})
	}

	cmds = append(cmds, m.prepareImage())
	m.publish()
	m.log.WithField("page", page.Index).WithField("source", item.Source).Debug("page mounted")
	return tea.Batch(cmds...)
}

// prepareImage queues the image sequences for the current page.
func (m *Model) prepareImage() tea.Cmd {
	if m.Images == nil {
		return nil
	}
	var seq string
	if m.Nav.Active() == navbar.Home {
		w, h := m.pageSize()
		seq = m.Images.Prepare(m.Pager.Current().Item, w, h)
	} else {
		seq = m.Images.Clear()
	}
	if seq == "" {
		return nil
	}
	m.imagePending += seq
	return ImageFlushCmd()
}

// scrollBy pages the feed and remounts when the page changed.
func (m *Model) scrollBy(delta int) tea.Cmd {
	if !m.Pager.ScrollBy(delta) {
		return nil
	}
	return m.mountCurrent()
}

// refresh restarts the feed from the first page and shows the reload
// indicator.
func (m *Model) refresh() tea.Cmd {
	changed := m.Pager.Refresh()
	cmd := m.syncChrome()
	if changed {
		return tea.Batch(cmd, m.mountCurrent())
	}
	return cmd
}

// selectTab handles a tab press. Pressing Home while home refreshes the
// feed; leaving Home pauses the reel and drops its overlays.
func (m *Model) selectTab(tab navbar.Tab) tea.Cmd {
	prev := m.Nav.Active()
	if tab == navbar.Home && prev == navbar.Home {
		return m.refresh()
	}
	if tab == prev {
		return nil
	}
	m.Nav.SetActive(tab)

	switch {
	case prev == navbar.Home:
		if err := m.Reel.Pause(); err != nil {
			m.log.WithError(err).Debug("pause on leave")
		}
		m.Reel.Close()
		return m.prepareImage()
	case tab == navbar.Home:
		return m.mountCurrent()
	}
	return nil
}

// syncChrome mirrors the pager's reload indicator on the navigation bar.
func (m *Model) syncChrome() tea.Cmd {
	return m.Nav.SetReloading(m.Pager.Reloading())
}

// setError shows text on the error line for a while.
func (m *Model) setError(text string) tea.Cmd {
	m.ErrorMsg = text
	m.log.Warn(text)
	return ErrorClearCmd(text)
}

// publish sends the current status to the remote controls.
func (m *Model) publish() {
	if m.Remote == nil {
		return
	}
	snap := m.Reel.Snapshot()
	item := m.Reel.Item()
	m.Remote.Publish(mpris.Status{
		Source:   item.Source,
		Title:    m.Caption.Title,
		Author:   m.Caption.Author,
		Video:    item.Kind == media.Video,
		Playing:  snap.Ready && snap.State == reel.Playing && m.Nav.Active() == navbar.Home,
		Position: snap.Position,
		Duration: snap.Duration,
		Index:    m.Pager.Index(),
		Len:      m.Pager.Len(),
		Views:    m.Views,
	})
}
