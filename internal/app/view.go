// internal/app/view.go
package app

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reels/internal/icons"
	"github.com/llehouerou/reels/internal/ui/navbar"
	"github.com/llehouerou/reels/internal/ui/overlay"
	"github.com/llehouerou/reels/internal/ui/reelview"
	"github.com/llehouerou/reels/internal/ui/render"
	"github.com/llehouerou/reels/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	w, h := m.pageSize()
	home := m.Nav.Active() == navbar.Home

	var page string
	if home {
		page = reelview.Render(reelview.Page{
			Item:     m.Reel.Item(),
			Caption:  m.Caption,
			Views:    m.Views,
			Snapshot: m.Reel.Snapshot(),
			Image:    m.Images != nil && m.Images.HasImage(),
		}, w, h)
	} else {
		page = placeholder(m.Nav.Active(), w, h)
	}

	if m.ShowHelp && page != "" {
		page = overlay.Place(page, m.renderHelp(), 1, 1, w)
	}
	if m.ErrorMsg != "" && page != "" {
		msg := styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, w-2))
		page = overlay.Place(page, msg, 1, 0, w)
	}

	view := m.Nav.View()
	if page != "" {
		view = page + "\n" + view
	}

	// Image uploads go first so the placement below can reference them.
	view = m.imagePending + view
	if home && m.Images != nil {
		view += m.Images.Placement(1, 1)
	}
	return view
}

func (m Model) renderHelp() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().FgSubtle).
		Padding(0, 1)
	return box.Render(m.Help.View(m.HelpKeys))
}

// placeholder is shown for tabs other than Home.
func placeholder(tab navbar.Tab, width, height int) string {
	if height <= 0 {
		return ""
	}
	s := styles.T().S()
	title := icons.Label(tab.Icon(), tab.String())
	sub := "Nothing here yet"
	if tab == navbar.Inbox {
		sub = strconv.Itoa(navbar.InboxBadge) + " new notifications"
	}
	text := s.Title.Render(title) + "\n" + s.Muted.Render(sub)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
