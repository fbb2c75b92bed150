// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reels/internal/errmsg"
	"github.com/llehouerou/reels/internal/feed"
	"github.com/llehouerou/reels/internal/keymap"
	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/mpris"
	"github.com/llehouerou/reels/internal/reel"
	"github.com/llehouerou/reels/internal/schedule"
	"github.com/llehouerou/reels/internal/state"
	"github.com/llehouerou/reels/internal/surface"
	"github.com/llehouerou/reels/internal/ui/imagecell"
	"github.com/llehouerou/reels/internal/ui/navbar"
)

// Remote receives status snapshots for external media controls.
type Remote interface {
	Publish(st mpris.Status)
}

// Deps are the collaborators the model drives. Pager, Surface and
// Scheduler must be set; the rest may be nil.
type Deps struct {
	Pager     *feed.Pager
	Transport reel.Transport
	Surface   *surface.Surface
	Scheduler schedule.Scheduler
	State     state.Interface
	Remote    Remote
	// Images is nil when the terminal cannot show images.
	Images *imagecell.Renderer
	Timing reel.Timing
	// Poll is the interval between transport time updates.
	Poll   time.Duration
	Logger logrus.FieldLogger

	// Start is the page to open on; negative means none requested.
	Start int
	// Restore reopens the page saved by the previous session when Start
	// is negative.
	Restore bool
}

// Model is the root application model.
type Model struct {
	Pager     *feed.Pager
	Reel      *reel.Controller
	Surface   *surface.Surface
	Transport reel.Transport
	StateMgr  state.Interface
	Remote    Remote
	Images    *imagecell.Renderer
	Nav       navbar.Model
	Keys      *keymap.Resolver
	Help      help.Model
	HelpKeys  keymap.Help
	ShowHelp  bool
	ErrorMsg  string

	Caption media.Caption
	Views   int

	// imagePending holds kitty sequences not yet written to the terminal.
	imagePending string
	startup      tea.Cmd
	poll         time.Duration
	log          logrus.FieldLogger

	Width  int
	Height int
}

// New builds the model and mounts the first page.
func New(d Deps) Model {
	log := d.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	poll := d.Poll
	if poll <= 0 {
		poll = 250 * time.Millisecond
	}

	m := Model{
		Pager:     d.Pager,
		Surface:   d.Surface,
		Transport: d.Transport,
		StateMgr:  d.State,
		Remote:    d.Remote,
		Images:    d.Images,
		Nav:       navbar.New(),
		Keys:      keymap.NewResolver(keymap.All),
		Help:      help.New(),
		HelpKeys:  keymap.NewHelp(),
		poll:      poll,
		log:       log.WithField("component", "app"),
	}
	m.Help.ShowAll = true

	m.Reel = reel.New(m.Pager.Current().Item, d.Transport, reel.Options{
		Scheduler: d.Scheduler,
		Surface:   d.Surface,
		Timing:    d.Timing,
		Logger:    log,
	})

	m.restorePage(d.Start, d.Restore)
	m.Pager.StartReload()
	m.Nav.SetReloading(m.Pager.Reloading())
	m.startup = m.mountCurrent()
	return m
}

// restorePage opens the requested page, or the one saved last session.
// A saved page is only reused when it still shows the same source.
func (m *Model) restorePage(start int, restore bool) {
	if start >= 0 {
		m.Pager.JumpTo(start)
		return
	}
	if !restore || m.StateMgr == nil {
		return
	}
	saved, err := m.StateMgr.GetFeed()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
		return
	}
	if saved == nil {
		return
	}
	pages := m.Pager.Pages()
	if saved.PageIndex >= 0 && saved.PageIndex < len(pages) && pages[saved.PageIndex].Item.Source == saved.Source {
		m.Pager.JumpTo(saved.PageIndex)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		PollCmd(m.poll),
		tea.SetWindowTitle("reels"),
		m.Nav.Init(),
		m.startup,
	)
}

// Close releases the per-item state. The caller owns the transport and
// the state manager.
func (m *Model) Close() {
	m.Reel.Close()
	m.Pager.Close()
}
