// Package feed pages through the media items of the feed, one item per
// full-screen page.
package feed

import (
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/schedule"
)

// DefaultLength is the number of pages when no explicit feed is configured.
const DefaultLength = 3

// ScrollLock reports whether paging is currently disabled.
type ScrollLock interface {
	ScrollLocked() bool
}

// Page is one resolved feed page.
type Page struct {
	Index int
	Item  media.Item
}

// Pager tracks the current page, the viewport and the refresh token.
// It is used from the UI goroutine only.
type Pager struct {
	pages  []media.Item
	index  int
	width  int
	height int
	lock   ScrollLock

	sched        schedule.Scheduler
	reloadFor    time.Duration
	reloadTimer  schedule.Timer
	reloading    bool
	refreshToken int
}

// Options configures a Pager.
type Options struct {
	// Items are explicit pages. When empty, Length pages are resolved from
	// the rotation.
	Items    []media.Item
	Length   int
	Rotation *media.Resolver
	Lock     ScrollLock

	Scheduler schedule.Scheduler
	// Reload is how long the reload indicator stays up after a refresh.
	Reload time.Duration
}

// New builds a pager over the resolved pages.
func New(opts Options) *Pager {
	rotation := opts.Rotation
	if rotation == nil {
		rotation = media.NewResolver(nil)
	}
	length := opts.Length
	if len(opts.Items) > 0 {
		length = len(opts.Items)
	}
	if length <= 0 {
		length = DefaultLength
	}

	pages := lo.Times(length, func(i int) media.Item {
		var explicit *media.Item
		if i < len(opts.Items) {
			explicit = &opts.Items[i]
		}
		return rotation.Resolve(explicit, i)
	})

	reload := opts.Reload
	if reload <= 0 {
		reload = time.Second
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = schedule.NewProgram()
	}

	return &Pager{
		pages:     pages,
		lock:      opts.Lock,
		sched:     sched,
		reloadFor: reload,
	}
}

// Len returns the number of pages.
func (p *Pager) Len() int { return len(p.pages) }

// Index returns the current page index.
func (p *Pager) Index() int { return p.index }

// Current returns the page on screen.
func (p *Pager) Current() Page {
	return Page{Index: p.index, Item: p.pages[p.index]}
}

// Pages returns all pages in order.
func (p *Pager) Pages() []Page {
	return lo.Map(p.pages, func(item media.Item, i int) Page {
		return Page{Index: i, Item: item}
	})
}

func (p *Pager) locked() bool {
	return p.lock != nil && p.lock.ScrollLocked()
}

// Next snaps to the following page. It reports whether the page changed.
func (p *Pager) Next() bool { return p.ScrollBy(1) }

// Prev snaps to the previous page. It reports whether the page changed.
func (p *Pager) Prev() bool { return p.ScrollBy(-1) }

// ScrollBy moves delta pages, clamped to the feed. Refused while the
// scroll lock is held.
func (p *Pager) ScrollBy(delta int) bool {
	if p.locked() {
		return false
	}
	return p.JumpTo(p.index + delta)
}

// JumpTo snaps to page i, clamped to the feed. Refused while the scroll
// lock is held.
func (p *Pager) JumpTo(i int) bool {
	if p.locked() {
		return false
	}
	i = lo.Clamp(i, 0, len(p.pages)-1)
	if i == p.index {
		return false
	}
	p.index = i
	return true
}

// SetViewport records the terminal size available to a page.
func (p *Pager) SetViewport(width, height int) {
	p.width = max(width, 0)
	p.height = max(height, 0)
}

// Viewport returns the page size.
func (p *Pager) Viewport() (width, height int) {
	return p.width, p.height
}

// Refresh bumps the refresh token, returns to the first page and shows
// the reload indicator. It reports whether the page changed. Paging back
// is skipped while a drag holds the scroll lock.
func (p *Pager) Refresh() bool {
	p.refreshToken++
	p.StartReload()
	if p.locked() {
		return false
	}
	return p.JumpTo(0)
}

// Token returns the current refresh token.
func (p *Pager) Token() int { return p.refreshToken }

// StartReload shows the reload indicator for the configured duration.
func (p *Pager) StartReload() {
	if p.reloadTimer != nil {
		p.reloadTimer.Stop()
	}
	p.reloading = true
	token := p.refreshToken
	p.reloadTimer = p.sched.AfterFunc(p.reloadFor, func() {
		if p.refreshToken != token {
			return
		}
		p.reloading = false
		p.reloadTimer = nil
	})
}

// Reloading reports whether the reload indicator is showing.
func (p *Pager) Reloading() bool { return p.reloading }

// Close stops the reload timer.
func (p *Pager) Close() {
	if p.reloadTimer != nil {
		p.reloadTimer.Stop()
		p.reloadTimer = nil
	}
}
