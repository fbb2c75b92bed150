// Package reelview renders one feed page: the media layer, the caption,
// the action column and the transport overlays of the reel controller.
package reelview

import (
	"hash/fnv"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reels/internal/icons"
	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/reel"
	"github.com/llehouerou/reels/internal/ui/overlay"
	"github.com/llehouerou/reels/internal/ui/render"
	"github.com/llehouerou/reels/internal/ui/styles"
)

// Page is everything needed to draw one page.
type Page struct {
	Item     media.Item
	Caption  media.Caption
	Views    int
	Snapshot reel.Snapshot
	// Image is set when a terminal image covers the media area, so the
	// placeholder card is not drawn under it.
	Image bool
}

// Counters are the static engagement numbers of the action column.
type Counters struct {
	Likes    int
	Comments int
	Shares   int
}

// CountersFor derives stable counters from the source, so an item shows
// the same numbers every time it comes back.
func CountersFor(source string) Counters {
	h := fnv.New32a()
	_, _ = h.Write([]byte(source))
	sum := int(h.Sum32())
	return Counters{
		Likes:    sum%250000 + 120,
		Comments: (sum/7)%4000 + 3,
		Shares:   (sum/13)%900 + 1,
	}
}

// Render draws p into exactly height lines of width cells.
func Render(p Page, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	view := render.Block(width, height)
	if !p.Image {
		view = overlay.Place(view, mediaCard(p.Item, width), 0, max(height/3-1, 0), width)
	}

	if width < minWidth || height < minHeight {
		return overlay.Place(view, render.Fit(render.Sanitize(p.Caption.Title), width), 0, height-1, width)
	}

	if width >= 30 {
		column := actionColumn(CountersFor(p.Item.Source), p.Views)
		top := max(height-captionFromBottom-lipgloss.Height(column), 1)
		view = overlay.Place(view, column, width-actionWidth, top, width)
	}

	captionWidth := width - 2
	if width >= 30 {
		captionWidth -= actionWidth
	}
	view = overlay.Place(view, caption(p.Caption, captionWidth), 1, height-captionFromBottom, width)

	if p.Item.Kind != media.Video {
		return view
	}

	layout := ComputeLayout(width, height)
	s := p.Snapshot
	if s.AffordanceVisible {
		view = overlay.Place(view, affordance(s.State), layout.Icon.X, layout.Icon.Y, width)
	}
	if s.TrackVisible {
		view = overlay.Place(view, track(s.Progress, layout.Track.Width), layout.Track.X, layout.Track.Y, width)
		if s.Drag.Active && s.Drag.Preview != nil {
			bubble := styles.T().S().Preview.Render(reel.FormatPreview(*s.Drag.Preview))
			w := lipgloss.Width(bubble)
			x := layout.Track.X + handleColumn(s.Progress, layout.Track.Width) - w/2
			x = min(max(x, 0), width-w)
			view = overlay.Place(view, bubble, x, layout.Track.Y-1, width)
		}
	}
	return view
}

// mediaCard is the placeholder drawn where no terminal image is shown.
func mediaCard(item media.Item, width int) string {
	s := styles.T().S()
	glyph := icons.Current().Image
	if item.Kind == media.Video {
		glyph = icons.Current().Play
	}
	name := path.Base(item.Source)
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	lines := []string{
		render.Center(s.Card.Render(" "+glyph+" "+item.Kind.String()+" "), width),
		render.Center(s.Subtle.Render(render.Truncate(name, width-4)), width),
	}
	return strings.Join(lines, "\n")
}

func actionColumn(c Counters, views int) string {
	s := styles.T().S()
	ic := icons.Current()
	entry := func(glyph string, n int, style lipgloss.Style) string {
		return render.Center(style.Render(glyph), actionWidth) + "\n" +
			render.Center(s.Muted.Render(compact(n)), actionWidth)
	}
	return strings.Join([]string{
		entry(ic.Like, c.Likes, lipgloss.NewStyle().Foreground(styles.T().Primary)),
		entry(ic.Comment, c.Comments, s.Action),
		entry(ic.Share, c.Shares, s.Action),
		entry(ic.Views, views, s.Action),
	}, "\n")
}

// compact formats a counter the way feeds do: 999, 1.2K, 3.4M.
func compact(n int) string {
	if n < 1000 {
		return humanize.Comma(int64(n))
	}
	v, unit := humanize.ComputeSI(float64(n))
	return humanize.FtoaWithDigits(v, 1) + strings.ToUpper(unit)
}

func caption(c media.Caption, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()
	t := styles.T()

	author := ""
	if c.Author != "" {
		author = s.Title.Render(render.Truncate("@"+render.Sanitize(c.Author), width))
	}
	title := styles.ApplyBoldGradient(render.Truncate(c.Title, width), t.FgBase, t.Secondary)
	added := s.Muted.Render(render.Truncate(c.Added, width))
	return strings.Join([]string{author, title, added}, "\n")
}

func affordance(state reel.PlaybackState) string {
	glyph := icons.Playback(state == reel.Paused)
	return styles.T().S().Affordance.
		Width(iconWidth).
		Height(iconHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(glyph)
}

func track(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()
	t := styles.T()
	handle := handleColumn(progress, width)

	var b strings.Builder
	if handle > 0 {
		end := styles.Blend(t.Primary, t.Secondary, progress)
		b.WriteString(styles.ApplyGradient(strings.Repeat("━", handle), t.Primary, end))
	}
	b.WriteString(s.Handle.Render("●"))
	if rest := width - handle - 1; rest > 0 {
		b.WriteString(s.TrackEmpty.Render(strings.Repeat("─", rest)))
	}
	return b.String()
}
