// Package media describes the items shown on feed pages and picks which
// item a page displays.
package media

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// Kind distinguishes playable items from still images.
type Kind int

const (
	Video Kind = iota
	Image
)

// String returns the kind name used in configuration.
func (k Kind) String() string {
	switch k {
	case Video:
		return "video"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// ParseKind maps a configuration value to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video":
		return Video, true
	case "image":
		return Image, true
	}
	return Video, false
}

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// KindFromPath guesses the kind from a file name or URL.
func KindFromPath(source string) Kind {
	p := source
	if IsRemote(source) {
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
		p = path.Ext(p)
	} else {
		p = filepath.Ext(p)
	}
	if lo.Contains(imageExts, strings.ToLower(p)) {
		return Image
	}
	return Video
}

// Item is one page of the feed. Items are values: a page that changes
// index gets a different Item, it never mutates the old one.
type Item struct {
	Kind   Kind
	Source string
}

// IsZero reports whether the item has no source.
func (i Item) IsZero() bool {
	return i.Source == ""
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// DefaultRotation is used when no feed is configured.
var DefaultRotation = []Item{
	{Kind: Video, Source: "https://www.w3schools.com/html/mov_bbb.mp4"},
	{Kind: Image, Source: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=800&q=80"},
	{Kind: Video, Source: "https://www.w3schools.com/html/movie.mp4"},
}

// Resolver selects the item for a page.
type Resolver struct {
	rotation []Item
}

// NewResolver returns a resolver over rotation, or DefaultRotation when
// rotation is empty.
func NewResolver(rotation []Item) *Resolver {
	items := lo.Filter(rotation, func(it Item, _ int) bool { return !it.IsZero() })
	if len(items) == 0 {
		items = DefaultRotation
	}
	return &Resolver{rotation: items}
}

// Len returns the rotation length.
func (r *Resolver) Len() int {
	return len(r.rotation)
}

// Resolve returns explicit when it names a source, otherwise the rotation
// entry at index modulo the rotation length. Negative indices wrap.
func (r *Resolver) Resolve(explicit *Item, index int) Item {
	if explicit != nil && !explicit.IsZero() {
		return *explicit
	}
	n := len(r.rotation)
	return r.rotation[((index%n)+n)%n]
}
