// Package imagecell shows still-image feed items in the terminal using the
// kitty graphics protocol.
package imagecell

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for feed images
	_ "image/jpeg" // JPEG decoder for feed images
	"image/png"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reels/internal/media"
)

const (
	defaultCellW = 8
	defaultCellH = 16
)

var nextImageID uint32

func newImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Renderer keeps at most one image in terminal memory: the one of the
// page on screen.
type Renderer struct {
	mu    sync.Mutex
	cache *Cache
	log   logrus.FieldLogger
	cellW int
	cellH int

	source string
	width  int
	height int
	id     uint32

	// size and offset of the fitted image inside the page, in cells
	cols, rows int
	offX, offY int
}

// New creates a renderer. cache may be nil.
func New(cache *Cache, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	w, h := cellSize()
	return &Renderer{
		cache: cache,
		log:   log.WithField("component", "imagecell"),
		cellW: max(w, 1),
		cellH: max(h, 1),
	}
}

// Prepare readies item for a width x height cell area and returns the
// escape sequences to write once: deletion of the previous image and
// transmission of the new one. It returns "" when nothing changed. Only
// local image files are shown; remote images and videos clear the image.
func (r *Renderer) Prepare(item media.Item, width, height int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.Source == r.source && width == r.width && height == r.height {
		return ""
	}

	out := r.clearLocked()
	r.source = item.Source
	r.width = width
	r.height = height

	if item.Kind != media.Image || media.IsRemote(item.Source) || width <= 0 || height <= 0 {
		return out
	}

	data, bounds, err := r.load(item.Source, width, height)
	if err != nil {
		r.log.WithError(err).WithField("source", item.Source).Debug("image unavailable")
		return out
	}

	r.id = newImageID()
	r.cols = min(width, ceilDiv(bounds.Dx(), r.cellW))
	r.rows = min(height, ceilDiv(bounds.Dy(), r.cellH))
	r.offX = (width - r.cols) / 2
	r.offY = (height - r.rows) / 2
	return out + TransmitPNG(data, r.id)
}

// load returns PNG data fitted to the cell area, from the cache when
// possible.
func (r *Renderer) load(source string, width, height int) ([]byte, image.Rectangle, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	if data := r.cache.Get(source, width, height, info.ModTime()); data != nil {
		if cfg, err := png.DecodeConfig(bytes.NewReader(data)); err == nil {
			return data, image.Rect(0, 0, cfg.Width, cfg.Height), nil
		}
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("decode %s: %w", source, err)
	}

	pw, ph := r.pixelSize(width, height)
	fitted := resize.Thumbnail(pw, ph, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("encode png: %w", err)
	}
	if err := r.cache.Put(source, width, height, info.ModTime(), buf.Bytes()); err != nil {
		r.log.WithError(err).Debug("image cache write failed")
	}
	return buf.Bytes(), fitted.Bounds(), nil
}

func (r *Renderer) pixelSize(width, height int) (w, h uint) {
	return uint(width * r.cellW), uint(height * r.cellH) //nolint:gosec // cell counts are small and positive
}

// Placement returns the sequence that shows the prepared image inside the
// area whose top-left cell is (row, col), both 1-based. It is "" when
// there is no image.
func (r *Renderer) Placement(row, col int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.id == 0 {
		return ""
	}
	return Place(r.id, row+r.offY, col+r.offX, r.cols, r.rows)
}

// HasImage reports whether an image is prepared.
func (r *Renderer) HasImage() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id != 0
}

// Clear forgets the current item and returns the sequence that removes its
// image from the terminal.
func (r *Renderer) Clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.clearLocked()
	r.source = ""
	r.width, r.height = 0, 0
	return out
}

func (r *Renderer) clearLocked() string {
	if r.id == 0 {
		return ""
	}
	out := Delete(r.id)
	r.id = 0
	r.cols, r.rows, r.offX, r.offY = 0, 0, 0, 0
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
