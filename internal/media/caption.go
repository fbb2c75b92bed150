package media

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"
)

// Caption is the text shown at the bottom of a page.
type Caption struct {
	Title  string
	Author string
	Added  string // relative time, e.g. "3 days ago"; empty when unknown
}

// ReadCaption builds a caption for item. Local files are read for
// embedded metadata; remote sources only use their URL. It never fails:
// missing metadata falls back to the file name.
func ReadCaption(item Item) Caption {
	if IsRemote(item.Source) {
		return remoteCaption(item.Source)
	}

	c := Caption{Title: filepath.Base(item.Source)}

	info, err := os.Stat(item.Source)
	if err != nil {
		return c
	}
	c.Added = humanize.Time(info.ModTime())

	if item.Kind != Video {
		return c
	}

	f, err := os.Open(item.Source)
	if err != nil {
		return c
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return c
	}
	if t := strings.TrimSpace(m.Title()); t != "" {
		c.Title = t
	}
	c.Author = strings.TrimSpace(m.Artist())
	return c
}

func remoteCaption(source string) Caption {
	u, err := url.Parse(source)
	if err != nil {
		return Caption{Title: source}
	}
	title := path.Base(u.Path)
	if title == "." || title == "/" {
		title = u.Host
	}
	return Caption{Title: title, Author: u.Host}
}
