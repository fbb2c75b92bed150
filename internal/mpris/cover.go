//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/reels/internal/media"
)

// coverExts lists thumbnail extensions in priority order.
var coverExts = []string{".jpg", ".png", ".jpeg", ".webp"}

// FindCover returns an art URL for source. Images are their own cover;
// local videos use a sidecar thumbnail with the same base name, then a
// cover file in the directory. Remote videos have none.
func FindCover(source string, video bool) string {
	if !video {
		if media.IsRemote(source) {
			return source
		}
		return fileURL(source)
	}
	if media.IsRemote(source) {
		return ""
	}

	base := strings.TrimSuffix(source, filepath.Ext(source))
	candidates := make([]string, 0, 2*len(coverExts))
	for _, ext := range coverExts {
		candidates = append(candidates, base+ext)
	}
	dir := filepath.Dir(source)
	for _, ext := range coverExts {
		candidates = append(candidates, filepath.Join(dir, "cover"+ext))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return fileURL(path)
		}
	}
	return ""
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return "file://" + path
}
