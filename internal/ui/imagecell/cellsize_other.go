//go:build !unix

package imagecell

func cellSize() (w, h int) {
	return defaultCellW, defaultCellH
}
