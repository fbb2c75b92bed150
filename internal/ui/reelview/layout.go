package reelview

import (
	"github.com/llehouerou/reels/internal/reel"
	"github.com/llehouerou/reels/internal/surface"
)

const (
	iconWidth  = 7
	iconHeight = 3

	// rows counted from the bottom of the page
	trackFromBottom   = 2
	captionFromBottom = 6

	actionWidth = 7

	minWidth  = 12
	minHeight = 8
)

// ComputeLayout returns the geometry of the affordance icon and scrub
// track for a page of width x height cells. Render draws them at exactly
// these positions. Pages too small for controls get empty rects.
func ComputeLayout(width, height int) reel.Layout {
	if width < minWidth || height < minHeight {
		return reel.Layout{}
	}
	return reel.Layout{
		Icon: surface.Rect{
			X:      (width - iconWidth) / 2,
			Y:      (height - iconHeight) / 2,
			Width:  iconWidth,
			Height: iconHeight,
		},
		Track: surface.Rect{
			X:      1,
			Y:      height - trackFromBottom,
			Width:  width - 2,
			Height: 1,
		},
	}
}

// handleColumn is the track cell holding the handle for fraction f. A
// press on cell i of the track seeks to i/width, so the handle lands on
// the pressed cell.
func handleColumn(f float64, width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(int(f*float64(width)), 0), width-1)
}
