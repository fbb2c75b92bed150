package imagecell

import (
	"os"
	"strings"
)

// Supported reports whether the terminal can display kitty graphics.
//
// REELS_IMAGE_PROTOCOL overrides detection: "kitty" forces it on, "none"
// turns images off.
func Supported() bool {
	switch os.Getenv("REELS_IMAGE_PROTOCOL") {
	case "kitty":
		return true
	case "none":
		return false
	}

	// Contour advertises itself but has no kitty graphics; parent terminal
	// variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
