package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

// neutral stands in for colours that are not #rrggbb, such as ANSI
// palette indices.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient colours each grapheme of text along a gradient from
// from to to. The visible text is unchanged.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle(), from, to)
}

// ApplyBoldGradient is ApplyGradient in bold. Captions use it for the
// item title.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle().Bold(true), from, to)
}

// Blend returns the colour at fraction t (clamped to [0,1]) between from
// and to, blended in HCL space.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	return lipgloss.Color(blend(parseHex(from), parseHex(to), t).Hex())
}

func gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	steps := blendColors(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(base.Foreground(lipgloss.Color(steps[i].Hex())).Render(cluster))
	}
	return b.String()
}

func graphemes(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// blendColors returns size evenly spaced stops from from to to.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1, c2 := parseHex(from), parseHex(to)
	if size < 2 {
		return []colorful.Color{c1}
	}
	return lo.Times(size, func(i int) colorful.Color {
		return blend(c1, c2, float64(i)/float64(size-1))
	})
}

func blend(from, to colorful.Color, t float64) colorful.Color {
	return from.BlendHcl(to, lo.Clamp(t, 0, 1)).Clamped()
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
