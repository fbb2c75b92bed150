package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNearHex(t *testing.T, want, got string) {
	t.Helper()
	w, err := colorful.Hex(want)
	require.NoError(t, err)
	g, err := colorful.Hex(got)
	require.NoError(t, err)
	assert.Less(t, w.DistanceRgb(g), 0.02, "want %s, got %s", want, got)
}

func TestApplyGradientKeepsText(t *testing.T) {
	tests := []string{"", "a", "Big Buck Bunny", "日本語"}
	for _, text := range tests {
		got := ApplyGradient(text, T().Primary, T().Secondary)
		assert.Equal(t, text, ansi.Strip(got), "gradient must not change visible text")
	}
}

func TestBlendColorsEndpoints(t *testing.T) {
	from := lipgloss.Color("#fe2c55")
	to := lipgloss.Color("#25f4ee")

	colors := blendColors(5, from, to)
	require.Len(t, colors, 5)
	assertNearHex(t, "#fe2c55", colors[0].Hex())
	assertNearHex(t, "#25f4ee", colors[4].Hex())

	assert.Len(t, blendColors(1, from, to), 1)
}

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#fe2c55")
	to := lipgloss.Color("#25f4ee")

	assertNearHex(t, "#fe2c55", string(Blend(from, to, 0)))
	assertNearHex(t, "#25f4ee", string(Blend(from, to, 1)))
	assertNearHex(t, "#25f4ee", string(Blend(from, to, 7)))
	assertNearHex(t, "#808080", string(Blend(lipgloss.Color("red"), lipgloss.Color("blue"), 0.5)))
}

func TestStylesBuiltOnce(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}
