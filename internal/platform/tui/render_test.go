package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/hotcold/internal/core"
)

func TestLevelColorsHaveBackground(t *testing.T) {
	tests := []struct {
		name  string
		color core.Color
		bg    any
	}{
		{"air", core.ColorAir, backdrop},
		{"lava", core.ColorLava, backdrop},
		{"water", core.ColorWater, backdrop},
		{"goo", core.ColorGoo, backdrop},
		{"hot actor", core.ColorHot, backdrop},
		{"cold actor", core.ColorCold, backdrop},
		{"wall", core.ColorWall, wallShadow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := styleFor(tt.color).GetBackground(); got != tt.bg {
				t.Errorf("background = %v, want %v", got, tt.bg)
			}
		})
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).GetBackground(); got != styleFor(core.ColorDefault).GetBackground() {
		t.Errorf("unknown color background = %v, want default", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.FillRect(0, 0, 8, 1, '█', core.ColorWall)
	s.FillRect(0, 1, 8, 1, ' ', core.ColorAir)
	s.SetColored(2, 1, '@', core.ColorHot)
	s.SetColored(5, 1, '@', core.ColorCold)
	s.FillRect(0, 2, 4, 1, '▄', core.ColorLava)
	s.FillRect(4, 2, 4, 1, '█', core.ColorWall)

	if got, want := ansi.Strip(RenderScreen(s)), s.String(); got != want {
		t.Errorf("stripped render = %q, want %q", got, want)
	}
}
