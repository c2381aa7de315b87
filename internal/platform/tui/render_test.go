package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flounder/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "HP", core.ColorHeart)
	s.DrawText(3, 0, "BOSS", core.ColorBoss)
	s.DrawText(0, 2, "floor", core.Color("#123456"))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() produced %d lines, expected 3", len(lines))
	}

	// Styling must not change the visible width
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
	for _, want := range []string{"HP", "BOSS", "floor"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestStyleCacheReusesStyles(t *testing.T) {
	c := styleCache{}
	c.style(core.ColorGold)
	c.style(core.ColorGold)
	c.style(core.ColorDefault)
	if len(c) != 2 {
		t.Errorf("cache size = %d, expected 2", len(c))
	}
}

func TestOverlayBottom(t *testing.T) {
	base := "a\nb\nc\nd"

	if got := overlayBottom(base, "X\nY"); got != "a\nb\nX\nY" {
		t.Errorf("overlayBottom() = %q", got)
	}
	if got := overlayBottom("a", "X\nY"); got != "X\nY" {
		t.Errorf("overlayBottom() with tall panel = %q", got)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() overflow = %q", got)
	}
}
