package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorYellow)
	s.Paint(3, 0, core.ColorBackground)
	s.DrawText(3, 1, "xyz", core.ColorWhite)

	got := stripANSI(RenderScreen(s))
	want := "ab    \n   xyz"
	if got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	s := core.NewScreen(0, 0)
	if got := RenderScreen(s); got != "" {
		t.Errorf("RenderScreen() of empty screen = %q", got)
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.Paint(x, y, core.RGB(uint8(x*40), uint8(y*40), 0)) //#nosec G115
		}
	}
	lines := strings.Split(stripANSI(RenderScreen(s)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, expected 3", len(lines))
	}
	for i, l := range lines {
		if l != "    " {
			t.Errorf("row %d = %q, expected four blanks", i, l)
		}
	}
}
