package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-farm/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.Clear()
	s.DrawTextColor(0, 0, "soil", core.ColorBrown)
	s.DrawTextColor(4, 0, "corn", core.ColorDarkGreen)
	s.DrawText(0, 1, "Score: 10")
	s.SetColor(0, 2, 'C', core.Color(250)) // not in the palette

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("Row %d: expected width 12, got %d", i, w)
		}
	}
	for _, want := range []string{"soil", "corn", "Score: 10", "C"} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered screen is missing %q", want)
		}
	}
}
