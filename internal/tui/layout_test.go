package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits exactly", "hello", 5, "hello"},
		{"fits with room", "hi", 10, "hi"},
		{"truncated", "hello world", 8, "hello..."},
		{"maxLen 3 no ellipsis", "abcdef", 3, "abc"},
		{"maxLen 0", "abcdef", 0, ""},
		{"negative", "abcdef", -2, ""},
		{"tagline", "Experience the tranquility of lunar living", 20, "Experience the tr..."},
		{"multibyte runes truncated", "こんにちは世界abc", 5, "こん..."},
		{"multibyte single rune", "🚀rocket", 4, "🚀..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateWithEllipsis(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestCenterOverlay(t *testing.T) {
	t.Parallel()

	t.Run("pads into the middle", func(t *testing.T) {
		t.Parallel()
		got := centerOverlay("box", 11, 5)
		lines := strings.Split(got, "\n")
		if len(lines) < 3 {
			t.Fatalf("expected top padding, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[2], "    box") {
			t.Errorf("expected box indented by 4 on line 3, got %q", lines[2])
		}
	})

	t.Run("zero size returns content", func(t *testing.T) {
		t.Parallel()
		if got := centerOverlay("box", 0, 0); got != "box" {
			t.Errorf("centerOverlay = %q, want %q", got, "box")
		}
	})
}

func TestCompositeOverlay(t *testing.T) {
	t.Parallel()

	bg := strings.Join([]string{"a", "b", "c", "d", "e"}, "\n")

	t.Run("replaces middle rows", func(t *testing.T) {
		t.Parallel()
		got := compositeOverlay(bg, "X\nY", 0, 5)
		lines := strings.Split(got, "\n")
		want := []string{"a", "X", "Y", "d", "e"}
		if len(lines) != len(want) {
			t.Fatalf("got %d lines, want %d", len(lines), len(want))
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("pads background to height", func(t *testing.T) {
		t.Parallel()
		got := compositeOverlay("a", "X", 0, 4)
		if n := len(strings.Split(got, "\n")); n != 4 {
			t.Errorf("got %d lines, want 4", n)
		}
	})

	t.Run("centers horizontally", func(t *testing.T) {
		t.Parallel()
		got := compositeOverlay(bg, "XX", 10, 5)
		row := strings.Split(got, "\n")[2]
		if lipgloss.Width(row) != 10 || !strings.Contains(row, "    XX") {
			t.Errorf("expected centered overlay row, got %q", row)
		}
	})
}
