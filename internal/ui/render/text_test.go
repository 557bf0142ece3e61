package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Blue in Green", "Blue in Green"},
		{"control characters removed", "Blue\x00 in\x1b Green", "Blue in Green"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "ab\xffc", "abc"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"wide characters kept", "音楽", "音楽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"sanitized before measuring", "he\x00llo", 5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Label(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("hi", 5); got != "hi   " {
		t.Errorf("Pad = %q, want %q", got, "hi   ")
	}
	if got := Pad("hello world", 5); got != "hello world" {
		t.Errorf("Pad should not shorten, got %q", got)
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name      string
		left      string
		right     string
		width     int
		wantWidth int
	}{
		{"basic row", "left", "right", 20, 20},
		{"too narrow keeps one space", "left", "right", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.left, tt.right, tt.width)
			if w := lipgloss.Width(got); w != tt.wantWidth {
				t.Errorf("Row width = %d, want %d", w, tt.wantWidth)
			}
			if !strings.HasPrefix(got, tt.left) || !strings.HasSuffix(got, tt.right) {
				t.Errorf("Row(%q, %q) = %q", tt.left, tt.right, got)
			}
		})
	}
}
