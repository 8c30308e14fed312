package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "no truncation needed",
			input:    "hello",
			maxWidth: 10,
			want:     "hello",
		},
		{
			name:     "exact fit",
			input:    "hello",
			maxWidth: 5,
			want:     "hello",
		},
		{
			name:     "truncation with ellipsis",
			input:    "hello world",
			maxWidth: 8,
			want:     "hello w…",
		},
		{
			name:     "zero width",
			input:    "hello",
			maxWidth: 0,
			want:     "",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 10,
			want:     "",
		},
		{
			name:     "control characters removed first",
			input:    "he\x00llo",
			maxWidth: 10,
			want:     "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncate_WideCharacters(t *testing.T) {
	got := Truncate("日本語のタイトル", 7)
	if w := lipgloss.Width(got); w > 7 {
		t.Errorf("Truncate() width = %d, want <= 7 (%q)", w, got)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string untouched", "Neon Dreams", "Neon Dreams"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "a\nb", "ab"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"c1 control dropped", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPadAndRow(t *testing.T) {
	if got := TruncateAndPad("abcdef", 4); got != "abc…" {
		t.Errorf("TruncateAndPad() = %q, want %q", got, "abc…")
	}
	if got := TruncateAndPad("ab", 4); got != "ab  " {
		t.Errorf("TruncateAndPad() = %q, want %q", got, "ab  ")
	}
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row() with no room = %q", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center() = %q, want %q", got, "  ab  ")
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Center() = %q, want %q", got, " abc  ")
	}
	if got := Center("toolong", 3); got != "toolong" {
		t.Errorf("Center() = %q, want input unchanged", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{5 * time.Second, "0:05"},
		{3*time.Minute + 56*time.Second, "3:56"},
		{59*time.Minute + 59*time.Second + 900*time.Millisecond, "59:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
