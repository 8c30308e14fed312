//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLibraryScan,
			err:      nil,
			expected: "",
		},
		{
			name:     "library scan operation",
			op:       OpLibraryScan,
			err:      errors.New("permission denied"),
			expected: "Failed to scan library: permission denied",
		},
		{
			name:     "seek operation",
			op:       OpPlaybackSeek,
			err:      errors.New("no track loaded"),
			expected: "Failed to seek: no track loaded",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("invalid config"),
			expected: "Failed to load configuration: invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackLoad,
			context:  "Neon Dreams",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpTrackLoad,
			context:  "Neon Dreams",
			err:      errors.New("unsupported format"),
			expected: "Failed to load track 'Neon Dreams': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpTrackLoad,
			context:  "",
			err:      errors.New("unsupported format"),
			expected: "Failed to load track: unsupported format",
		},
		{
			name:     "watch with path context",
			op:       OpLibraryWatch,
			context:  "/home/user/music",
			err:      errors.New("too many open files"),
			expected: "Failed to watch library folders '/home/user/music': too many open files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"single line", "single line"},
		{"first\nsecond", "first"},
		{"  padded  \nrest", "padded"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Line(tt.input); got != tt.expected {
			t.Errorf("Line(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpLibraryScan, OpLibraryWatch,
		OpTrackLoad, OpPlaybackSeek,
		OpConfigLoad, OpLogOpen, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}
			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
