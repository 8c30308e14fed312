//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 5},
		{"playback context", "playback", 5},
		{"library context", "library", 5},
		{"settings context", "settings", 1},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}
			for _, kb := range result {
				if kb.Context != tt.context {
					t.Errorf("ByContext(%q) returned binding with context %q", tt.context, kb.Context)
				}
			}
		})
	}
}

func TestAll_EveryBindingIsComplete(t *testing.T) {
	contexts := make(map[string]bool)
	for _, c := range Contexts() {
		contexts[c] = true
	}

	for _, kb := range All {
		if kb.Action == "" {
			t.Errorf("binding %v has no action", kb.Keys)
		}
		if len(kb.Keys) == 0 {
			t.Errorf("binding %q has no keys", kb.Action)
		}
		if kb.Description == "" {
			t.Errorf("binding %q has no description", kb.Action)
		}
		if !contexts[kb.Context] {
			t.Errorf("binding %q has unknown context %q", kb.Action, kb.Context)
		}
	}
}
