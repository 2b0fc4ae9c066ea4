package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	// Test that all key bindings are properly configured
	tests := []struct {
		name    string
		binding key.Binding
	}{
		// Navigation
		{"Up", keys.Up},
		{"Down", keys.Down},

		// Tab navigation
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Tab3", keys.Tab3},
		{"Tab4", keys.Tab4},

		// Actions
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Refresh", keys.Refresh},
		{"Generate", keys.Generate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("binding %s has no keys", tt.name)
			}
			if tt.binding.Help().Key == "" {
				t.Errorf("binding %s has no help key", tt.name)
			}
			if tt.binding.Help().Desc == "" {
				t.Errorf("binding %s has no help description", tt.name)
			}
		})
	}
}
