package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/styleforge/styleforge/internal/colorutil"
)

// swatchBlock is the text rendered with a color as its background
const swatchBlock = "      "

// RenderSwatch renders a block of the given color, or a placeholder for
// values that are not colors
func RenderSwatch(value string) string {
	if !colorutil.IsValid(value) {
		return swatchBlock
	}
	// Strip any alpha channel so lipgloss gets a plain #rrggbb
	hex, err := colorutil.Normalize(value)
	if err != nil {
		return swatchBlock
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(swatchBlock)
}

// titleCase uppercases the first letter of an ASCII word
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampCursor keeps a cursor within [0, n) after the underlying list changes
func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
