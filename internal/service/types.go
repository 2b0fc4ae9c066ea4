// Package service provides the business logic layer for the styleforge
// application. It wraps the registry, engine, cache, and config packages,
// providing a clean API for both CLI and TUI frontends.
package service

// StyleInfo summarizes one style for listings.
type StyleInfo struct {
	// Name is the style directory name
	Name string
	// Title is the display name from the style definition
	Title string
	// DefaultTheme is the theme applied by default
	DefaultTheme string
	// Themes lists the available theme names
	Themes []string
	// HasTemplate reports whether the style carries a stylesheet template
	HasTemplate bool
	// Problem describes why the style failed to load, "" when healthy
	Problem string
}

// ThemeInfo summarizes one theme of a style.
type ThemeInfo struct {
	// Name is the theme name
	Name string
	// Dark reports whether the theme declares itself dark
	Dark bool
	// Default reports whether this is the style's default theme
	Default bool
	// Colors is the number of color variables the theme defines
	Colors int
	// Problem describes why the theme failed to parse, "" when healthy
	Problem string
}

// VariableValue is one resolved template variable.
type VariableValue struct {
	// Name is the variable name
	Name string
	// Value is the resolved value
	Value string
	// IsColor reports whether the value parses as a hex color
	IsColor bool
	// FromTheme reports whether the value comes from the theme rather
	// than the style definition
	FromTheme bool
	// Override reports whether the value was set on the command line
	Override bool
}

// VariablesResult contains the resolved variable set for a style and theme.
type VariablesResult struct {
	Style     string
	Theme     string
	Dark      bool
	Variables []VariableValue
}

// StyleHealth contains the findings of a style validation run.
type StyleHealth struct {
	// Style is the validated style name
	Style string
	// ThemeCount is the number of themes found
	ThemeCount int
	// ResourceCount is the number of SVG resource templates found
	ResourceCount int
	// FontCount is the number of font files found
	FontCount int
	// Problems lists everything a generation run would trip over
	Problems []string
}

// Healthy reports whether validation found no problems.
func (h StyleHealth) Healthy() bool {
	return len(h.Problems) == 0
}

// GenerateOptions controls a generation run.
type GenerateOptions struct {
	// Style names the style to generate; required
	Style string
	// Theme names the theme; empty means the style's default theme
	Theme string
	// Force rewrites artifacts even when their content is unchanged
	Force bool
	// Overrides are runtime variable overrides (highest precedence)
	Overrides map[string]string
}

// GenerateResult summarizes a generation run.
type GenerateResult struct {
	Style      string
	Theme      string
	Dark       bool
	OutputDir  string
	Stylesheet string
	Written    int
	Skipped    int
	Warnings   []string
}
