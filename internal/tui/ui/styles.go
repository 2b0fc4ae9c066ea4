package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TabSeparator lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Lists (styles, themes, variables)
	ItemSelected lipgloss.Style
	ItemNormal   lipgloss.Style
	ItemName     lipgloss.Style
	ItemDetail   lipgloss.Style

	// Variable table
	VarName   lipgloss.Style
	VarValue  lipgloss.Style
	VarOrigin lipgloss.Style

	// Theme badges
	DarkBadge  lipgloss.Style
	LightBadge lipgloss.Style

	// Key/value detail lines
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	accent := lipgloss.Color("212")     // Pink
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red
	fg := lipgloss.Color("252")
	statusBg := lipgloss.Color("236")
	selectedBg := lipgloss.Color("237")

	return buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, statusBg, selectedBg)
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (tabs, titles)
// - Secondary: Cyan (status keys, selection)
// - Accent: BrightPurple (variable names, badges)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	// Get colors from registry (uses current theme)
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg, muted)
}

func buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, statusBg, selectedBg lipgloss.TerminalColor) Styles {
	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		TabSeparator: lipgloss.NewStyle().
			Foreground(muted).
			SetString("|"),

		// Content area
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(statusBg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Lists
		ItemSelected: lipgloss.NewStyle().
			Background(selectedBg).
			Bold(true),
		ItemNormal: lipgloss.NewStyle(),
		ItemName: lipgloss.NewStyle().
			Foreground(primary),
		ItemDetail: lipgloss.NewStyle().
			Foreground(muted),

		// Variable table
		VarName: lipgloss.NewStyle().
			Foreground(accent),
		VarValue: lipgloss.NewStyle().
			Foreground(fg),
		VarOrigin: lipgloss.NewStyle().
			Foreground(muted),

		// Theme badges
		DarkBadge: lipgloss.NewStyle().
			Foreground(accent),
		LightBadge: lipgloss.NewStyle().
			Foreground(warning),

		// Key/value detail lines
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
