package ui

// ThemeChangeRequestMsg is sent when a view requests a UI theme change
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views after the UI theme has changed,
// carrying the restyled Styles so views can re-render with the new colors
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// StyleSelectedMsg is sent when the user selects a style in the styles view
type StyleSelectedMsg struct {
	Style string
}

// StyleThemeSelectedMsg is sent when the user selects a theme for a style.
// Dark carries the theme's variant so the chrome can follow it.
type StyleThemeSelectedMsg struct {
	Style string
	Theme string
	Dark  bool
}

// StatusMsg carries a transient status line for the status bar
type StatusMsg struct {
	Text  string
	IsErr bool
}
