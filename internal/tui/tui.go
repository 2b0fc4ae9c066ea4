// Package tui provides the interactive style browser for styleforge.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/styleforge/styleforge/internal/service"
	"github.com/styleforge/styleforge/internal/tui/ui"
	"github.com/styleforge/styleforge/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabStyles Tab = iota
	TabVariables
	TabPalette
	TabConfig
)

var tabNames = []string{"Styles", "Variables", "Palette", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	stylesView    views.StylesModel
	variablesView views.VariablesModel
	paletteView   views.PaletteModel
	configView    views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	themePinned   bool
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	// Initialize theme from config
	themeName := services.Config.Get().TUITheme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabStyles,
		themeProvider: themeProvider,
		themePinned:   themeName != "",
		styles:        styles,
		keys:          keys,
		stylesView:    views.NewStylesModel(services, styles, keys),
		variablesView: views.NewVariablesModel(services, styles, keys),
		paletteView:   views.NewPaletteModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.stylesView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle global keys first
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabStyles
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabVariables
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabPalette
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4):
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update view dimensions
		contentHeight := m.height - 4 // Account for tabs and status bar
		m.stylesView.SetSize(m.width, contentHeight)
		m.variablesView.SetSize(m.width, contentHeight)
		m.paletteView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.StyleThemeSelectedMsg:
		// A style and theme were picked in the styles view. Route the
		// selection to the inspection views and jump to Variables.
		m.variablesView, cmd = m.variablesView.Update(msg)
		cmds = append(cmds, cmd)
		m.paletteView, cmd = m.paletteView.Update(msg)
		cmds = append(cmds, cmd)
		m.activeTab = TabVariables

		// Unless the user pinned a chrome theme, follow the variant of
		// the theme being inspected so light styles get a light chrome.
		if !m.themePinned {
			before := m.themeProvider.CurrentName()
			if name := m.themeProvider.MatchVariant(msg.Dark); name != before {
				m.styles = m.themeProvider.Styles()
				m = m.broadcastThemeChange(name)
			}
		}
		return m, tea.Batch(cmds...)

	case ui.ThemeChangeRequestMsg:
		// An explicit pick from the theme selector pins the chrome theme
		m.themeProvider.SetTheme(msg.ThemeName)
		m.themePinned = true
		newTheme := m.themeProvider.CurrentName()

		// Update styles
		m.styles = m.themeProvider.Styles()
		m = m.broadcastThemeChange(newTheme)

		// Save theme to config
		return m, m.saveThemeConfig(newTheme)
	}

	// Update the active view
	switch m.activeTab {
	case TabStyles:
		m.stylesView, cmd = m.stylesView.Update(msg)
	case TabVariables:
		m.variablesView, cmd = m.variablesView.Update(msg)
	case TabPalette:
		m.paletteView, cmd = m.paletteView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Render tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	// Render active view
	switch m.activeTab {
	case TabStyles:
		b.WriteString(m.stylesView.View())
	case TabVariables:
		b.WriteString(m.variablesView.View())
	case TabPalette:
		b.WriteString(m.paletteView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	// Render status bar
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	// Help overlay
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	// View-specific keys
	switch m.activeTab {
	case TabStyles:
		if m.stylesView.InThemeList() {
			parts = append(parts, m.renderKeyHelp("Enter", "inspect"))
			parts = append(parts, m.renderKeyHelp("g", "generate"))
			parts = append(parts, m.renderKeyHelp("Esc", "back"))
		} else {
			parts = append(parts, m.renderKeyHelp("Enter", "themes"))
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		}
	case TabVariables, TabPalette:
		parts = append(parts, m.renderKeyHelp("r", "refresh"))
	case TabConfig:
		parts = append(parts, m.renderKeyHelp("t", "themes"))
	}

	// Global keys
	parts = append(parts, m.renderKeyHelp("1-4", "views"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabStyles:
		return m.stylesView.Init()
	case TabVariables:
		return m.variablesView.Init()
	case TabPalette:
		return m.paletteView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// broadcastThemeChange sends the restyled ThemeChangedMsg to every view
func (m Model) broadcastThemeChange(themeName string) Model {
	themeMsg := ui.ThemeChangedMsg{
		ThemeName: themeName,
		Styles:    m.styles,
	}
	m.stylesView, _ = m.stylesView.Update(themeMsg)
	m.variablesView, _ = m.variablesView.Update(themeMsg)
	m.paletteView, _ = m.paletteView.Update(themeMsg)
	m.configView, _ = m.configView.Update(themeMsg)
	return m
}

// saveThemeConfig saves the TUI theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.TUITheme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	// Global keys
	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	// View-specific keys
	switch m.activeTab {
	case TabStyles:
		help.WriteString(m.styles.StatLabel.Render("Styles:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  Enter      Open style / inspect theme\n")
		help.WriteString("  g          Generate selected theme\n")
		help.WriteString("  Esc        Back to style list\n")
		help.WriteString("  r          Refresh\n")
	case TabVariables:
		help.WriteString(m.styles.StatLabel.Render("Variables:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Scroll variables\n")
		help.WriteString("  r          Refresh\n")
	case TabPalette:
		help.WriteString(m.styles.StatLabel.Render("Palette:"))
		help.WriteString("\n")
		help.WriteString("  r          Refresh\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
