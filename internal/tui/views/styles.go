package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/styleforge/styleforge/internal/service"
	"github.com/styleforge/styleforge/internal/tui/ui"
)

// StylesModel is the model for the styles view. It shows the styles in
// the styles directory and lets the user drill into a style's themes.
type StylesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int

	stylesList []service.StyleInfo
	cursor     int
	loadErr    string

	// Theme drilldown state
	browsingThemes bool
	selectedStyle  string
	themes         []service.ThemeInfo
	themeCursor    int

	// Result of the last generation triggered from this view
	lastStatus string
	lastErr    bool
}

// NewStylesModel creates a new styles view model
func NewStylesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StylesModel {
	return StylesModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m StylesModel) Init() tea.Cmd {
	return m.loadStyles()
}

// stylesLoadedMsg is sent when the style list has been loaded
type stylesLoadedMsg struct {
	styles []service.StyleInfo
	err    error
}

// stylesThemesLoadedMsg is sent when a style's themes have been loaded
type stylesThemesLoadedMsg struct {
	style  string
	themes []service.ThemeInfo
	err    error
}

// generationDoneMsg is sent when a generation triggered from this view finishes
type generationDoneMsg struct {
	result *service.GenerateResult
	err    error
}

// Update implements tea.Model
func (m StylesModel) Update(msg tea.Msg) (StylesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.browsingThemes {
			return m.handleThemeKeys(msg)
		}
		return m.handleStyleKeys(msg)

	case stylesLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			m.stylesList = nil
			return m, nil
		}
		m.loadErr = ""
		m.stylesList = msg.styles
		m.cursor = clampCursor(m.cursor, len(m.stylesList))
		return m, nil

	case stylesThemesLoadedMsg:
		if msg.err != nil {
			m.lastStatus = msg.err.Error()
			m.lastErr = true
			return m, nil
		}
		m.browsingThemes = true
		m.selectedStyle = msg.style
		m.themes = msg.themes
		m.themeCursor = 0
		for i, t := range m.themes {
			if t.Default {
				m.themeCursor = i
				break
			}
		}
		return m, nil

	case generationDoneMsg:
		if msg.err != nil {
			m.lastStatus = msg.err.Error()
			m.lastErr = true
		} else {
			m.lastStatus = fmt.Sprintf("Generated %s/%s: %d written, %d up to date",
				msg.result.Style, msg.result.Theme, msg.result.Written, msg.result.Skipped)
			m.lastErr = false
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

func (m StylesModel) handleStyleKeys(msg tea.KeyMsg) (StylesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.stylesList)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.stylesList) > 0 {
			return m, m.loadThemes(m.stylesList[m.cursor].Name)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadStyles()
	}
	return m, nil
}

func (m StylesModel) handleThemeKeys(msg tea.KeyMsg) (StylesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.browsingThemes = false
		m.themes = nil
	case key.Matches(msg, m.keys.Select):
		if len(m.themes) > 0 {
			style := m.selectedStyle
			picked := m.themes[m.themeCursor]
			return m, func() tea.Msg {
				return ui.StyleThemeSelectedMsg{Style: style, Theme: picked.Name, Dark: picked.Dark}
			}
		}
	case key.Matches(msg, m.keys.Generate):
		if len(m.themes) > 0 {
			return m, m.generate(m.selectedStyle, m.themes[m.themeCursor].Name)
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StylesModel) View() string {
	var b strings.Builder

	if m.browsingThemes {
		b.WriteString(m.styles.ViewTitle.Render("Themes: " + m.selectedStyle))
		b.WriteString("\n\n")
		b.WriteString(m.renderThemeList())
	} else {
		b.WriteString(m.styles.ViewTitle.Render("Styles"))
		b.WriteString("\n\n")
		b.WriteString(m.renderStyleList())
	}

	if m.lastStatus != "" {
		b.WriteString("\n")
		if m.lastErr {
			b.WriteString(m.styles.Error.Render(m.lastStatus))
		} else {
			b.WriteString(m.styles.Success.Render(m.lastStatus))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m StylesModel) renderStyleList() string {
	if m.loadErr != "" {
		return m.styles.Error.Render(m.loadErr) + "\n"
	}
	if len(m.stylesList) == 0 {
		return m.styles.StatusHelp.Render("No styles found in "+m.services.Style.StylesDir()) + "\n"
	}

	var b strings.Builder
	for i, info := range m.stylesList {
		line := m.renderStyleLine(info)
		if i == m.cursor {
			b.WriteString(m.styles.ItemSelected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m StylesModel) renderStyleLine(info service.StyleInfo) string {
	if info.Problem != "" {
		return m.styles.Error.Render(info.Name + " (broken: " + info.Problem + ")")
	}

	name := m.styles.ItemName.Render(info.Name)
	detail := fmt.Sprintf("%d %s, default %s",
		len(info.Themes), pluralize("theme", len(info.Themes)), info.DefaultTheme)
	if !info.HasTemplate {
		detail += ", no template"
	}
	return name + " " + m.styles.ItemDetail.Render(detail)
}

func (m StylesModel) renderThemeList() string {
	if len(m.themes) == 0 {
		return m.styles.StatusHelp.Render("This style has no themes") + "\n"
	}

	var b strings.Builder
	for i, t := range m.themes {
		line := m.renderThemeLine(t)
		if i == m.themeCursor {
			b.WriteString(m.styles.ItemSelected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("Enter inspect variables  g generate  Esc back"))
	b.WriteString("\n")
	return b.String()
}

func (m StylesModel) renderThemeLine(t service.ThemeInfo) string {
	if t.Problem != "" {
		return m.styles.Error.Render(t.Name + " (broken: " + t.Problem + ")")
	}

	name := m.styles.ItemName.Render(t.Name)
	var badges []string
	if t.Dark {
		badges = append(badges, m.styles.DarkBadge.Render("dark"))
	} else {
		badges = append(badges, m.styles.LightBadge.Render("light"))
	}
	if t.Default {
		badges = append(badges, m.styles.Success.Render("default"))
	}
	detail := m.styles.ItemDetail.Render(fmt.Sprintf("%d %s", t.Colors, pluralize("color", t.Colors)))
	return name + " " + strings.Join(badges, " ") + " " + detail
}

// SetSize sets the view dimensions
func (m *StylesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InThemeList reports whether the view is drilled into a style's themes
func (m StylesModel) InThemeList() bool {
	return m.browsingThemes
}

func (m StylesModel) loadStyles() tea.Cmd {
	return func() tea.Msg {
		infos, err := m.services.Style.List()
		return stylesLoadedMsg{styles: infos, err: err}
	}
}

func (m StylesModel) loadThemes(styleName string) tea.Cmd {
	return func() tea.Msg {
		themes, err := m.services.Theme.List(styleName)
		return stylesThemesLoadedMsg{style: styleName, themes: themes, err: err}
	}
}

func (m StylesModel) generate(styleName, themeName string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Generate.Generate(service.GenerateOptions{
			Style: styleName,
			Theme: themeName,
		})
		return generationDoneMsg{result: result, err: err}
	}
}
