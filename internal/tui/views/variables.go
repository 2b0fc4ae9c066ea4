package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/styleforge/styleforge/internal/service"
	"github.com/styleforge/styleforge/internal/tui/ui"
)

// maxVisibleVars is the maximum number of variables shown at once
const maxVisibleVars = 20

// VariablesModel is the model for the variables view. It shows the fully
// resolved variable set of the selected style and theme.
type VariablesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int

	styleName string
	themeName string
	result    *service.VariablesResult
	loadErr   string
	cursor    int
	offset    int
}

// NewVariablesModel creates a new variables view model
func NewVariablesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) VariablesModel {
	return VariablesModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m VariablesModel) Init() tea.Cmd {
	if m.styleName == "" {
		return nil
	}
	return m.loadVariables()
}

// variablesLoadedMsg is sent when the variable set has been resolved
type variablesLoadedMsg struct {
	result *service.VariablesResult
	err    error
}

// Update implements tea.Model
func (m VariablesModel) Update(msg tea.Msg) (VariablesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.updateOffset()
			}
		case key.Matches(msg, m.keys.Down):
			if m.result != nil && m.cursor < len(m.result.Variables)-1 {
				m.cursor++
				m.updateOffset()
			}
		case key.Matches(msg, m.keys.Refresh):
			if m.styleName != "" {
				return m, m.loadVariables()
			}
		}

	case ui.StyleThemeSelectedMsg:
		m.styleName = msg.Style
		m.themeName = msg.Theme
		m.cursor = 0
		m.offset = 0
		return m, m.loadVariables()

	case variablesLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			m.result = nil
			return m, nil
		}
		m.loadErr = ""
		m.result = msg.result
		m.cursor = clampCursor(m.cursor, len(m.result.Variables))
		m.updateOffset()
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// updateOffset adjusts the scroll offset to keep the cursor visible
func (m *VariablesModel) updateOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+maxVisibleVars {
		m.offset = m.cursor - maxVisibleVars + 1
	}
}

// View implements tea.Model
func (m VariablesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Variables"))
	b.WriteString("\n\n")

	if m.styleName == "" {
		b.WriteString(m.styles.StatusHelp.Render("Select a style and theme in the Styles view first"))
		b.WriteString("\n")
		return b.String()
	}
	if m.loadErr != "" {
		b.WriteString(m.styles.Error.Render(m.loadErr))
		b.WriteString("\n")
		return b.String()
	}
	if m.result == nil {
		b.WriteString(m.styles.StatusHelp.Render("Loading..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.StatLabel.Render("Style:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.result.Style))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.result.Theme))
	if m.result.Dark {
		b.WriteString(" " + m.styles.DarkBadge.Render("dark"))
	} else {
		b.WriteString(" " + m.styles.LightBadge.Render("light"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderVariableList())
	return b.String()
}

func (m VariablesModel) renderVariableList() string {
	vars := m.result.Variables
	if len(vars) == 0 {
		return m.styles.StatusHelp.Render("No variables defined") + "\n"
	}

	nameWidth := 0
	for _, v := range vars {
		if len(v.Name) > nameWidth {
			nameWidth = len(v.Name)
		}
	}

	var b strings.Builder
	endIdx := min(m.offset+maxVisibleVars, len(vars))

	if m.offset > 0 {
		b.WriteString(m.styles.StatusHelp.Render("  ↑ more above"))
		b.WriteString("\n")
	}

	for i := m.offset; i < endIdx; i++ {
		v := vars[i]

		name := m.styles.VarName.Render(fmt.Sprintf("%-*s", nameWidth, v.Name))
		value := m.styles.VarValue.Render(v.Value)
		var origin string
		switch {
		case v.Override:
			origin = m.styles.Warning.Render(" (override)")
		case v.FromTheme:
			origin = m.styles.VarOrigin.Render(" (theme)")
		}

		line := name + "  " + value + origin
		if v.IsColor {
			line = name + "  " + RenderSwatch(v.Value) + " " + value + origin
		}

		if i == m.cursor {
			b.WriteString(m.styles.ItemSelected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if endIdx < len(vars) {
		b.WriteString(m.styles.StatusHelp.Render("  ↓ more below"))
		b.WriteString("\n")
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *VariablesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m VariablesModel) loadVariables() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Theme.Variables(m.styleName, m.themeName, nil)
		return variablesLoadedMsg{result: result, err: err}
	}
}
