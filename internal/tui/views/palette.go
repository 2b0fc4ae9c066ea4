package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/styleforge/styleforge/internal/palette"
	"github.com/styleforge/styleforge/internal/service"
	"github.com/styleforge/styleforge/internal/tui/ui"
)

// PaletteModel is the model for the palette view. It shows the widget
// color roles derived for the selected style and theme, per color group.
type PaletteModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int

	styleName string
	themeName string
	pal       palette.Palette
	loaded    bool
	loadErr   string
}

// NewPaletteModel creates a new palette view model
func NewPaletteModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) PaletteModel {
	return PaletteModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m PaletteModel) Init() tea.Cmd {
	if m.styleName == "" {
		return nil
	}
	return m.loadPalette()
}

// paletteLoadedMsg is sent when the palette has been derived
type paletteLoadedMsg struct {
	pal palette.Palette
	err error
}

// Update implements tea.Model
func (m PaletteModel) Update(msg tea.Msg) (PaletteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) && m.styleName != "" {
			return m, m.loadPalette()
		}

	case ui.StyleThemeSelectedMsg:
		m.styleName = msg.Style
		m.themeName = msg.Theme
		m.loaded = false
		return m, m.loadPalette()

	case paletteLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			m.loaded = false
			return m, nil
		}
		m.loadErr = ""
		m.pal = msg.pal
		m.loaded = true
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m PaletteModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Palette"))
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
	if !m.loaded {
		b.WriteString(m.styles.StatusHelp.Render("Loading..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.StatLabel.Render("Style:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.styleName + " / " + m.themeName))
	b.WriteString("\n")

	if m.pal.IsZero() {
		b.WriteString("\n")
		b.WriteString(m.styles.StatusHelp.Render("This style declares no palette"))
		b.WriteString("\n")
		return b.String()
	}

	if m.pal.Base != "" {
		b.WriteString(m.styles.StatLabel.Render("Base color:"))
		b.WriteString(" ")
		b.WriteString(RenderSwatch(m.pal.Base))
		b.WriteString(" ")
		b.WriteString(m.styles.VarValue.Render(m.pal.Base))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, group := range palette.Groups() {
		roles := m.pal.Roles(group)
		if len(roles) == 0 {
			continue
		}

		b.WriteString(m.styles.ItemName.Render(titleCase(string(group))))
		b.WriteString("\n")
		for _, role := range roles {
			color, _ := m.pal.Color(group, role)
			b.WriteString("  ")
			b.WriteString(m.styles.VarName.Render(fmt.Sprintf("%-18s", role)))
			b.WriteString(RenderSwatch(color))
			b.WriteString(" ")
			b.WriteString(m.styles.VarValue.Render(color))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *PaletteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m PaletteModel) loadPalette() tea.Cmd {
	return func() tea.Msg {
		pal, err := m.services.Generate.Palette(m.styleName, m.themeName, nil)
		return paletteLoadedMsg{pal: pal, err: err}
	}
}
