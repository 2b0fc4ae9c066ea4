package service

import (
	"errors"
	"fmt"
	"os"

	"github.com/styleforge/styleforge/internal/config"
	"github.com/styleforge/styleforge/internal/recolor"
	"github.com/styleforge/styleforge/internal/registry"
)

// ErrNoStyles is returned when the styles directory contains no styles.
var ErrNoStyles = errors.New("no styles found")

// StyleService provides operations for listing and validating styles
type StyleService struct {
	stylesDir string
	config    config.Config
}

// NewStyleService creates a new StyleService
func NewStyleService(stylesDir string, cfg config.Config) *StyleService {
	return &StyleService{
		stylesDir: stylesDir,
		config:    cfg,
	}
}

// StylesDir returns the styles directory the service scans
func (s *StyleService) StylesDir() string {
	return s.stylesDir
}

// List returns information about every style in the styles directory.
// Styles whose definition fails to load are included with Problem set,
// so a single broken style never hides the rest.
func (s *StyleService) List() ([]StyleInfo, error) {
	reg, err := registry.New(s.stylesDir)
	if err != nil {
		return nil, err
	}

	infos := make([]StyleInfo, 0, len(reg.Styles()))
	for _, name := range reg.Styles() {
		st, err := reg.Load(name)
		if err != nil {
			infos = append(infos, StyleInfo{Name: name, Problem: err.Error()})
			continue
		}
		infos = append(infos, StyleInfo{
			Name:         name,
			Title:        st.Definition.Name,
			DefaultTheme: st.Definition.DefaultTheme,
			Themes:       st.Themes,
			HasTemplate:  st.Definition.CSSTemplate != "",
		})
	}
	return infos, nil
}

// Load loads a single style by name
func (s *StyleService) Load(name string) (*registry.Style, error) {
	reg, err := registry.New(s.stylesDir)
	if err != nil {
		return nil, err
	}
	return reg.Load(name)
}

// Health validates a style and reports everything a generation run would
// trip over. A broken style definition is itself a finding, not an error.
func (s *StyleService) Health(name string) (StyleHealth, error) {
	health := StyleHealth{Style: name, Problems: []string{}}

	reg, err := registry.New(s.stylesDir)
	if err != nil {
		return health, err
	}

	st, err := reg.Load(name)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownStyle) {
			return health, err
		}
		health.Problems = append(health.Problems, err.Error())
		return health, nil
	}

	health.ThemeCount = len(st.Themes)

	if len(st.Themes) == 0 {
		health.Problems = append(health.Problems, "style has no themes")
	}
	if !st.HasTheme(st.Definition.DefaultTheme) {
		health.Problems = append(health.Problems,
			fmt.Sprintf("default theme %q has no theme file", st.Definition.DefaultTheme))
	}

	// Every theme must parse, and every resource state variable must
	// resolve through style variables or theme colors.
	for _, themeName := range st.Themes {
		t, err := st.LoadTheme(themeName)
		if err != nil {
			health.Problems = append(health.Problems,
				fmt.Sprintf("theme %q: %v", themeName, err))
			continue
		}

		resolve := func(variable string) (string, bool) {
			if v, ok := t.Colors[variable]; ok {
				return v, true
			}
			v, ok := st.Definition.Variables[variable]
			return v, ok
		}
		for state, mapping := range st.Definition.Resources {
			_, unresolved := recolor.BuildReplacements(mapping, resolve)
			for _, variable := range unresolved {
				health.Problems = append(health.Problems,
					fmt.Sprintf("theme %q: resource state %q references undefined variable %q",
						themeName, state, variable))
			}
		}
	}

	if tp := st.TemplatePath(); tp != "" {
		if _, err := os.Stat(tp); err != nil {
			health.Problems = append(health.Problems,
				fmt.Sprintf("stylesheet template %q not found", st.Definition.CSSTemplate))
		}
	}
	if ip := st.IconPath(); ip != "" {
		if _, err := os.Stat(ip); err != nil {
			health.Problems = append(health.Problems,
				fmt.Sprintf("style icon %q not found", st.Definition.Icon))
		}
	}

	resources, err := st.ResourceFiles()
	if err != nil {
		health.Problems = append(health.Problems, fmt.Sprintf("listing resources: %v", err))
	}
	health.ResourceCount = len(resources)

	if len(st.Definition.Resources) > 0 && len(resources) == 0 {
		health.Problems = append(health.Problems,
			"style declares resource states but has no SVG resource templates")
	}

	fonts, err := st.Fonts()
	if err != nil {
		health.Problems = append(health.Problems, fmt.Sprintf("listing fonts: %v", err))
	}
	health.FontCount = len(fonts)

	return health, nil
}
