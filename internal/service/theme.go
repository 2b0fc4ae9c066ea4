package service

import (
	"sort"

	"github.com/styleforge/styleforge/internal/colorutil"
	"github.com/styleforge/styleforge/internal/config"
	"github.com/styleforge/styleforge/internal/registry"
)

// ThemeService provides operations for inspecting themes and their
// resolved variable sets
type ThemeService struct {
	stylesDir string
	config    config.Config
}

// NewThemeService creates a new ThemeService
func NewThemeService(stylesDir string, cfg config.Config) *ThemeService {
	return &ThemeService{
		stylesDir: stylesDir,
		config:    cfg,
	}
}

// List returns information about every theme of a style. Themes that
// fail to parse are included with Problem set.
func (s *ThemeService) List(styleName string) ([]ThemeInfo, error) {
	reg, err := registry.New(s.stylesDir)
	if err != nil {
		return nil, err
	}
	st, err := reg.Load(styleName)
	if err != nil {
		return nil, err
	}

	infos := make([]ThemeInfo, 0, len(st.Themes))
	for _, name := range st.Themes {
		info := ThemeInfo{
			Name:    name,
			Default: name == st.Definition.DefaultTheme,
		}
		t, err := st.LoadTheme(name)
		if err != nil {
			info.Problem = err.Error()
		} else {
			info.Dark = t.Dark
			info.Colors = len(t.Colors)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Variables resolves the full variable set for a style and theme.
// An empty theme name selects the style's default theme. Overrides take
// precedence over theme colors, which take precedence over style
// variables.
func (s *ThemeService) Variables(styleName, themeName string, overrides map[string]string) (*VariablesResult, error) {
	reg, err := registry.New(s.stylesDir)
	if err != nil {
		return nil, err
	}
	st, err := reg.Load(styleName)
	if err != nil {
		return nil, err
	}

	if themeName == "" {
		themeName = st.Definition.DefaultTheme
	}
	t, err := st.LoadTheme(themeName)
	if err != nil {
		return nil, err
	}

	merged := map[string]VariableValue{}
	for name, value := range st.Definition.Variables {
		merged[name] = VariableValue{Name: name, Value: value}
	}
	for name, value := range t.Colors {
		merged[name] = VariableValue{Name: name, Value: value, FromTheme: true}
	}
	for name, value := range overrides {
		merged[name] = VariableValue{Name: name, Value: value, Override: true}
	}

	result := &VariablesResult{
		Style:     styleName,
		Theme:     themeName,
		Dark:      t.Dark,
		Variables: make([]VariableValue, 0, len(merged)),
	}
	for _, v := range merged {
		v.IsColor = colorutil.IsValid(v.Value)
		result.Variables = append(result.Variables, v)
	}
	sort.Slice(result.Variables, func(i, j int) bool {
		return result.Variables[i].Name < result.Variables[j].Name
	})
	return result, nil
}
