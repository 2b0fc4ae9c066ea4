// Package style defines the on-disk style definition format.
//
// A style is a directory containing exactly one JSON definition file,
// a themes/ folder with theme XML files, an optional resources/ folder
// with SVG templates, and an optional fonts/ folder.
package style

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ThemesDirName is the subdirectory containing theme XML files
	ThemesDirName = "themes"
	// ResourcesDirName is the subdirectory containing SVG resource templates
	ResourcesDirName = "resources"
	// FontsDirName is the subdirectory containing font files
	FontsDirName = "fonts"
)

// Definition errors
var (
	ErrNoDefinition        = errors.New("style folder does not contain a style json file")
	ErrMultipleDefinitions = errors.New("style folder contains multiple style json files")
	ErrMissingName         = errors.New(`no key "name" found in style json file`)
	ErrMissingDefaultTheme = errors.New(`no key "default_theme" found in style json file`)
)

// PaletteSpec describes how palette colors are derived from theme color
// variables. Group maps are keyed by role name, values are variable names.
type PaletteSpec struct {
	BaseColor string
	Groups    map[string]map[string]string
}

// IsZero reports whether the spec carries no palette information.
func (p PaletteSpec) IsZero() bool {
	return p.BaseColor == "" && len(p.Groups) == 0
}

// Definition is a parsed style definition file.
type Definition struct {
	// Name is the display name of the style
	Name string
	// CSSTemplate is the stylesheet template file name, relative to the style directory
	CSSTemplate string
	// Icon is the style icon file name, relative to the style directory
	Icon string
	// DefaultTheme is the theme applied when none is selected explicitly
	DefaultTheme string
	// Variables are the style-level template variables
	Variables map[string]string
	// Palette describes palette color derivation
	Palette PaletteSpec
	// Resources maps a resource state name to a template-color -> variable map
	Resources map[string]map[string]string
}

type rawPalette struct {
	BaseColor string            `json:"base_color"`
	Active    map[string]string `json:"active"`
	Disabled  map[string]string `json:"disabled"`
	Inactive  map[string]string `json:"inactive"`
}

type rawDefinition struct {
	Name         string                       `json:"name"`
	CSSTemplate  string                       `json:"css_template"`
	Icon         string                       `json:"icon"`
	DefaultTheme string                       `json:"default_theme"`
	Variables    map[string]any               `json:"variables"`
	Palette      rawPalette                   `json:"palette"`
	Resources    map[string]map[string]string `json:"resources"`
}

// Load locates and parses the single style definition file in dir.
// Returns ErrNoDefinition or ErrMultipleDefinitions when the directory
// does not contain exactly one *.json file.
func Load(dir string) (Definition, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return Definition{}, err
	}
	if len(matches) == 0 {
		return Definition{}, ErrNoDefinition
	}
	if len(matches) > 1 {
		return Definition{}, ErrMultipleDefinitions
	}
	return LoadFile(matches[0])
}

// LoadFile parses the style definition at path.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading style json file: %w", err)
	}
	return Parse(data)
}

// Parse parses style definition JSON.
func Parse(data []byte) (Definition, error) {
	var raw rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return Definition{}, fmt.Errorf("loading style json file caused error: %w", err)
	}

	if raw.Name == "" {
		return Definition{}, ErrMissingName
	}
	if raw.DefaultTheme == "" {
		return Definition{}, ErrMissingDefaultTheme
	}

	def := Definition{
		Name:        raw.Name,
		CSSTemplate: raw.CSSTemplate,
		Icon:        raw.Icon,
		// The default theme may be written with or without the .xml
		// extension; theme names are extensionless everywhere else.
		DefaultTheme: strings.TrimSuffix(raw.DefaultTheme, ".xml"),
		Variables:    make(map[string]string, len(raw.Variables)),
		Resources:    raw.Resources,
	}

	// Variable values may be written as strings, numbers, or booleans;
	// template expansion always works on strings.
	for k, v := range raw.Variables {
		def.Variables[k] = stringifyValue(v)
	}

	def.Palette = PaletteSpec{
		BaseColor: raw.Palette.BaseColor,
		Groups:    map[string]map[string]string{},
	}
	for group, roles := range map[string]map[string]string{
		"active":   raw.Palette.Active,
		"disabled": raw.Palette.Disabled,
		"inactive": raw.Palette.Inactive,
	} {
		if len(roles) > 0 {
			def.Palette.Groups[group] = roles
		}
	}

	return def, nil
}

// stringifyValue converts a decoded JSON value to its template string form.
// Integral numbers are rendered without a decimal point.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
