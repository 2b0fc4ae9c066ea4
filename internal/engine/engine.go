// Package engine binds the registry, template resolver, recolorer,
// palette generator, and output cache into the theming pipeline.
//
// An Engine tracks one current style and theme. Selecting a theme
// resolves the variable set (style variables overlaid by theme colors,
// overlaid by runtime overrides); UpdateStylesheet renders the stylesheet
// template and the recolored resources into the output directory.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/styleforge/styleforge/internal/cache"
	"github.com/styleforge/styleforge/internal/palette"
	"github.com/styleforge/styleforge/internal/recolor"
	"github.com/styleforge/styleforge/internal/registry"
	"github.com/styleforge/styleforge/internal/template"
	"github.com/styleforge/styleforge/internal/theme"
)

// Engine errors
var (
	ErrNoStyleSelected  = errors.New("no style selected")
	ErrNoThemeSelected  = errors.New("no theme selected")
	ErrTemplateNotFound = errors.New("style folder does not contain the stylesheet template file")
	ErrUnknownState     = errors.New("unknown resource state")
)

// Result summarizes one generation run.
type Result struct {
	// Stylesheet is the output-relative path of the generated stylesheet,
	// "" when the style has no template
	Stylesheet string
	// Written is the number of artifacts written
	Written int
	// Skipped is the number of artifacts reused from the cache
	Skipped int
	// Warnings lists soft problems encountered during generation
	Warnings []string
}

// Engine is the theming pipeline. It is not safe for concurrent use.
type Engine struct {
	reg       *registry.Registry
	outputDir string

	current   *registry.Style
	theme     theme.Theme
	hasTheme  bool
	overrides map[string]string

	stylesheet string

	styleChanged      []func(style string)
	themeChanged      []func(theme string)
	stylesheetChanged []func()
}

// New creates an Engine scanning the given styles directory and writing
// generated artifacts below outputDir.
func New(stylesDir, outputDir string) (*Engine, error) {
	reg, err := registry.New(stylesDir)
	if err != nil {
		return nil, err
	}
	return &Engine{
		reg:       reg,
		outputDir: outputDir,
		overrides: map[string]string{},
	}, nil
}

// Registry returns the style registry.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// SetStylesDir rescans a different styles directory. The current style
// and theme selection is cleared; runtime overrides survive.
func (e *Engine) SetStylesDir(dir string) error {
	reg, err := registry.New(dir)
	if err != nil {
		return err
	}
	e.reg = reg
	e.current = nil
	e.theme = theme.Theme{}
	e.hasTheme = false
	e.stylesheet = ""
	return nil
}

// Styles returns the available style names.
func (e *Engine) Styles() []string {
	return e.reg.Styles()
}

// OutputDir returns the root output directory.
func (e *Engine) OutputDir() string {
	return e.outputDir
}

// SetOutputDir changes the root output directory.
func (e *Engine) SetOutputDir(dir string) {
	e.outputDir = dir
}

// Current returns the loaded current style, or nil.
func (e *Engine) Current() *registry.Style {
	return e.current
}

// CurrentStyle returns the current style name, "" when none is selected.
func (e *Engine) CurrentStyle() string {
	if e.current == nil {
		return ""
	}
	return e.current.Name
}

// SetCurrentStyle loads and selects a style. The theme selection is
// cleared; runtime variable overrides survive the switch.
func (e *Engine) SetCurrentStyle(name string) error {
	s, err := e.reg.Load(name)
	if err != nil {
		return err
	}
	e.current = s
	e.theme = theme.Theme{}
	e.hasTheme = false
	e.stylesheet = ""

	for _, fn := range e.styleChanged {
		fn(name)
	}
	return nil
}

// Themes returns the themes of the current style.
func (e *Engine) Themes() []string {
	if e.current == nil {
		return nil
	}
	return e.current.Themes
}

// CurrentTheme returns the current theme name, "" when none is selected.
func (e *Engine) CurrentTheme() string {
	if !e.hasTheme {
		return ""
	}
	return e.theme.Name
}

// SetCurrentTheme parses and selects a theme of the current style.
func (e *Engine) SetCurrentTheme(name string) error {
	if e.current == nil {
		return ErrNoStyleSelected
	}
	t, err := e.current.LoadTheme(name)
	if err != nil {
		return err
	}
	e.theme = t
	e.hasTheme = true

	for _, fn := range e.themeChanged {
		fn(name)
	}
	return nil
}

// SetDefaultTheme selects the default theme named by the style definition.
func (e *Engine) SetDefaultTheme() error {
	if e.current == nil {
		return ErrNoStyleSelected
	}
	return e.SetCurrentTheme(e.current.Definition.DefaultTheme)
}

// IsDark reports whether the current theme declares itself dark.
func (e *Engine) IsDark() bool {
	return e.hasTheme && e.theme.Dark
}

// Variable resolves a template variable. Runtime overrides take
// precedence over theme colors, which take precedence over style
// variables.
func (e *Engine) Variable(name string) (string, bool) {
	if v, ok := e.overrides[name]; ok {
		return v, true
	}
	if e.hasTheme {
		if v, ok := e.theme.Colors[name]; ok {
			return v, true
		}
	}
	if e.current != nil {
		if v, ok := e.current.Definition.Variables[name]; ok {
			return v, true
		}
	}
	return "", false
}

// SetVariable adds or overwrites a runtime variable override. Overrides
// survive style and theme switches within a session.
func (e *Engine) SetVariable(name, value string) {
	e.overrides[name] = value
}

// ClearVariables removes all runtime variable overrides.
func (e *Engine) ClearVariables() {
	e.overrides = map[string]string{}
}

// Variables returns the fully resolved variable set as a copy.
func (e *Engine) Variables() map[string]string {
	vars := map[string]string{}
	if e.current != nil {
		for k, v := range e.current.Definition.Variables {
			vars[k] = v
		}
	}
	if e.hasTheme {
		for k, v := range e.theme.Colors {
			vars[k] = v
		}
	}
	for k, v := range e.overrides {
		vars[k] = v
	}
	return vars
}

// ThemeColors returns the current theme's color variables as a copy.
func (e *Engine) ThemeColors() map[string]string {
	colors := map[string]string{}
	if e.hasTheme {
		for k, v := range e.theme.Colors {
			colors[k] = v
		}
	}
	return colors
}

// ThemeColor returns a single theme color variable value.
func (e *Engine) ThemeColor(name string) (string, bool) {
	if !e.hasTheme {
		return "", false
	}
	v, ok := e.theme.Colors[name]
	return v, ok
}

// StyleOutputDir returns the output directory of the current style.
func (e *Engine) StyleOutputDir() string {
	if e.current == nil {
		return e.outputDir
	}
	return filepath.Join(e.outputDir, e.current.Name)
}

// Stylesheet returns the most recently generated stylesheet text.
func (e *Engine) Stylesheet() string {
	return e.stylesheet
}

// ProcessTemplate expands template text against the resolved variables.
func (e *Engine) ProcessTemplate(input string) (template.Result, error) {
	return template.NewResolver(e.Variable).Expand(input)
}

// GeneratePalette derives the palette of the current style and theme.
func (e *Engine) GeneratePalette() (palette.Palette, error) {
	if e.current == nil {
		return palette.Palette{}, ErrNoStyleSelected
	}
	if !e.hasTheme {
		return palette.Palette{}, ErrNoThemeSelected
	}
	return palette.Generate(e.current.Definition.Palette, e.Variable), nil
}

// ResourceStates returns the resource state names of the current style,
// sorted.
func (e *Engine) ResourceStates() []string {
	if e.current == nil {
		return nil
	}
	states := make([]string, 0, len(e.current.Definition.Resources))
	for state := range e.current.Definition.Resources {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// RecolorSVG applies the color replace list of the given resource state
// to SVG content.
func (e *Engine) RecolorSVG(content []byte, state string) ([]byte, []string, error) {
	if e.current == nil {
		return nil, nil, ErrNoStyleSelected
	}
	if !e.hasTheme {
		return nil, nil, ErrNoThemeSelected
	}
	mapping, ok := e.current.Definition.Resources[state]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownState, state)
	}
	reps, unresolved := recolor.BuildReplacements(mapping, e.Variable)
	warnings := make([]string, 0, len(unresolved))
	for _, v := range unresolved {
		warnings = append(warnings, fmt.Sprintf("resource state %s: variable %q did not resolve", state, v))
	}
	return recolor.Apply(content, reps), warnings, nil
}

// LoadThemedIcon reads an SVG file and recolors it for the given state.
func (e *Engine) LoadThemedIcon(path string, state string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SVG file: %w", err)
	}
	out, _, err := e.RecolorSVG(content, state)
	return out, err
}

// UpdateStylesheet generates the stylesheet and all themed resources for
// the current style and theme. When force is false, artifacts whose
// content is unchanged since the previous run are not rewritten.
func (e *Engine) UpdateStylesheet(force bool) (*Result, error) {
	if e.current == nil {
		return nil, ErrNoStyleSelected
	}
	if !e.hasTheme {
		return nil, ErrNoThemeSelected
	}

	writer, err := cache.NewWriter(e.StyleOutputDir(), e.current.Name, e.theme.Name, force)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	if err := e.generateStylesheet(writer, result); err != nil {
		return nil, err
	}
	if err := e.generateResources(writer, result); err != nil {
		return nil, err
	}

	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	result.Written = writer.Written()
	result.Skipped = writer.Skipped()

	for _, fn := range e.stylesheetChanged {
		fn()
	}
	return result, nil
}

// generateStylesheet renders the stylesheet template into the output
// directory. A style without a template is not an error.
func (e *Engine) generateStylesheet(w *cache.Writer, result *Result) error {
	templatePath := e.current.TemplatePath()
	if templatePath == "" {
		return nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, e.current.Definition.CSSTemplate)
		}
		return fmt.Errorf("reading stylesheet template: %w", err)
	}

	expanded, err := e.ProcessTemplate(string(content))
	if err != nil {
		return fmt.Errorf("expanding stylesheet template: %w", err)
	}
	for _, warning := range expanded.Warnings {
		result.Warnings = append(result.Warnings, warning.String())
	}

	base := filepath.Base(templatePath)
	outName := strings.TrimSuffix(base, filepath.Ext(base))
	if !strings.HasSuffix(outName, ".css") {
		outName += ".css"
	}
	if _, err := w.Write(outName, []byte(expanded.Output)); err != nil {
		return fmt.Errorf("exporting stylesheet %s: %w", outName, err)
	}

	e.stylesheet = expanded.Output
	result.Stylesheet = outName
	return nil
}

// generateResources recolors every SVG resource template once per
// resource state.
func (e *Engine) generateResources(w *cache.Writer, result *Result) error {
	states := e.ResourceStates()
	if len(states) == 0 {
		return nil
	}

	files, err := e.current.ResourceFiles()
	if err != nil {
		return fmt.Errorf("listing resource templates: %w", err)
	}

	for _, state := range states {
		mapping := e.current.Definition.Resources[state]
		reps, unresolved := recolor.BuildReplacements(mapping, e.Variable)
		for _, v := range unresolved {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("resource state %s: variable %q did not resolve", state, v))
		}

		for _, rel := range files {
			content, err := os.ReadFile(filepath.Join(e.current.ResourcesDir(), filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("reading SVG file %s: %w", rel, err)
			}
			out := recolor.Apply(content, reps)
			if _, err := w.Write(path.Join(state, rel), out); err != nil {
				return fmt.Errorf("writing themed resource %s/%s: %w", state, rel, err)
			}
		}
	}
	return nil
}

// OnStyleChanged registers a callback fired after the current style
// changes.
func (e *Engine) OnStyleChanged(fn func(style string)) {
	e.styleChanged = append(e.styleChanged, fn)
}

// OnThemeChanged registers a callback fired after the current theme
// changes.
func (e *Engine) OnThemeChanged(fn func(theme string)) {
	e.themeChanged = append(e.themeChanged, fn)
}

// OnStylesheetChanged registers a callback fired after a successful
// generation run.
func (e *Engine) OnStylesheetChanged(fn func()) {
	e.stylesheetChanged = append(e.stylesheetChanged, fn)
}
