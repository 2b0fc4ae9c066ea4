// Package registry discovers styles in a styles directory and loads their
// definitions and themes.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/styleforge/styleforge/internal/style"
	"github.com/styleforge/styleforge/internal/theme"
)

// Registry errors
var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrUnknownTheme = errors.New("unknown theme")
)

// Registry lists styles found in a styles directory.
// Every subdirectory of the styles directory is a style.
type Registry struct {
	dir    string
	styles []string
}

// New creates a Registry for the given styles directory and scans it.
// A missing directory yields an empty registry rather than an error, so
// callers can report "no styles found" instead of failing outright.
func New(dir string) (*Registry, error) {
	r := &Registry{dir: dir}
	if err := r.Rescan(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dir returns the styles directory path.
func (r *Registry) Dir() string {
	return r.dir
}

// Rescan re-reads the styles directory and updates the style list.
func (r *Registry) Rescan() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.styles = []string{}
			return nil
		}
		return fmt.Errorf("reading styles directory: %w", err)
	}

	styles := []string{}
	for _, e := range entries {
		if e.IsDir() {
			styles = append(styles, e.Name())
		}
	}
	sort.Strings(styles)
	r.styles = styles
	return nil
}

// Styles returns the sorted list of available style names.
func (r *Registry) Styles() []string {
	return r.styles
}

// HasStyle reports whether the registry contains a style with the given name.
func (r *Registry) HasStyle(name string) bool {
	for _, s := range r.styles {
		if s == name {
			return true
		}
	}
	return false
}

// Load loads the named style: its definition file and theme list.
func (r *Registry) Load(name string) (*Style, error) {
	if !r.HasStyle(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}

	dir := filepath.Join(r.dir, name)
	def, err := style.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading style %s: %w", name, err)
	}

	s := &Style{
		Name:       name,
		Dir:        dir,
		Definition: def,
	}
	if err := s.scanThemes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Style is a loaded style: its directory, parsed definition, and the
// themes available for it.
type Style struct {
	// Name is the style directory name (the registry key)
	Name string
	// Dir is the absolute or relative path of the style directory
	Dir string
	// Definition is the parsed style definition
	Definition style.Definition
	// Themes is the sorted list of theme names found in themes/
	Themes []string
}

func (s *Style) scanThemes() error {
	matches, err := filepath.Glob(filepath.Join(s.ThemesDir(), "*.xml"))
	if err != nil {
		return err
	}
	themes := make([]string, 0, len(matches))
	for _, m := range matches {
		themes = append(themes, strings.TrimSuffix(filepath.Base(m), ".xml"))
	}
	sort.Strings(themes)
	s.Themes = themes
	return nil
}

// ThemesDir returns the directory containing the style's theme files.
func (s *Style) ThemesDir() string {
	return filepath.Join(s.Dir, style.ThemesDirName)
}

// ResourcesDir returns the directory containing SVG resource templates.
func (s *Style) ResourcesDir() string {
	return filepath.Join(s.Dir, style.ResourcesDirName)
}

// FontsDir returns the directory containing the style's fonts.
func (s *Style) FontsDir() string {
	return filepath.Join(s.Dir, style.FontsDirName)
}

// TemplatePath returns the path of the stylesheet template, or "" when the
// definition names none.
func (s *Style) TemplatePath() string {
	if s.Definition.CSSTemplate == "" {
		return ""
	}
	return filepath.Join(s.Dir, s.Definition.CSSTemplate)
}

// IconPath returns the path of the style icon, or "" when the definition
// names none.
func (s *Style) IconPath() string {
	if s.Definition.Icon == "" {
		return ""
	}
	return filepath.Join(s.Dir, s.Definition.Icon)
}

// HasTheme reports whether the style provides the named theme.
func (s *Style) HasTheme(name string) bool {
	for _, t := range s.Themes {
		if t == name {
			return true
		}
	}
	return false
}

// LoadTheme parses the named theme file of this style.
func (s *Style) LoadTheme(name string) (theme.Theme, error) {
	if !s.HasTheme(name) {
		return theme.Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return theme.Load(filepath.Join(s.ThemesDir(), name+".xml"))
}

// ResourceFiles returns the SVG resource template paths, relative to the
// resources directory. A missing resources directory yields an empty list.
func (s *Style) ResourceFiles() ([]string, error) {
	return collectFiles(s.ResourcesDir(), ".svg")
}

// Fonts returns the font file paths, relative to the fonts directory.
// A missing fonts directory yields an empty list.
func (s *Style) Fonts() ([]string, error) {
	return collectFiles(s.FontsDir(), ".ttf")
}

// collectFiles walks root and returns relative paths of files with the
// given extension, sorted.
func collectFiles(root, ext string) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return nil
			}
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
