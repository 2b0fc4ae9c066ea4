package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/styleforge/styleforge/internal/config"
	"github.com/styleforge/styleforge/internal/engine"
	"github.com/styleforge/styleforge/internal/palette"
)

// ErrMissingStyle is returned when a generation operation names no style.
var ErrMissingStyle = errors.New("style name is required")

// GenerateService runs the theming pipeline and manages its outputs
type GenerateService struct {
	stylesDir string
	outputDir string
	config    config.Config
}

// NewGenerateService creates a new GenerateService
func NewGenerateService(stylesDir, outputDir string, cfg config.Config) *GenerateService {
	return &GenerateService{
		stylesDir: stylesDir,
		outputDir: outputDir,
		config:    cfg,
	}
}

// OutputDir returns the root output directory
func (s *GenerateService) OutputDir() string {
	return s.outputDir
}

// Engine builds an engine with the given style and theme selected and
// overrides applied. An empty theme selects the style's default theme.
func (s *GenerateService) Engine(styleName, themeName string, overrides map[string]string) (*engine.Engine, error) {
	if styleName == "" {
		return nil, ErrMissingStyle
	}

	eng, err := engine.New(s.stylesDir, s.outputDir)
	if err != nil {
		return nil, err
	}
	if err := eng.SetCurrentStyle(styleName); err != nil {
		return nil, err
	}

	if themeName == "" {
		err = eng.SetDefaultTheme()
	} else {
		err = eng.SetCurrentTheme(themeName)
	}
	if err != nil {
		return nil, err
	}

	for name, value := range overrides {
		eng.SetVariable(name, value)
	}
	return eng, nil
}

// Generate runs a full generation for the given options.
func (s *GenerateService) Generate(opts GenerateOptions) (*GenerateResult, error) {
	eng, err := s.Engine(opts.Style, opts.Theme, opts.Overrides)
	if err != nil {
		return nil, err
	}

	result, err := eng.UpdateStylesheet(opts.Force)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Style:      eng.CurrentStyle(),
		Theme:      eng.CurrentTheme(),
		Dark:       eng.IsDark(),
		OutputDir:  eng.StyleOutputDir(),
		Stylesheet: result.Stylesheet,
		Written:    result.Written,
		Skipped:    result.Skipped,
		Warnings:   result.Warnings,
	}, nil
}

// Palette derives the palette for a style and theme.
func (s *GenerateService) Palette(styleName, themeName string, overrides map[string]string) (palette.Palette, error) {
	eng, err := s.Engine(styleName, themeName, overrides)
	if err != nil {
		return palette.Palette{}, err
	}
	return eng.GeneratePalette()
}

// Clean removes generated outputs. With a style name it removes that
// style's output directory; with "" it removes the output directory of
// every known style. Returns the removed directories.
func (s *GenerateService) Clean(styleName string) ([]string, error) {
	eng, err := engine.New(s.stylesDir, s.outputDir)
	if err != nil {
		return nil, err
	}

	var targets []string
	if styleName != "" {
		if !eng.Registry().HasStyle(styleName) {
			return nil, fmt.Errorf("unknown style: %s", styleName)
		}
		targets = []string{styleName}
	} else {
		targets = eng.Styles()
	}

	removed := []string{}
	for _, name := range targets {
		dir := filepath.Join(s.outputDir, name)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf("removing %s: %w", dir, err)
		}
		removed = append(removed, dir)
	}
	return removed, nil
}
