package service

import (
	"github.com/styleforge/styleforge/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Style    *StyleService
	Theme    *ThemeService
	Generate *GenerateService
	Config   *ConfigService
}

// NewServices creates a new Services instance from the user configuration
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir, err = config.DefaultOutputDir()
		if err != nil {
			return nil, err
		}
	}

	return NewServicesWithPaths(cfg.StylesDir, outputDir, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(stylesDir, outputDir, configPath string, cfg config.Config) *Services {
	return &Services{
		Style:    NewStyleService(stylesDir, cfg),
		Theme:    NewThemeService(stylesDir, cfg),
		Generate: NewGenerateService(stylesDir, outputDir, cfg),
		Config:   NewConfigService(configPath, cfg),
	}
}
