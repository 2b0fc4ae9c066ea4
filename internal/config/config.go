package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/styleforge/styleforge/internal/osutil"
)

const (
	// AppName is the application name used for config and cache directories
	AppName = "styleforge"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// ErrThemeWithoutStyle is returned when a default theme is configured
// without a default style to apply it to.
var ErrThemeWithoutStyle = errors.New("default_theme requires default_style to be set")

// Config represents the application configuration
type Config struct {
	// StylesDir is the directory containing style definitions
	StylesDir string `toml:"styles_dir"`
	// OutputDir is the directory generated artifacts are written to.
	// Empty means the user cache directory.
	OutputDir string `toml:"output_dir"`
	// DefaultStyle is the style used when a command names none
	DefaultStyle string `toml:"default_style"`
	// DefaultTheme is the theme used when a command names none.
	// Empty means the style's own default theme.
	DefaultTheme string `toml:"default_theme"`
	// TUITheme selects the color theme of the interactive browser
	TUITheme string `toml:"tui_theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - styles_dir: "styles" (relative to the working directory)
// - output_dir: "" (user cache directory)
// - default_style/default_theme: unset
// - tui_theme: "" (browser default)
func DefaultConfig() Config {
	return Config{
		StylesDir: "styles",
	}
}

// Normalize cleans path fields and trims whitespace in place.
func (c *Config) Normalize() {
	c.StylesDir = cleanPath(c.StylesDir)
	c.OutputDir = cleanPath(c.OutputDir)
	c.DefaultStyle = strings.TrimSpace(c.DefaultStyle)
	c.DefaultTheme = strings.TrimSpace(c.DefaultTheme)
	c.TUITheme = strings.TrimSpace(c.TUITheme)
}

// Validate checks the configuration for inconsistent values.
func (c Config) Validate() error {
	if c.DefaultTheme != "" && c.DefaultStyle == "" {
		return ErrThemeWithoutStyle
	}
	return nil
}

// GetConfigPath returns the path to the config file.
// Uses the user config dir for a cross-platform XDG-compliant location.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// DefaultOutputDir returns the output directory used when the config
// leaves output_dir empty: <user cache dir>/styleforge.
func DefaultOutputDir() (string, error) {
	cacheDir, err := osutil.Provider.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault reads the config file at path, falling back to the
// default configuration when the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the configuration to path in TOML format.
func Save(path string, cfg Config) error {
	var sb strings.Builder
	sb.WriteString("# styleforge configuration file\n\n")
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// GenerateSampleConfig returns a commented sample configuration.
func GenerateSampleConfig() string {
	return `# styleforge configuration file

# Directory containing style definitions
styles_dir = "styles"

# Directory generated artifacts are written to.
# Leave empty to use the user cache directory.
output_dir = ""

# Style and theme used when a command names none.
# default_style = "material"
# default_theme = "dark_teal"

# Color theme of the interactive browser (see 'styleforge browse')
# tui_theme = "dracula"
`
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}
