package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/color-tools-mcp"
	configFileName = "config.yaml"

	envOutputMode = "COLOR_MCP_OUTPUT_MODE"
	envLogLevel   = "COLOR_MCP_LOG_LEVEL"

	defaultSwatchSize = 32
)

// Config is the top-level configuration.
type Config struct {
	OutputMode      string `yaml:"outputMode,omitempty"`      // auto, object or string
	GrayscaleMethod string `yaml:"grayscaleMethod,omitempty"` // luminosity, average or lightness
	LogLevel        string `yaml:"logLevel,omitempty"`        // "debug" enables verbose logging
	SwatchSize      int    `yaml:"swatchSize,omitempty"`      // default edge length of color_swatch images
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputMode:      string(colorutil.ModeAuto),
		GrayscaleMethod: string(colorutil.Luminosity),
		LogLevel:        "info",
		SwatchSize:      defaultSwatchSize,
	}
}

// Load layers the default, user, explicit and environment settings.
// explicitPath may be empty.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	userPath, err := userConfigPath()
	if err != nil {
		// The user file is optional.
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userPath); err == nil {
		userCfg, err := loadFile(userPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
		cfg = merge(cfg, userCfg)
	}

	if explicitPath != "" {
		fileCfg, err := loadFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		cfg = merge(cfg, fileCfg)
	}

	cfg = merge(cfg, Config{
		OutputMode: os.Getenv(envOutputMode),
		LogLevel:   os.Getenv(envLogLevel),
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := colorutil.ParseOutputMode(c.OutputMode); err != nil {
		return fmt.Errorf("invalid outputMode: %w", err)
	}
	if _, err := colorutil.ParseGrayscaleMethod(c.GrayscaleMethod); err != nil {
		return fmt.Errorf("invalid grayscaleMethod: %w", err)
	}
	if c.SwatchSize < 0 {
		return fmt.Errorf("invalid swatchSize: %d", c.SwatchSize)
	}
	return nil
}

// ColorConfig returns the colorutil settings. Call Validate first.
func (c Config) ColorConfig() colorutil.Config {
	return colorutil.Config{OutputMode: colorutil.OutputMode(c.OutputMode)}
}

// Debug reports whether verbose logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

var userConfigPath = func() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// merge overlays the non-zero fields of over onto base.
func merge(base, over Config) Config {
	if over.OutputMode != "" {
		base.OutputMode = over.OutputMode
	}
	if over.GrayscaleMethod != "" {
		base.GrayscaleMethod = over.GrayscaleMethod
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.SwatchSize != 0 {
		base.SwatchSize = over.SwatchSize
	}
	return base
}
