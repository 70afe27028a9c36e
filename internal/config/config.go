package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-atoms/internal/fileutil"
	"github.com/alnah/go-atoms/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name searched in the project root.
const DefaultName = "atoms"

// Markdown engines.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// Defaults and limits.
const (
	DefaultMaxDepth       = 8
	MaxDepthLimit         = 255
	DefaultHighlightStyle = "github"

	MaxPathLength          = 4096     // PATH_MAX on Linux
	MaxStyleLength         = 50       // chroma style names are short
	MaxVariableNameLength  = 100      // context keys
	MaxVariableValueLength = 64 << 10 // context values may hold HTML snippets
)

// Config holds the site build settings read from atoms.yaml.
type Config struct {
	Out           string            `yaml:"out"`           // Output directory (empty = <root>/dist)
	MaxDepth      int               `yaml:"maxDepth"`      // Nested embed limit, 1-255
	HideExtension bool              `yaml:"hideExtension"` // Write "page" instead of "page.html"
	Clean         bool              `yaml:"clean"`         // Remove the output directory first
	Verbose       bool              `yaml:"verbose"`       // Debug diagnostics
	Context       map[string]string `yaml:"context"`       // Extra global variables
	Markdown      MarkdownConfig    `yaml:"markdown"`
}

// MarkdownConfig selects and tunes the Markdown engine.
type MarkdownConfig struct {
	Engine         string `yaml:"engine"`         // "builtin" or "goldmark"
	Highlight      bool   `yaml:"highlight"`      // Highlight fenced code with chroma
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth: DefaultMaxDepth,
		Markdown: MarkdownConfig{
			Engine:         EngineBuiltin,
			HighlightStyle: DefaultHighlightStyle,
		},
	}
}

// Validate checks ranges, enumerations and field lengths.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("out", c.Out, MaxPathLength); err != nil {
		return err
	}
	if c.MaxDepth < 1 || c.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("%w: maxDepth must be between 1 and %d, got %d", ErrInvalidValue, MaxDepthLimit, c.MaxDepth)
	}

	switch c.Markdown.Engine {
	case EngineBuiltin, EngineGoldmark:
		// valid
	default:
		return fmt.Errorf("%w: markdown.engine %q (must be %s or %s)",
			ErrInvalidValue, c.Markdown.Engine, EngineBuiltin, EngineGoldmark)
	}
	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	// Sorted for a deterministic first error
	keys := make([]string, 0, len(c.Context))
	for k := range c.Context {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: context key cannot be empty", ErrInvalidValue)
		}
		if err := validateFieldLength("context key", k, MaxVariableNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("context.%s", k), c.Context[k], MaxVariableValueLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it is searched as <root>/<name>.yaml|.yml, then in the user
// config directory. Fields missing from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath, root string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath, root)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Find reports the default config file of the project at root, if any.
func Find(root string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(root, DefaultName+ext)
		if fileutil.FileExists(p) {
			return p, true
		}
	}
	return "", false
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: project root, ~/.config/go-atoms/
func resolveConfigPath(name, root string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := filepath.Join(root, name+ext)
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-atoms", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
