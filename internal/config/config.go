// Package config loads the YAML configuration for coursepdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-coursepdf/internal/fileutil"
	"github.com/alnah/go-coursepdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxDirLength      = 4096
	MaxTitleLength    = 200
	MaxNameLength     = 50 // chroma lexer and style names
	MaxTitles         = 200
	MaxWorkers        = 8
	MaxTimeoutSeconds = 3600
)

// numberPattern matches lecture identifiers used as title keys.
var numberPattern = regexp.MustCompile(`^[0-9A-Za-z]{1,8}$`)

// Config holds all configuration for a coursepdf run.
type Config struct {
	Code       ProfileConfig     `yaml:"code"`
	Lectures   ProfileConfig     `yaml:"lectures"`
	Titles     map[string]string `yaml:"titles"`     // Merged over the built-in course catalog
	TitlesFile string            `yaml:"titlesFile"` // Optional YAML title table, below inline titles
	Highlight  HighlightConfig   `yaml:"highlight"`
	Assets     AssetsConfig      `yaml:"assets"`
	Workers    int               `yaml:"workers"` // 0 = one worker
	Timeout    string            `yaml:"timeout"` // Go duration, e.g. "90s"
	Strict     bool              `yaml:"strict"`  // Exit 1 when any file fails
}

// ProfileConfig defines directories for one conversion profile.
type ProfileConfig struct {
	InputDir  string `yaml:"inputDir"`  // Empty = profile default
	OutputDir string `yaml:"outputDir"` // Empty = profile default
}

// HighlightConfig selects the syntax highlighter for C++ sources
// and for fenced code in lecture notes.
type HighlightConfig struct {
	Language string `yaml:"language"` // chroma lexer name (default: "cpp")
	Style    string `yaml:"style"`    // chroma style name (default: "monokai")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks lengths and ranges. Called by LoadConfig, also usable on
// a Config built by hand.
func (c *Config) Validate() error {
	for name, p := range map[string]ProfileConfig{"code": c.Code, "lectures": c.Lectures} {
		if err := validateFieldLength(name+".inputDir", p.InputDir, MaxDirLength); err != nil {
			return err
		}
		if err := validateFieldLength(name+".outputDir", p.OutputDir, MaxDirLength); err != nil {
			return err
		}
	}

	if len(c.Titles) > MaxTitles {
		return fmt.Errorf("%w: titles has %d entries (max %d)", ErrInvalidValue, len(c.Titles), MaxTitles)
	}
	for num, title := range c.Titles {
		if !numberPattern.MatchString(num) {
			return fmt.Errorf("%w: titles key %q must be a short alphanumeric identifier", ErrInvalidValue, num)
		}
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("%w: titles[%s] is empty", ErrInvalidValue, num)
		}
		if err := validateFieldLength("titles["+num+"]", title, MaxTitleLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("highlight.language", c.Highlight.Language, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("titlesFile", c.TitlesFile, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxDirLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 || d > MaxTimeoutSeconds*time.Second {
			return fmt.Errorf("%w: timeout must be positive and at most 1h, got %s", ErrInvalidValue, c.Timeout)
		}
	}

	return nil
}

// TimeoutDuration returns the parsed timeout, or zero when unset.
// Call Validate first; an unparsable value yields zero.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: profile defaults,
// built-in titles, embedded assets, one worker.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file; anything else is a
// name searched in the current directory, then ~/.config/go-coursepdf/.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
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

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadTitles reads a standalone title table: a flat YAML mapping of
// identifier to title. Unlike LoadConfig it tolerates extra keys.
func LoadTitles(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading titles file: %w", err)
	}

	titles := make(map[string]string)
	if err := yamlutil.Decode(data, &titles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := Config{Titles: titles}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return titles, nil
}

// ResolveTitles returns the title overrides for the run: entries from
// TitlesFile, then inline Titles on top.
func (c *Config) ResolveTitles() (map[string]string, error) {
	merged := make(map[string]string, len(c.Titles))
	if c.TitlesFile != "" {
		fromFile, err := LoadTitles(c.TitlesFile)
		if err != nil {
			return nil, err
		}
		for num, title := range fromFile {
			merged[num] = title
		}
	}
	for num, title := range c.Titles {
		merged[num] = title
	}
	return merged, nil
}

// SearchPaths lists the locations resolveConfigPath tries for a name,
// in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-coursepdf", name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
