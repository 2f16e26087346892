// Package config loads and validates md2html configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxTitleLength caps document.title.
const MaxTitleLength = 200

// AppDirName is the directory under the user config dir searched for
// named configs.
const AppDirName = "go-md2html"

// List policy names accepted in lists.policy.
const (
	PolicyShared  = "shared"
	PolicyPerItem = "per-item"
)

// Config holds all configuration for a conversion.
type Config struct {
	Lists    ListsConfig    `yaml:"lists"`
	Document DocumentConfig `yaml:"document"`
}

// ListsConfig defines list wrapping options.
type ListsConfig struct {
	Policy string `yaml:"policy"` // "shared" or "per-item" (empty = shared)
}

// DocumentConfig defines output document options.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"` // wrap fragments in an HTML5 skeleton
	Title      string `yaml:"title"`      // empty = first heading, then "Document"
	CSS        string `yaml:"css"`        // stylesheet path embedded in standalone output
}

// DefaultConfig returns the configuration used when no file is given:
// shared list policy, fragment output.
func DefaultConfig() *Config {
	return &Config{
		Lists:    ListsConfig{Policy: PolicyShared},
		Document: DocumentConfig{Standalone: false},
	}
}

// Validate checks enumerated values and field lengths.
// Called by LoadConfig; callers that build a Config by hand should call it too.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Lists.Policy)) {
	case "", PolicyShared, PolicyPerItem:
		// valid
	default:
		return fmt.Errorf("%w: lists.policy %q (must be %s or %s)", ErrInvalidValue, c.Lists.Policy, PolicyShared, PolicyPerItem)
	}

	if len(c.Document.Title) > MaxTitleLength {
		return fmt.Errorf("%w: document.title (%d chars, max %d)", ErrFieldTooLong, len(c.Document.Title), MaxTitleLength)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Encode(c)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator it is read directly. Otherwise it is
// a name searched as name.yaml then name.yml, first in the current directory,
// then in the user config directory under AppDirName.
// Missing values keep their DefaultConfig value.
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

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried, in order, when resolving a config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
