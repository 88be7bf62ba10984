// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv
const (
	EnvAutoSelect  = "APPFACTORY_AUTO_SELECT"
	EnvVerbose     = "APPFACTORY_VERBOSE"
	EnvProjectRoot = "APPFACTORY_ROOT"
)

// DefaultConfigPath is where LoadProjectConfig looks, relative to the project root
const DefaultConfigPath = ".appfactory/config.yaml"

// Config represents the CLI configuration that can be loaded from a YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Paths, relative to ProjectRoot unless absolute
	ProjectRoot string `yaml:"project_root,omitempty"`
	StateDir    string `yaml:"state_dir,omitempty"`
	RunsDir     string `yaml:"runs_dir,omitempty"`

	// Behavior
	AutoSelect bool `yaml:"auto_select,omitempty"` // Pick the top-ranked idea without prompting
	Verbose    bool `yaml:"verbose,omitempty"`     // Print debug logs

	// ExcludedCategoryCap overrides the score cap for excluded categories (0 keeps the default)
	ExcludedCategoryCap int `yaml:"excluded_category_cap,omitempty" validate:"gte=0,lte=100"`
}

var validate = validator.New()

// Defaults returns the built-in configuration for the project at root.
func Defaults(root string) Config {
	return Config{
		ProjectRoot: root,
		StateDir:    ".appfactory",
		RunsDir:     "runs",
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// LoadProjectConfig loads root/.appfactory/config.yaml when present and
// merges it over the defaults. A missing file is not an error.
func LoadProjectConfig(root string) (*Config, error) {
	defaults := Defaults(root)

	cfg, err := LoadConfig(filepath.Join(root, DefaultConfigPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &defaults, nil
		}
		return nil, err
	}

	merged := cfg.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.StateDir != "" && c.RunsDir != "" && c.resolve(c.StateDir) == c.resolve(c.RunsDir) {
		return fmt.Errorf("config error: 'state_dir' and 'runs_dir' must differ")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProjectRoot == "" {
		result.ProjectRoot = defaults.ProjectRoot
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.RunsDir == "" {
		result.RunsDir = defaults.RunsDir
	}
	if result.ExcludedCategoryCap == 0 {
		result.ExcludedCategoryCap = defaults.ExcludedCategoryCap
	}

	// Booleans: either source can turn them on
	result.AutoSelect = result.AutoSelect || defaults.AutoSelect
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if getenv(EnvAutoSelect) == "1" {
		c.AutoSelect = true
	}
	if v, err := strconv.ParseBool(getenv(EnvVerbose)); err == nil && v {
		c.Verbose = true
	}
}

// StatePath returns the absolute state directory
func (c *Config) StatePath() string {
	return c.resolve(c.StateDir)
}

// RunsPath returns the absolute runs directory
func (c *Config) RunsPath() string {
	return c.resolve(c.RunsDir)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.ProjectRoot, p)
}

// ProjectRootFromEnv returns APPFACTORY_ROOT, or the working directory.
func ProjectRootFromEnv() (string, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return filepath.Abs(root)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
