// Package config loads sift.toml, the project-level lint configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sift/internal/lint"
)

// Config is the decoded sift.toml.
type Config struct {
	Rules RulesConfig `toml:"rules"`
	Files FilesConfig `toml:"files"`
}

// RulesConfig selects the active rule set. An empty Include means all
// registered rules; Exclude is applied after Include.
type RulesConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// FilesConfig filters which files are linted.
type FilesConfig struct {
	// Extensions lists the file extensions to lint, with leading dot.
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no sift.toml exists.
func Default() Config {
	return Config{
		Files: FilesConfig{
			Extensions: []string{".js", ".ts"},
		},
	}
}

// FindSiftToml walks up from startDir to locate sift.toml.
func FindSiftToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sift.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses a sift.toml file. Sections left out keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Parse decodes configuration from a string. Used by tests and by
// callers that carry the manifest in memory.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Discover loads the nearest sift.toml above startDir, falling back to
// Default when none exists.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := FindSiftToml(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// ResolveRules checks the include/exclude lists against the registry
// and returns the selected factories. Unknown codes are configuration
// errors, not silent no-ops.
func (c Config) ResolveRules(registry *lint.Registry) ([]lint.Factory, error) {
	factories, err := registry.Select(c.Rules.Include, c.Rules.Exclude)
	if err != nil {
		return nil, fmt.Errorf("sift.toml [rules]: %w", err)
	}
	return factories, nil
}

// WantsFile reports whether a path matches the configured extensions.
func (c Config) WantsFile(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range c.Files.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
