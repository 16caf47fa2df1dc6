// Package config loads podkit.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/podkit/internal/messages"
)

// ErrConfigValidation wraps config validation failures (as opposed to TOML
// syntax or filesystem errors).
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

var readFile = os.ReadFile

// Load reads, validates and resolves the config file at path.
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.resolvePaths(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates config TOML. source is used in error messages.
// Paths are left as written.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes data rejecting keys that toml.Unmarshal ignores.
// The returned error names every unrecognized key.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&cfg)
	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return err
	}
	keys := make([]string, 0, len(strict.Errors))
	for i := range strict.Errors {
		keys = append(keys, strings.Join(strict.Errors[i].Key(), "."))
	}
	return errors.New(strings.Join(keys, ", "))
}

// resolvePaths expands ~ and anchors relative file paths at baseDir.
// Template paths are relative to templates_dir and Podfile-relative paths
// (versioned_react_native_path, universal_modules_path) are written into the
// manifest verbatim, so neither is touched.
func (c *Config) resolvePaths(baseDir string) error {
	for _, p := range []*string{&c.Render.TemplatesDir, &c.Render.Output, &c.Render.PodspecOutput, &c.Render.ValuesFile} {
		resolved, err := ResolvePath(baseDir, *p)
		if err != nil {
			return err
		}
		*p = resolved
	}
	return nil
}

// ResolvePath expands a leading ~ and joins relative paths onto baseDir.
// An empty path stays empty.
func ResolvePath(baseDir string, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	if filepath.IsAbs(expanded) || baseDir == "" {
		return expanded, nil
	}
	return filepath.Join(baseDir, expanded), nil
}
