// Package config provides functions for loading github-pr settings files and resolving the API token.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alan/github-pr/cmd"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the settings file looked up in the working directory
const DefaultSettingsFile = ".github-pr.yaml"

// LoadSettings loads settings from the specified file on top of the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func LoadSettings(filename string) (*cmd.Settings, error) {
	settings := cmd.DefaultSettings()
	if filename == "" {
		return &settings, nil
	}

	data, err := os.ReadFile(filename) //nolint:gosec // Settings filename is from command-line flag
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Settings file not found, using defaults", "path", filename)
			return &settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if isTOML(filename) {
		metadata, err := toml.Decode(string(data), &settings)
		if err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			slog.Warn("Unknown settings keys", "path", filename, "keys", undecoded)
		}
		return &settings, nil
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}

func isTOML(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}
