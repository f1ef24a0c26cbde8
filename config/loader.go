/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	rwfs "bennypowers.dev/resolvewith/fs"
	"bennypowers.dev/resolvewith/internal/logger"
	"bennypowers.dev/resolvewith/paths"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "resolve"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Path returns the config file Load would read from rootDir, or "".
func Path(filesystem rwfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := paths.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(configPath) {
			return configPath
		}
	}
	return ""
}

// Load searches for .config/resolve.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem rwfs.FileSystem, rootDir string) (*Config, error) {
	configPath := Path(filesystem, rootDir)
	if configPath == "" {
		return nil, nil
	}

	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data, configPath)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded config %s", configPath)
	return cfg, nil
}

// Parse decodes config content, choosing the format from name's extension.
// JSON may carry comments and trailing commas.
func Parse(data []byte, name string) (*Config, error) {
	cfg := &Config{}
	switch ext := path.Ext(name); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

