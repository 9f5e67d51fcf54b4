// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// Command is the USB/IP utility binary to invoke.
	Command string `json:"command" toml:"command"`
	// UseSudo wraps invocations in sudo -n when not running as root.
	UseSudo bool `json:"use_sudo" toml:"use_sudo"`
	// RemoteHost is the default usbip host for attach.
	RemoteHost string `json:"remote_host" toml:"remote_host"`
	// DetachBusID is the default target for detach.
	DetachBusID string `json:"detach_bus_id" toml:"detach_bus_id"`
}

func Default() Config {
	return Config{
		Command:     "usbip",
		UseSudo:     true,
		DetachBusID: "1-7",
	}
}

func Load() (Config, string, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := loadToml(path)
	if err == nil {
		return cfg, path, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Config{}, path, err
	}
	legacyPath, legacyErr := legacyConfigPath()
	if legacyErr != nil {
		return Default(), path, nil
	}
	cfg, err = loadLegacyJSON(legacyPath)
	if err == nil {
		return cfg, path, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(), path, nil
	}
	return Config{}, path, err
}

func Save(path string, cfg Config) error {
	data, err := toml.Marshal(normalize(cfg))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(configHome, "usbshare", "config.toml"), nil
}

func legacyConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(configHome, "usbshare", "config.json"), nil
}

func loadToml(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	// Start from defaults so keys absent from the file keep them.
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return normalize(cfg), nil
}

func loadLegacyJSON(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return normalize(cfg), nil
}

func normalize(cfg Config) Config {
	if strings.TrimSpace(cfg.Command) == "" {
		cfg.Command = "usbip"
	}
	if strings.TrimSpace(cfg.DetachBusID) == "" {
		cfg.DetachBusID = "1-7"
	}
	return cfg
}

func RemoveConfigFiles() error {
	paths := []string{}
	if path, err := configPath(); err == nil {
		paths = append(paths, path)
	}
	if path, err := legacyConfigPath(); err == nil {
		paths = append(paths, path)
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
