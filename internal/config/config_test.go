// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := Config{
		Command:     "/usr/local/sbin/usbip",
		UseSudo:     false,
		RemoteHost:  "192.168.1.10",
		DetachBusID: "3-2",
	}

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, loadedPath, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loadedPath != path {
		t.Fatalf("expected path %s, got %s", path, loadedPath)
	}
	if loaded != cfg {
		t.Fatalf("config mismatch: %+v != %+v", loaded, cfg)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Command != "usbip" || !cfg.UseSudo || cfg.DetachBusID != "1-7" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("remote_host = \"devbox\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RemoteHost != "devbox" {
		t.Fatalf("remote host mismatch: %q", cfg.RemoteHost)
	}
	if cfg.Command != "usbip" || !cfg.UseSudo || cfg.DetachBusID != "1-7" {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestLoadLegacyJSON(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	legacyPath, err := legacyConfigPath()
	if err != nil {
		t.Fatalf("legacyConfigPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(legacyPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := Config{
		Command:     "usbipd",
		UseSudo:     true,
		RemoteHost:  "legacy.example.com",
		DetachBusID: "1-7",
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(legacyPath, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("config mismatch: %+v != %+v", loaded, cfg)
	}
}

func TestRemoveConfigFiles(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := RemoveConfigFiles(); err != nil {
		t.Fatalf("RemoveConfigFiles: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected config to be removed, stat err: %v", err)
	}
}
