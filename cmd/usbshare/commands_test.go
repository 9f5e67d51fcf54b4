// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hwbridge/usbshare/internal/config"
	"github.com/hwbridge/usbshare/internal/usbip"
)

func TestRunBind(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	if err := runBind(ctrl, &out, "1-1"); err != nil {
		t.Fatalf("runBind: %v", err)
	}
	want := []string{"bind --busid 1-1"}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
	if !strings.Contains(out.String(), "bound successfully") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

func TestRunBindRequiresBusID(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	err := runBind(ctrl, &out, "  ")
	if err == nil {
		t.Fatal("expected a usage error")
	}
	var usageErr usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected usageError, got %T: %v", err, err)
	}
	if len(ctrl.calls) != 0 {
		t.Fatalf("expected no calls, got %v", ctrl.calls)
	}
}

func TestRunBindFailure(t *testing.T) {
	ctrl := &fakeController{bindErr: &usbip.CommandError{Name: "usbip", ExitCode: 1}}
	var out bytes.Buffer
	err := runBind(ctrl, &out, "2-3")
	if err == nil {
		t.Fatal("expected an error")
	}
	var quiet silentError
	if !errors.As(err, &quiet) {
		t.Fatalf("expected silentError, got %T: %v", err, err)
	}
	if !strings.Contains(out.String(), "Failed to bind device 2-3") {
		t.Fatalf("expected failure message, got %q", out.String())
	}
}

func TestRunDetachDefaultsFromConfig(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	cfg := config.Default()
	if err := runDetach(ctrl, &out, "", cfg); err != nil {
		t.Fatalf("runDetach: %v", err)
	}
	want := []string{"detach --busid 1-7"}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
}

func TestRunDetachExplicitTarget(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	if err := runDetach(ctrl, &out, "3-2", config.Default()); err != nil {
		t.Fatalf("runDetach: %v", err)
	}
	want := []string{"detach --busid 3-2"}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
}

func TestRunDetachPropagatesFailure(t *testing.T) {
	ctrl := &fakeController{detachErr: &usbip.CommandError{Name: "usbip", ExitCode: 2}}
	var out bytes.Buffer
	if err := runDetach(ctrl, &out, "", config.Default()); err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(out.String(), "Failed to detach device 1-7") {
		t.Fatalf("expected failure message, got %q", out.String())
	}
}

func TestRunAttachUsesFlagHost(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	if err := runAttach(ctrl, &out, "192.168.1.10", "2-2", config.Default()); err != nil {
		t.Fatalf("runAttach: %v", err)
	}
	want := []string{"attach -r 192.168.1.10 -b 2-2"}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
}

func TestRunAttachFallsBackToConfiguredHost(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	cfg := config.Default()
	cfg.RemoteHost = "devbox"
	if err := runAttach(ctrl, &out, "", "2-2", cfg); err != nil {
		t.Fatalf("runAttach: %v", err)
	}
	want := []string{"attach -r devbox -b 2-2"}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
}

func TestRunAttachRequiresHost(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	err := runAttach(ctrl, &out, "", "2-2", config.Default())
	if err == nil {
		t.Fatal("expected a usage error")
	}
	var usageErr usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected usageError, got %T: %v", err, err)
	}
}

func TestRunList(t *testing.T) {
	ctrl := &fakeController{listing: " - busid 1-1 (046d:c52b)"}
	var out bytes.Buffer
	if err := runList(ctrl, &out); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if !strings.Contains(out.String(), "busid 1-1") {
		t.Fatalf("expected listing, got %q", out.String())
	}
}

func TestRunConfigShowAndUpdate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	flags := configCmdFlags{DetachBusID: "3-2", Sudo: "false"}
	if err := runConfig(flags, &out); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if !strings.Contains(out.String(), "detach_bus_id:  3-2") {
		t.Fatalf("expected updated detach target, got %q", out.String())
	}

	cfg, _, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DetachBusID != "3-2" || cfg.UseSudo {
		t.Fatalf("config not persisted: %+v", cfg)
	}
}

func TestRunConfigRejectsBadSudoValue(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	err := runConfig(configCmdFlags{Sudo: "maybe"}, &out)
	if err == nil {
		t.Fatal("expected a usage error")
	}
	var usageErr usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected usageError, got %T: %v", err, err)
	}
}

func TestRunConfigReset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	if err := runConfig(configCmdFlags{DetachBusID: "4-1"}, &out); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	out.Reset()
	if err := runConfig(configCmdFlags{Reset: true}, &out); err != nil {
		t.Fatalf("runConfig reset: %v", err)
	}
	cfg, _, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("expected defaults after reset, got %+v", cfg)
	}
}
