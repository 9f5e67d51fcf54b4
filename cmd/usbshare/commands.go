// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shayne/yargs"

	"github.com/hwbridge/usbshare/internal/config"
	"github.com/hwbridge/usbshare/internal/tui/theme"
	"github.com/hwbridge/usbshare/internal/usbip"
)

func loadController() (usbip.Controller, config.Config, error) {
	cfg, _, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	return usbip.NewExecController(cfg.Command, cfg.UseSudo), cfg, nil
}

func handleListCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	ctrl, _, err := loadController()
	if err != nil {
		return err
	}
	return runList(ctrl, os.Stdout)
}

func runList(ctrl usbip.Controller, out io.Writer) error {
	return ctrl.List(out)
}

type bindArgs struct {
	BusID string `pos:"0" help:"bus ID of the device to share (e.g. 1-1)"`
}

func handleBindCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, struct{}, bindArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	ctrl, _, err := loadController()
	if err != nil {
		return err
	}
	return runBind(ctrl, os.Stdout, result.Args.BusID)
}

func runBind(ctrl usbip.Controller, out io.Writer, busID string) error {
	if strings.TrimSpace(busID) == "" {
		return newUsageError("bind requires a bus ID (e.g. usbshare bind 1-1)")
	}
	th := theme.ForOutput(out)
	if err := ctrl.Bind(busID); err != nil {
		fmt.Fprintln(out, th.Render(th.Error, fmt.Sprintf("Failed to bind device %s. Check the bus ID and try again.", busID)))
		return newSilentError(err)
	}
	fmt.Fprintln(out, th.Render(th.Success, fmt.Sprintf("Device %s bound successfully.", busID)))
	return nil
}

type detachCmdArgs struct {
	BusID string `pos:"0?" help:"bus ID to release (defaults to the configured detach target)"`
}

func handleDetachCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, struct{}, detachCmdArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	ctrl, cfg, err := loadController()
	if err != nil {
		return err
	}
	return runDetach(ctrl, os.Stdout, result.Args.BusID, cfg)
}

func runDetach(ctrl usbip.Controller, out io.Writer, busID string, cfg config.Config) error {
	if strings.TrimSpace(busID) == "" {
		busID = cfg.DetachBusID
	}
	if strings.TrimSpace(busID) == "" {
		busID = usbip.DefaultDetachBusID
	}
	th := theme.ForOutput(out)
	if err := ctrl.Detach(busID); err != nil {
		fmt.Fprintln(out, th.Render(th.Error, fmt.Sprintf("Failed to detach device %s.", busID)))
		return newSilentError(err)
	}
	fmt.Fprintln(out, th.Render(th.Success, fmt.Sprintf("Device %s detached.", busID)))
	return nil
}

type attachFlags struct {
	Host string `flag:"host" help:"remote usbip host (defaults to the configured remote_host)"`
}

type attachCmdArgs struct {
	BusID string `pos:"0" help:"bus ID of the device on the remote host"`
}

func handleAttachCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, attachFlags, attachCmdArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	ctrl, cfg, err := loadController()
	if err != nil {
		return err
	}
	return runAttach(ctrl, os.Stdout, result.SubCommandFlags.Host, result.Args.BusID, cfg)
}

func runAttach(ctrl usbip.Controller, out io.Writer, host, busID string, cfg config.Config) error {
	if strings.TrimSpace(busID) == "" {
		return newUsageError("attach requires a bus ID (e.g. usbshare attach 2-2 --host 192.168.1.10)")
	}
	if strings.TrimSpace(host) == "" {
		host = cfg.RemoteHost
	}
	if strings.TrimSpace(host) == "" {
		return newUsageError("no host provided and no remote_host configured")
	}
	th := theme.ForOutput(out)
	if err := ctrl.Attach(host, busID); err != nil {
		fmt.Fprintln(out, th.Render(th.Error, fmt.Sprintf("Failed to attach device %s from %s.", busID, host)))
		return newSilentError(err)
	}
	fmt.Fprintln(out, th.Render(th.Success, fmt.Sprintf("Device %s attached from %s.", busID, host)))
	return nil
}
