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
)

type configCmdFlags struct {
	Command     string `flag:"command" help:"set the USB/IP utility binary"`
	RemoteHost  string `flag:"remote-host" help:"set the default remote host for attach"`
	DetachBusID string `flag:"detach-busid" help:"set the default detach target"`
	Sudo        string `flag:"sudo" help:"run the utility via sudo (true or false)"`
	Reset       bool   `flag:"reset" help:"remove all config files"`
}

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configCmdFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runConfig(result.SubCommandFlags, os.Stdout)
}

func runConfig(flags configCmdFlags, out io.Writer) error {
	if flags.Reset {
		if err := config.RemoveConfigFiles(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Configuration reset.")
		return nil
	}

	cfg, path, err := config.Load()
	if err != nil {
		return err
	}

	changed := false
	if value := strings.TrimSpace(flags.Command); value != "" {
		cfg.Command = value
		changed = true
	}
	if value := strings.TrimSpace(flags.RemoteHost); value != "" {
		cfg.RemoteHost = value
		changed = true
	}
	if value := strings.TrimSpace(flags.DetachBusID); value != "" {
		cfg.DetachBusID = value
		changed = true
	}
	if value := strings.TrimSpace(flags.Sudo); value != "" {
		switch strings.ToLower(value) {
		case "true", "1":
			cfg.UseSudo = true
		case "false", "0":
			cfg.UseSudo = false
		default:
			return newUsageError("invalid value for --sudo (expected true or false)")
		}
		changed = true
	}
	if changed {
		if err := config.Save(path, cfg); err != nil {
			return err
		}
	}

	th := theme.ForOutput(out)
	fmt.Fprintln(out, th.Render(th.Header, "usbshare configuration"))
	fmt.Fprintf(out, "  command:        %s\n", cfg.Command)
	fmt.Fprintf(out, "  use_sudo:       %t\n", cfg.UseSudo)
	fmt.Fprintf(out, "  remote_host:    %s\n", displayValue(cfg.RemoteHost))
	fmt.Fprintf(out, "  detach_bus_id:  %s\n", cfg.DetachBusID)
	fmt.Fprintln(out, th.Render(th.Muted, "  "+path))
	return nil
}

func displayValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(unset)"
	}
	return value
}
