// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shayne/yargs"
)

func main() {
	if err := runCLI(); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	var quietErr silentError
	if errors.As(err, &quietErr) {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func newSilentError(err error) error {
	if err == nil {
		return nil
	}
	return silentError{err: err}
}

var (
	version = "dev"
	commit  = ""
)

func runCLI() error {
	args := ensureMenuSubcommand(os.Args[1:])
	handlers := map[string]yargs.SubcommandHandler{
		"menu":    handleMenuCommand,
		"list":    handleListCommand,
		"bind":    handleBindCommand,
		"detach":  handleDetachCommand,
		"attach":  handleAttachCommand,
		"config":  handleConfigCommand,
		"version": handleVersionCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

// ensureMenuSubcommand routes a bare invocation to the interactive menu.
func ensureMenuSubcommand(args []string) []string {
	if len(args) == 0 {
		return []string{"menu"}
	}
	if args[0] == "help" {
		return append([]string{"--help"}, args[1:]...)
	}
	return args
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "usbshare",
		Description: "Share USB devices over USB/IP via the usbip utility",
		Examples: []string{
			"usbshare",
			"usbshare list",
			"usbshare bind 1-1",
			"usbshare detach",
			"usbshare attach 2-2 --host 192.168.1.10",
			"usbshare config --detach-busid 1-7",
			"usbshare version",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"menu": {
			Name:        "menu",
			Description: "Run the interactive attach/detach menu",
			Hidden:      true,
		},
		"list": {
			Name:        "list",
			Description: "List shareable USB devices",
		},
		"bind": {
			Name:        "bind",
			Description: "Share a local USB device",
			Usage:       "<busid>",
			Examples: []string{
				"usbshare bind 1-1",
			},
		},
		"detach": {
			Name:        "detach",
			Description: "Release a shared USB device",
			Usage:       "[<busid>]",
			Examples: []string{
				"usbshare detach",
				"usbshare detach 3-2",
			},
		},
		"attach": {
			Name:        "attach",
			Description: "Import a USB device from a remote usbip host",
			Usage:       "<busid> [--host <host>]",
			Examples: []string{
				"usbshare attach 2-2 --host 192.168.1.10",
			},
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func versionString() string {
	out := "usbshare " + version
	if strings.TrimSpace(commit) != "" {
		out += " (" + commit + ")"
	}
	return out
}
