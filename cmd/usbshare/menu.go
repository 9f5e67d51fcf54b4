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

	"github.com/shayne/yargs"

	"github.com/hwbridge/usbshare/internal/config"
	"github.com/hwbridge/usbshare/internal/tui"
	"github.com/hwbridge/usbshare/internal/tui/theme"
	"github.com/hwbridge/usbshare/internal/usbip"
)

func handleMenuCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	env := &menuEnv{
		in:         os.Stdin,
		out:        os.Stdout,
		controller: usbip.NewExecController(cfg.Command, cfg.UseSudo),
		cfg:        cfg,
	}
	return runMenu(env)
}

type menuEnv struct {
	in         io.Reader
	out        io.Writer
	controller usbip.Controller
	cfg        config.Config
}

// runMenu is the interactive flow: list devices, collect one action,
// invoke the utility, report, and wait for a keypress.
func runMenu(env *menuEnv) error {
	th := theme.ForOutput(env.out)

	// The listing is informational; a failure here should not keep the
	// user from detaching a device the utility can no longer list.
	_ = env.controller.List(env.out)

	p := tui.NewPrompter(env.in, env.out)
	action, err := p.PromptAction()
	if err != nil {
		return err
	}

	var result error
	switch action {
	case usbip.ActionAttach:
		busID, err := p.PromptBusID()
		if err != nil {
			return err
		}
		if err := env.controller.Bind(busID); err != nil {
			fmt.Fprintln(env.out, th.Render(th.Error, fmt.Sprintf("Failed to bind device %s. Check the bus ID and try again.", busID)))
			result = newSilentError(err)
		} else {
			fmt.Fprintln(env.out, th.Render(th.Success, fmt.Sprintf("Device %s bound successfully.", busID)))
		}
	default:
		target := env.cfg.DetachBusID
		if target == "" {
			target = usbip.DefaultDetachBusID
		}
		// Detach stays fire-and-forget on the menu path; the utility
		// already reports its own failures on stderr.
		_ = env.controller.Detach(target)
		fmt.Fprintln(env.out, th.Render(th.Value, fmt.Sprintf("Detach requested for device %s.", target)))
	}

	_ = p.AcknowledgeKey("Press any key to continue...")
	return result
}
