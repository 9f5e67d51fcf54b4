// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usbip

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// ExecController invokes the external USB/IP utility as a subprocess.
type ExecController struct {
	Command string
	UseSudo bool
}

func NewExecController(command string, useSudo bool) *ExecController {
	if strings.TrimSpace(command) == "" {
		command = "usbip"
	}
	return &ExecController{Command: command, UseSudo: useSudo}
}

func (c *ExecController) List(out io.Writer) error {
	cmd := c.buildCmd(ListArgs())
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return c.wrapExit(streamTerminal(cmd, file))
	}
	cmd.Stdout = out
	cmd.Stderr = out
	return c.wrapExit(cmd.Run())
}

func (c *ExecController) Bind(busID string) error {
	return c.runChecked(BindArgs(busID))
}

func (c *ExecController) Detach(busID string) error {
	return c.runChecked(DetachArgs(busID))
}

func (c *ExecController) Attach(host, busID string) error {
	return c.runChecked(AttachArgs(host, busID))
}

func (c *ExecController) buildCmd(args []string) *exec.Cmd {
	name := c.Command
	if c.UseSudo && needsSudo() {
		name, args = WithSudo(name, args)
	}
	return exec.Command(name, args...)
}

func (c *ExecController) runChecked(args []string) error {
	cmd := c.buildCmd(args)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}
	output := strings.TrimSpace(string(out))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Name: c.Command, ExitCode: exitErr.ExitCode(), Output: output}
	}
	if output == "" {
		return fmt.Errorf("failed to run %s: %w", c.Command, err)
	}
	return fmt.Errorf("failed to run %s: %w: %s", c.Command, err, output)
}

func (c *ExecController) wrapExit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Name: c.Command, ExitCode: exitErr.ExitCode()}
	}
	return fmt.Errorf("failed to run %s: %w", c.Command, err)
}
