// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package usbip

import (
	"os"
	"os/exec"
)

// usbipd on Windows runs elevated on its own; sudo never applies.
func needsSudo() bool {
	return false
}

func streamTerminal(cmd *exec.Cmd, out *os.File) error {
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}
