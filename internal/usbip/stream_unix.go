// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package usbip

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

func needsSudo() bool {
	return os.Geteuid() != 0
}

// streamTerminal runs cmd attached to a pty so the utility keeps its
// terminal formatting, and copies its output to out until it exits.
func streamTerminal(cmd *exec.Cmd, out *os.File) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = ptmx.Close()
	}()

	copyDone := make(chan struct{})
	go func() {
		// The copy returns EIO on Linux once the child exits; that is
		// the normal end of stream.
		_, _ = io.Copy(out, ptmx)
		close(copyDone)
	}()

	err = cmd.Wait()
	<-copyDone
	return err
}
