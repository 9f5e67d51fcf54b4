// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usbip

import (
	"fmt"
	"io"
	"strings"
)

// DefaultDetachBusID is the detach target used when none is configured.
const DefaultDetachBusID = "1-7"

// Action is the operation selected from the interactive menu.
type Action int

const (
	// ActionDetach is the default when the reply is not recognized.
	ActionDetach Action = iota
	ActionAttach
)

func (a Action) String() string {
	if a == ActionAttach {
		return "attach"
	}
	return "detach"
}

// ParseAction maps a one-line reply to an Action. Only "a" (any case)
// selects attach; every other reply, including an empty one, selects
// detach.
func ParseAction(reply string) Action {
	if strings.EqualFold(reply, "a") {
		return ActionAttach
	}
	return ActionDetach
}

// Controller is the boundary to the external USB/IP utility. The
// orchestration flow only talks to this interface so it can run against
// a recording fake in tests.
type Controller interface {
	// List streams the utility's device listing to out without parsing it.
	List(out io.Writer) error
	// Bind shares a local device by bus ID.
	Bind(busID string) error
	// Detach releases a previously bound device by bus ID.
	Detach(busID string) error
	// Attach imports a device from a remote usbip host.
	Attach(host, busID string) error
}

// CommandError reports a failed utility invocation with its real exit
// code and trimmed combined output.
type CommandError struct {
	Name     string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Name, e.ExitCode, e.Output)
}
