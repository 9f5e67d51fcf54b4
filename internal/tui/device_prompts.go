// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/hwbridge/usbshare/internal/usbip"
)

const (
	actionPromptText = "Do you want to (a)ttach or (d)tach: "
	busIDPromptText  = "Enter the bus ID of the USB device to bind (e.g. 1-1): "
)

// PromptAction asks which device action to run. On a plain stream the
// reply is one line: "a" in any case selects attach, everything else
// falls through to detach without re-prompting.
func (p *Prompter) PromptAction() (usbip.Action, error) {
	if p.useDialogs() {
		choice, err := p.selectDialog(
			"USB device action",
			"Attach shares a local device; detach releases one.",
			[]SelectOption{
				{Label: "Attach (share a device)", Value: "attach"},
				{Label: "Detach (release a device)", Value: "detach"},
			},
			"detach",
		)
		if err != nil {
			return usbip.ActionDetach, err
		}
		if choice == "attach" {
			return usbip.ActionAttach, nil
		}
		return usbip.ActionDetach, nil
	}
	fmt.Fprint(p.out, actionPromptText)
	line, err := readLine(p.reader)
	if err != nil {
		return usbip.ActionDetach, err
	}
	return usbip.ParseAction(line), nil
}

// PromptBusID collects the bus ID for the attach path. The value is
// passed to the utility as-is; the utility owns validation.
func (p *Prompter) PromptBusID() (string, error) {
	if p.useDialogs() {
		return p.inputDialog(
			"Bus ID",
			"Bus ID of the USB device to bind.",
			"1-1",
			nil,
		)
	}
	fmt.Fprint(p.out, busIDPromptText)
	return readLine(p.reader)
}

// AcknowledgeKey blocks until the user presses a key (one raw byte on a
// terminal, one line otherwise) so the report stays on screen.
func (p *Prompter) AcknowledgeKey(prompt string) error {
	fmt.Fprint(p.out, prompt)
	if file, ok := p.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fd := int(file.Fd())
		state, err := term.MakeRaw(fd)
		if err == nil {
			buf := make([]byte, 1)
			_, _ = file.Read(buf)
			_ = term.Restore(fd, state)
			fmt.Fprintln(p.out)
			return nil
		}
	}
	_, err := readLine(p.reader)
	fmt.Fprintln(p.out)
	return err
}
