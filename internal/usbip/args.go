// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usbip

import "strings"

// ListArgs builds the argument list for enumerating shareable devices.
func ListArgs() []string {
	return []string{"list"}
}

// BindArgs builds the argument list for sharing a local device.
func BindArgs(busID string) []string {
	return []string{"bind", "--busid", strings.TrimSpace(busID)}
}

// DetachArgs builds the argument list for releasing a bound device.
func DetachArgs(busID string) []string {
	busID = strings.TrimSpace(busID)
	if busID == "" {
		busID = DefaultDetachBusID
	}
	return []string{"detach", "--busid", busID}
}

// AttachArgs builds the argument list for importing a device from a
// remote usbip host.
func AttachArgs(host, busID string) []string {
	return []string{"attach", "-r", strings.TrimSpace(host), "-b", strings.TrimSpace(busID)}
}

// WithSudo prefixes argv with a non-interactive sudo invocation. The
// caller decides whether sudo is wanted; running as root never needs it.
func WithSudo(name string, args []string) (string, []string) {
	sudoArgs := append([]string{"-n", name}, args...)
	return "sudo", sudoArgs
}
