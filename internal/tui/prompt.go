// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/hwbridge/usbshare/internal/tui/theme"
)

type SelectOption struct {
	Label string
	Value string
}

// Prompter reads a sequence of prompts from one input stream. A single
// buffered reader is shared across prompts so piped input is not lost
// between reads.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *Prompter) useDialogs() bool {
	return useDialogPrompts(p.in, p.out)
}

func (p *Prompter) selectDialog(title, description string, options []SelectOption, defaultValue string) (string, error) {
	value := defaultValue
	opts := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		opts = append(opts, huh.NewOption(label, opt.Value))
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Description(description).
			Options(opts...).
			Value(&value),
	))
	form.WithInput(p.in).WithOutput(p.out).WithTheme(theme.Huh())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return defaultValue, nil
		}
		return "", err
	}
	return value, nil
}

func (p *Prompter) inputDialog(title, description, placeholder string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	form := huh.NewForm(huh.NewGroup(input))
	form.WithInput(p.in).WithOutput(p.out).WithTheme(theme.Huh())
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func useDialogPrompts(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return false
	}
	return true
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
