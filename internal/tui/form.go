// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// form is the focus-cycling set of text inputs shared by the login and
// register pages.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}
