// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	refresh key.Binding
	logout  key.Binding
	copy    key.Binding
	health  key.Binding
	version key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	refresh: key.NewBinding(key.WithKeys("r")),
	logout:  key.NewBinding(key.WithKeys("l")),
	copy:    key.NewBinding(key.WithKeys("c")),
	health:  key.NewBinding(key.WithKeys("h")),
	version: key.NewBinding(key.WithKeys("v")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
}
