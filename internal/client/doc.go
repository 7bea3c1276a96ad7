// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session services and the background
// revalidation job into a single process lifecycle: the session is
// constructed and hydrated once, operated through the UI, and torn down
// when the UI exits.
package client
