// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the development API, including
// startup and graceful shutdown when the run context is cancelled.
package server
