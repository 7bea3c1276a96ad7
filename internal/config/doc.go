// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the
// terminal client and the dev API.
//
// Sources, later ones overriding non-zero fields of earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c)
//
// Defaults fill whatever is still zero afterwards. Entry points are
// [GetClientConfig] and [GetDevAPIConfig].
package config
