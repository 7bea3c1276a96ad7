// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the development API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and bearer authentication are handled in this
// package before requests are delegated to the service layer. Responses use
// the {success,data,message,meta} envelope; errors use the {"detail": ...}
// shapes the client is expected to parse.
package http
