// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a [StructuredConfig].
//
// Flags:
//
//	-api-url              API base URL used by the client
//	-request-timeout      outbound request timeout (e.g. "10s")
//	-d                    token store DSN (sqlite file or "memory")
//	-revalidate-interval  session revalidation period (e.g. "5m")
//	-log-file             client log file
//	-a                    dev API listen address host:port
//	-token-sign-key       dev API token signing key
//	-token-issuer         dev API token issuer
//	-access-token-ttl     dev API access token lifetime
//	-refresh-token-ttl    dev API refresh token lifetime
//	-c / -config          JSON config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("beyond", flag.ContinueOnError)

	var serverAddress NetAddress
	var apiURL, dsn, logFile, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout, revalidateInterval, accessTTL, refreshTTL time.Duration

	fs.StringVar(&apiURL, "api-url", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g. 10s)")
	fs.StringVar(&dsn, "d", "", "Token store DSN")
	fs.DurationVar(&revalidateInterval, "revalidate-interval", 0, "Session revalidation period (e.g. 5m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.Var(&serverAddress, "a", "Dev API listen address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTTL, "access-token-ttl", 0, "Access token lifetime")
	fs.DurationVar(&refreshTTL, "refresh-token-ttl", 0, "Refresh token lifetime")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTTL,
			RefreshTokenDuration: refreshTTL,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Server:  Server{HTTPAddress: serverAddress.String()},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RevalidateInterval: revalidateInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
