// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "flag"

// ParseFlags parses all vaultd command-line flags.
//
// Flags:
//
//	-socket socket path for the Unix domain socket vaultd listens on
//	-vault vault directory path
//	-log-level minimum log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var socket string
	var vaultDir string
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&socket, "socket", "", "Unix domain socket path")
	flag.StringVar(&vaultDir, "vault", "", "Vault directory path")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Daemon: Daemon{
			Socket:   socket,
			VaultDir: vaultDir,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
