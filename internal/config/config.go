// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const (
	defaultSocket   = "/run/prosperity/vault.sock"
	defaultVaultDir = ".prosperity/vault"
)

// StructuredConfig is the top-level configuration container for vaultd. It
// aggregates all settings needed to run the daemon and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Daemon holds the socket and vault-directory settings the daemon needs
	// to start serving requests.
	Daemon Daemon `envPrefix:"VAULTD_"`

	// Log holds structured-logging settings.
	Log Log `envPrefix:"VAULTD_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the VAULTD_CONFIG environment variable or the -c/-config
	// flag.
	JSONFilePath string `env:"VAULTD_CONFIG"`
}

// Daemon holds the settings that govern how vaultd exposes itself to
// clients and where it keeps vault state on disk.
type Daemon struct {
	// Socket is the filesystem path of the Unix domain socket the daemon
	// listens on.
	// Env: VAULTD_SOCKET
	Socket string `env:"SOCKET"`

	// VaultDir is the directory containing vault.meta, dek.enc, the
	// categories/ subdirectory, and audit.enc.
	// Env: VAULTD_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// Log holds structured-logging configuration consumed by internal/logger.
type Log struct {
	// Level is the minimum zerolog level emitted by the daemon and client
	// (e.g. "debug", "info", "warn", "error").
	// Env: VAULTD_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// GetStructuredConfig loads, merges, and validates vaultd's configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills Socket and VaultDir with their documented defaults
// when neither an env var, flag, nor JSON file supplied a value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Daemon.Socket == "" {
		cfg.Daemon.Socket = defaultSocket
	}

	if cfg.Daemon.VaultDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Daemon.VaultDir = filepath.Join(home, defaultVaultDir)
		}
	}
}
