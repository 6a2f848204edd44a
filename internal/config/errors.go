// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or malformed.
var (
	// ErrInvalidSocketPath indicates the daemon's Unix domain socket path
	// is empty after merging all configuration sources and applying
	// defaults.
	ErrInvalidSocketPath = errors.New("invalid socket path")
	// ErrInvalidVaultDir indicates the vault directory path is empty after
	// merging all configuration sources and applying defaults.
	ErrInvalidVaultDir = errors.New("invalid vault directory")
)
