// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SchemaVersion is the current on-disk VaultMeta schema version.
const SchemaVersion = 1

// VaultMeta is the vault's single plaintext file. It carries no secret
// material: just enough to derive keys from a supplied passphrase and to
// describe the vault's shape.
type VaultMeta struct {
	Version             int       `json:"version"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Salt                []byte    `json:"salt"`
	ArgonMemoryKiB      uint32    `json:"argon_memory_kib"`
	ArgonIterations      uint32    `json:"argon_iterations"`
	ArgonParallelism    uint8     `json:"argon_parallelism"`
	RecoveryEnabled     bool      `json:"recovery_enabled"`
	HardwareKeyRequired bool      `json:"hardware_key_required"`
}

// NewVaultMeta builds the metadata for a freshly created vault: current
// schema version, a fresh salt, and the supplied KDF parameters. Both
// recovery_enabled and hardware_key_required default to false.
func NewVaultMeta(salt []byte, memoryKiB, iterations uint32, parallelism uint8) VaultMeta {
	now := time.Now().UTC()
	return VaultMeta{
		Version:          SchemaVersion,
		CreatedAt:        now,
		UpdatedAt:        now,
		Salt:             salt,
		ArgonMemoryKiB:   memoryKiB,
		ArgonIterations:  iterations,
		ArgonParallelism: parallelism,
	}
}
