// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across
// vaultd's daemon and socket handlers.
//
// All Msg* constants are human-readable message strings that are written
// into error responses or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the protocol.
package app

const (
	// MsgInvalidInput is returned when a decoded request fails
	// pre-dispatch validation (unknown cmd, malformed UUID, invalid
	// base64, missing required field).
	MsgInvalidInput = "invalid input"

	// MsgNotUnlocked is returned when an operation that requires an
	// unlocked vault is attempted while the vault is Closed or Locked.
	MsgNotUnlocked = "vault is not unlocked"

	// MsgWrongPassphrase is returned when an unlock request's passphrase
	// does not match the vault's stored key material.
	MsgWrongPassphrase = "wrong passphrase"

	// MsgNotFound is returned when a get, delete, or use_for_auth request
	// targets an entry ID that does not exist in any category.
	MsgNotFound = "entry not found"

	// MsgCorruptFormat is returned when an on-disk vault or audit file
	// decrypts successfully but cannot be parsed as its expected
	// structure.
	MsgCorruptFormat = "corrupt vault format"

	// MsgTamperedOrWrongKey is returned when AEAD decryption of an
	// on-disk file fails: either the authentication tag does not match
	// or the wrong key was used.
	MsgTamperedOrWrongKey = "tampered data or wrong key"

	// MsgVaultNotFound is returned when an operation requires an existing
	// vault but none has been created at the configured path yet.
	MsgVaultNotFound = "vault does not exist"

	// MsgVaultAlreadyExists is returned when an unlock request tries to
	// create a vault at a path that already holds one.
	MsgVaultAlreadyExists = "vault already exists"

	// MsgInternalError is returned when an unexpected, non-sentinel
	// failure (an I/O error, a cryptographic primitive failure) occurs
	// that the client cannot resolve by retrying with different input.
	MsgInternalError = "internal error"
)
