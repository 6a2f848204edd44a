// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

// Sentinel errors returned by vault operations to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotUnlocked is returned when an operation that requires an
	// unlocked vault (get, list, create, delete) is attempted on a
	// Closed or Locked vault.
	ErrNotUnlocked = errors.New("vault is not unlocked")

	// ErrWrongPassphrase is returned when unlocking fails because the
	// derived key-encryption key cannot open the stored DEK blob.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrNotFound is returned when an entry ID does not exist in any
	// category searched.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidInput marks malformed input, distinct from the
	// request-level validation done ahead of the daemon. No operation in
	// this package returns it; the daemon's error table maps it to the
	// invalid-input message.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptFormat is returned when an on-disk file cannot be parsed
	// as its expected structure once successfully decrypted.
	ErrCorruptFormat = errors.New("corrupt vault format")

	// ErrTamperedOrWrongKey is returned when AEAD decryption of an
	// on-disk file fails: either the authentication tag does not match
	// (tampering) or the wrong key was used.
	ErrTamperedOrWrongKey = errors.New("tampered data or wrong key")

	// ErrVaultNotFound is returned by Open when no vault.meta exists at
	// the configured path.
	ErrVaultNotFound = errors.New("vault does not exist")

	// ErrVaultAlreadyExists is returned by Create when a vault.meta
	// already exists at the configured path.
	ErrVaultAlreadyExists = errors.New("vault already exists")
)
