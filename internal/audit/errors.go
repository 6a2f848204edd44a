// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import "errors"

// Sentinel errors returned by audit log operations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptFormat is returned when the audit file decrypts
	// successfully but its contents cannot be parsed as newline-delimited
	// JSON audit records.
	ErrCorruptFormat = errors.New("corrupt audit log format")

	// ErrTamperedOrWrongKey is returned when AEAD decryption of the audit
	// file fails.
	ErrTamperedOrWrongKey = errors.New("tampered audit log or wrong key")

	// ErrChainBroken is returned by VerifyChain when an entry's recorded
	// hash does not match its recomputed hash, or its previous_hash does
	// not match the prior entry's hash.
	ErrChainBroken = errors.New("audit chain integrity check failed")
)
