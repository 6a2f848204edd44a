// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic primitives the vault key
// hierarchy is built from: Argon2id passphrase-based key derivation,
// HKDF-SHA256 subkey expansion, and XChaCha20-Poly1305 authenticated
// encryption.
package crypto

import "errors"

// KeySize is the fixed length, in bytes, of every key in the vault's key
// hierarchy: the master key, the KEK, every category key, the audit key,
// and the DEK.
const KeySize = 32

// ErrKeyLength is returned by [NewSecureKey] when the supplied byte slice is
// not exactly [KeySize] bytes long.
var ErrKeyLength = errors.New("crypto: key must be exactly 32 bytes")

// SecureKey wraps a fixed-size secret key. Callers must call [SecureKey.Zero]
// once the key is no longer needed so the secret does not linger in memory
// any longer than necessary.
type SecureKey struct {
	data [KeySize]byte
}

// NewSecureKey copies b into a new [SecureKey]. b must be exactly [KeySize]
// bytes.
func NewSecureKey(b []byte) (SecureKey, error) {
	var k SecureKey
	if len(b) != KeySize {
		return k, ErrKeyLength
	}
	copy(k.data[:], b)
	return k, nil
}

// Bytes returns the key material as a slice backed by the receiver's
// internal array. The returned slice must not outlive the [SecureKey].
func (k *SecureKey) Bytes() []byte {
	return k.data[:]
}

// Zero overwrites the key material with zeroes.
func (k *SecureKey) Zero() {
	for i := range k.data {
		k.data[i] = 0
	}
}

// Clone returns an independent copy of the key whose lifetime (and zeroing)
// is managed separately from the receiver.
func (k *SecureKey) Clone() SecureKey {
	var c SecureKey
	copy(c.data[:], k.data[:])
	return c
}
