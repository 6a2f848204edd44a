// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// SaltSize is the length, in bytes, of a vault salt.
const SaltSize = 32

// GenerateSalt returns SaltSize random bytes read from the OS CSPRNG, for
// use as a fresh vault's Argon2id salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateKey returns a fresh, random [SecureKey], for use as a new vault's
// data-encryption key.
func GenerateKey() (SecureKey, error) {
	buf := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return SecureKey{}, err
	}
	key, err := NewSecureKey(buf)
	for i := range buf {
		buf[i] = 0
	}
	return key, err
}

// KDFParams holds the Argon2id tuning parameters persisted in a vault's
// metadata and re-read, never hardcoded, on every unlock so a vault created
// under one parameter set can still be opened if the defaults change later.
type KDFParams struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
}

// DefaultKDFParams returns the parameters used for newly created vaults.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		MemoryKiB:   262144, // 256 MiB
		Iterations:  4,
		Parallelism: 4,
	}
}

// DeriveMasterKey derives the master key from passphrase and salt using
// Argon2id with params. The result is deterministic: the same passphrase,
// salt, and params always produce the same master key.
func DeriveMasterKey(passphrase string, salt []byte, params KDFParams) SecureKey {
	raw := argon2.IDKey([]byte(passphrase), salt, params.Iterations, params.MemoryKiB, params.Parallelism, KeySize)
	key, _ := NewSecureKey(raw) // argon2.IDKey always returns KeySize bytes
	for i := range raw {
		raw[i] = 0
	}
	return key
}

// DeriveSubkey expands master into an independent subkey via HKDF-SHA256,
// using context as the HKDF info parameter. Distinct context strings yield
// independent subkeys even when expanded from the same master key.
func DeriveSubkey(master *SecureKey, context string) (SecureKey, error) {
	reader := hkdf.New(sha256.New, master.Bytes(), nil, []byte(context))
	okm := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, okm); err != nil {
		return SecureKey{}, err
	}
	key, err := NewSecureKey(okm)
	for i := range okm {
		okm[i] = 0
	}
	return key, err
}
