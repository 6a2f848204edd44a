// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// NonceSize is the length, in bytes, of an XChaCha20-Poly1305 nonce.
const NonceSize = chacha20poly1305.NonceSizeX

// ErrCiphertextTooShort is returned by [Decrypt] when the supplied blob is
// shorter than a nonce, meaning it cannot possibly be a valid encrypted
// blob.
var ErrCiphertextTooShort = errors.New("crypto: ciphertext too short")

// Encrypt seals plaintext under key using XChaCha20-Poly1305 with a fresh
// random nonce. The returned blob is framed as nonce(24) || ciphertext ||
// tag(16).
func Encrypt(key *SecureKey, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key.Bytes())
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by [Encrypt], verifying the Poly1305 tag.
// Returns [ErrCiphertextTooShort] if blob is too short to contain a nonce,
// or the AEAD's own authentication error if key is wrong or blob was
// tampered with.
func Decrypt(key *SecureKey, blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key.Bytes())
	if err != nil {
		return nil, err
	}

	if len(blob) < NonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	return aead.Open(nil, nonce, ciphertext, nil)
}
