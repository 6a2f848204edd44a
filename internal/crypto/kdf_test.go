// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"
)

// testKDFParams keeps Argon2id's memory/iteration cost low enough for
// tests to run quickly; production vaults use [DefaultKDFParams].
func testKDFParams() KDFParams {
	return KDFParams{MemoryKiB: 8 * 1024, Iterations: 1, Parallelism: 1}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	k1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	k2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	if bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatalf("expected generated keys to differ, but they are equal")
	}
}

func TestDeriveMasterKey_DeterministicForSameInputs(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)
	params := testKDFParams()

	k1 := DeriveMasterKey("correct horse battery staple", salt, params)
	k2 := DeriveMasterKey("correct horse battery staple", salt, params)

	if !bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatalf("expected master keys to match for the same passphrase+salt+params")
	}
}

func TestDeriveMasterKey_DifferentPassphraseProducesDifferentKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)
	params := testKDFParams()

	k1 := DeriveMasterKey("correct", salt, params)
	k2 := DeriveMasterKey("wrong", salt, params)

	if bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatalf("expected different master keys for different passphrases")
	}
}

func TestDeriveMasterKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	params := testKDFParams()

	k1 := DeriveMasterKey("same passphrase", bytes.Repeat([]byte{0x01}, SaltSize), params)
	k2 := DeriveMasterKey("same passphrase", bytes.Repeat([]byte{0x02}, SaltSize), params)

	if bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatalf("expected different master keys for different salts")
	}
}

func TestDeriveSubkey_DeterministicAndContextSeparated(t *testing.T) {
	master, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	k1, err := DeriveSubkey(&master, "kek")
	if err != nil {
		t.Fatalf("DeriveSubkey error: %v", err)
	}
	k2, err := DeriveSubkey(&master, "kek")
	if err != nil {
		t.Fatalf("DeriveSubkey error: %v", err)
	}
	if !bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatalf("expected DeriveSubkey to be deterministic for the same context")
	}

	k3, err := DeriveSubkey(&master, "audit")
	if err != nil {
		t.Fatalf("DeriveSubkey error: %v", err)
	}
	if bytes.Equal(k1.Bytes(), k3.Bytes()) {
		t.Fatalf("expected different contexts to yield independent subkeys")
	}
}
