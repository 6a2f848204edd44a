// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// GenesisHash is the previous-hash value of the first entry in a fresh
// audit chain: 64 lowercase hex '0' characters.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// HashChainLink returns the lowercase hex BLAKE2b-256 digest of input, for
// use as one link in the audit log's hash chain.
func HashChainLink(input string) string {
	sum := blake2b.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
