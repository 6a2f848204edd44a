// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEntryTypes() []EntryType {
	return []EntryType{
		EntryTypePassword, EntryTypeAPIKey, EntryTypeOAuthToken, EntryTypeTOTPSeed,
		EntryTypeCard, EntryTypeBankAccount, EntryTypeIdentity, EntryTypeSecureNote,
		EntryTypeCertificate, EntryTypeRecoveryCode, EntryTypeCommand, EntryTypePreference,
		EntryTypeSchedule,
	}
}

func TestEntryType_JSONRoundTrip(t *testing.T) {
	for _, et := range allEntryTypes() {
		b, err := json.Marshal(et)
		require.NoError(t, err)

		var got EntryType
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, et, got)
	}
}

func TestEntryType_UnknownNameIsRejected(t *testing.T) {
	var et EntryType
	err := json.Unmarshal([]byte(`"not-a-type"`), &et)
	assert.Error(t, err)
}

func TestParseEntryType(t *testing.T) {
	got, ok := ParseEntryType("api_key")
	require.True(t, ok)
	assert.Equal(t, EntryTypeAPIKey, got)

	_, ok = ParseEntryType("nope")
	assert.False(t, ok)
}
