// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// EntryType is the closed set of secret shapes a vault entry can hold.
type EntryType int

const (
	EntryTypePassword EntryType = iota
	EntryTypeAPIKey
	EntryTypeOAuthToken
	EntryTypeTOTPSeed
	EntryTypeCard
	EntryTypeBankAccount
	EntryTypeIdentity
	EntryTypeSecureNote
	EntryTypeCertificate
	EntryTypeRecoveryCode
	EntryTypeCommand
	EntryTypePreference
	EntryTypeSchedule
)

var entryTypeNames = [...]string{
	EntryTypePassword:     "password",
	EntryTypeAPIKey:       "api_key",
	EntryTypeOAuthToken:   "oauth_token",
	EntryTypeTOTPSeed:     "totp_seed",
	EntryTypeCard:         "card",
	EntryTypeBankAccount:  "bank_account",
	EntryTypeIdentity:     "identity",
	EntryTypeSecureNote:   "secure_note",
	EntryTypeCertificate:  "certificate",
	EntryTypeRecoveryCode: "recovery_code",
	EntryTypeCommand:      "command",
	EntryTypePreference:   "preference",
	EntryTypeSchedule:     "schedule",
}

var entryTypeByName = func() map[string]EntryType {
	m := make(map[string]EntryType, len(entryTypeNames))
	for t, name := range entryTypeNames {
		m[name] = EntryType(t)
	}
	return m
}()

// String returns the entry type's wire name (e.g. "api_key").
func (t EntryType) String() string {
	if int(t) < 0 || int(t) >= len(entryTypeNames) {
		return fmt.Sprintf("entry_type(%d)", int(t))
	}
	return entryTypeNames[t]
}

// Valid reports whether t is one of the closed set of known entry types.
func (t EntryType) Valid() bool {
	return int(t) >= 0 && int(t) < len(entryTypeNames)
}

// ParseEntryType looks up an entry type by its wire name. Returns false if
// name is not a known entry type.
func ParseEntryType(name string) (EntryType, bool) {
	t, ok := entryTypeByName[name]
	return t, ok
}

// MarshalJSON implements [json.Marshaler], encoding the entry type as its
// wire name.
func (t EntryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. It rejects any string that
// is not one of the known entry type names.
func (t *EntryType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}

	parsed, ok := ParseEntryType(name)
	if !ok {
		return fmt.Errorf("models: unknown entry_type %q", name)
	}

	*t = parsed
	return nil
}
