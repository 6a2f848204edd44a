// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultEntry is one secret stored in a vault category. Value holds the raw
// secret bytes; encoding/json renders it as a standard-alphabet base64
// string automatically, satisfying the textual encoding's requirement that
// secret bytes travel as base64 within the otherwise plaintext-JSON
// category file (the category file itself is only ever written to disk
// after the whole structure has been AEAD-encrypted).
type VaultEntry struct {
	ID          string     `json:"id"`
	Category    Category   `json:"category"`
	Type        EntryType  `json:"type"`
	Name        string     `json:"name"`
	Value       []byte     `json:"value"`
	Username    string     `json:"username,omitempty"`
	URL         string     `json:"url,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AccessedAt  *time.Time `json:"accessed_at,omitempty"`
	AccessCount uint32     `json:"access_count"`
}

// NewVaultEntry constructs an entry with ID, timestamps, and the required
// fields set. Username, URL, Notes, and Tags default to their zero values
// and can be set directly on the returned entry. AccessedAt is nil and
// AccessCount is 0; reading an entry does not update either field.
func NewVaultEntry(id string, category Category, entryType EntryType, name string, value []byte) VaultEntry {
	now := time.Now().UTC()
	return VaultEntry{
		ID:        id,
		Category:  category,
		Type:      entryType,
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Metadata projects the entry down to the fields safe to list: no Value,
// no Notes, no timestamps.
func (e VaultEntry) Metadata() EntryMetadata {
	return EntryMetadata{
		ID:       e.ID,
		Category: e.Category,
		Type:     e.Type,
		Name:     e.Name,
		Username: e.Username,
		URL:      e.URL,
		Tags:     e.Tags,
	}
}

// EntryMetadata is a VaultEntry projection omitting Value, Notes, and
// timestamps, used wherever a listing should not echo secret material.
type EntryMetadata struct {
	ID       string    `json:"id"`
	Category Category  `json:"category"`
	Type     EntryType `json:"type"`
	Name     string    `json:"name"`
	Username string    `json:"username,omitempty"`
	URL      string    `json:"url,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

// CategoryData is the ordered collection of entries belonging to one
// category, the structure encrypted wholesale into that category's .enc
// file.
type CategoryData struct {
	Entries []VaultEntry `json:"entries"`
}
