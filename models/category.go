// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the data types persisted inside a vault: entries,
// categories, metadata, and audit records.
package models

import (
	"encoding/json"
	"fmt"
)

// Category partitions vault entries into independently keyed groups. Every
// category has its own derived encryption key and its own on-disk file, so
// unlocking one category never exposes another's contents.
type Category int

const (
	CategoryAuthentication Category = iota
	CategoryFinancial
	CategoryIdentity
	CategoryHealth
	CategoryPersonal
	CategoryPatterns
)

// categoryNames is the closed set of wire names, indexed by Category value.
// It is also the canonical enumeration order used wherever "all categories,
// in order" matters (vault creation, lazy category loading on get/delete).
var categoryNames = [...]string{
	CategoryAuthentication: "authentication",
	CategoryFinancial:      "financial",
	CategoryIdentity:       "identity",
	CategoryHealth:         "health",
	CategoryPersonal:       "personal",
	CategoryPatterns:       "patterns",
}

// categoryAbbrev is the closed set of short forms used only for the
// on-disk filename and the HKDF context label — never for the wire name.
var categoryAbbrev = [...]string{
	CategoryAuthentication: "auth",
	CategoryFinancial:      "financial",
	CategoryIdentity:       "identity",
	CategoryHealth:         "health",
	CategoryPersonal:       "personal",
	CategoryPatterns:       "patterns",
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = Category(c)
	}
	return m
}()

// AllCategories returns every category, in the fixed enumeration order
// used for vault creation and lazy category loading.
func AllCategories() []Category {
	all := make([]Category, len(categoryNames))
	for i := range categoryNames {
		all[i] = Category(i)
	}
	return all
}

// String returns the category's wire name (e.g. "authentication").
func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the closed set of known categories.
func (c Category) Valid() bool {
	return int(c) >= 0 && int(c) < len(categoryNames)
}

// abbrev returns the category's short form, used only for the on-disk
// filename and the HKDF context label (e.g. "auth" for authentication).
func (c Category) abbrev() string {
	if int(c) < 0 || int(c) >= len(categoryAbbrev) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryAbbrev[c]
}

// ContextString returns the HKDF context label this category's encryption
// key is derived with, e.g. "category-auth".
func (c Category) ContextString() string {
	return "category-" + c.abbrev()
}

// Filename returns the on-disk filename (relative to the vault's
// categories/ directory) this category's encrypted data is stored under,
// e.g. "auth.enc".
func (c Category) Filename() string {
	return c.abbrev() + ".enc"
}

// ParseCategory looks up a category by its wire name. Returns false if name
// is not a known category.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryByName[name]
	return c, ok
}

// MarshalJSON implements [json.Marshaler], encoding the category as its
// wire name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. It rejects any string that
// is not one of the known category names, so an unrecognized category in a
// wire request surfaces as a decode error rather than a silently-zero value.
func (c *Category) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}

	parsed, ok := ParseCategory(name)
	if !ok {
		return fmt.Errorf("models: unknown category %q", name)
	}

	*c = parsed
	return nil
}
