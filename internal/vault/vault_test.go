// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosperity/vaultd/models"
)

func TestCreate_LeavesVaultUnlocked(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")

	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)
	assert.True(t, v.IsUnlocked())
	assert.True(t, Exists(dir))
}

func TestCreate_RejectsExistingVault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	_, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	_, err = Create(dir, "anything")
	assert.ErrorIs(t, err, ErrVaultAlreadyExists)
}

// TestRoundTrip_CreateLockReopenUnlockGet mirrors the scenario of creating a
// vault, adding a password entry, locking, reopening, unlocking with the
// correct passphrase, and reading the entry back unchanged.
func TestRoundTrip_CreateLockReopenUnlockGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")

	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	entry := models.NewVaultEntry(v.NewEntryID(), models.CategoryAuthentication, models.EntryTypePassword, "GitHub", []byte("ghp_xxxxxxxxxxxx"))
	entry.Username = "adam"
	require.NoError(t, v.AddEntry(entry))

	v.Lock()
	assert.False(t, v.IsUnlocked())

	reopened, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, reopened.Unlock("test passphrase"))

	got, err := reopened.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Name)
	assert.Equal(t, []byte("ghp_xxxxxxxxxxxx"), got.Value)
	assert.Equal(t, "adam", got.Username)
}

func TestUnlock_WrongPassphraseFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")

	v, err := Create(dir, "correct")
	require.NoError(t, err)
	v.Lock()

	reopened, err := Open(dir)
	require.NoError(t, err)

	err = reopened.Unlock("wrong")
	assert.ErrorIs(t, err, ErrWrongPassphrase)
	assert.False(t, reopened.IsUnlocked())
}

func TestOpen_MissingVaultFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")

	_, err := Open(dir)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestEntryOperations_RequireUnlocked(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)
	v.Lock()

	_, err = v.GetEntry("anything")
	assert.ErrorIs(t, err, ErrNotUnlocked)

	err = v.DeleteEntry("anything")
	assert.ErrorIs(t, err, ErrNotUnlocked)

	_, err = v.ListEntries(nil)
	assert.ErrorIs(t, err, ErrNotUnlocked)

	entry := models.NewVaultEntry(v.NewEntryID(), models.CategoryAuthentication, models.EntryTypePassword, "x", []byte("y"))
	assert.ErrorIs(t, v.AddEntry(entry), ErrNotUnlocked)
}

func TestGetEntry_NotFoundAcrossAllCategories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	_, err = v.GetEntry("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEntries_ScopedToCategoryAndOmitsSecrets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	entry := models.NewVaultEntry(v.NewEntryID(), models.CategoryFinancial, models.EntryTypeCard, "Visa", []byte("4111111111111111"))
	entry.Notes = "expires soon"
	require.NoError(t, v.AddEntry(entry))

	financial := models.CategoryFinancial
	list, err := v.ListEntries(&financial)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Visa", list[0].Name)

	auth := models.CategoryAuthentication
	empty, err := v.ListEntries(&auth)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteEntry_RemovesFromCategoryFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	entry := models.NewVaultEntry(v.NewEntryID(), models.CategoryPersonal, models.EntryTypeSecureNote, "note", []byte("text"))
	require.NoError(t, v.AddEntry(entry))

	require.NoError(t, v.DeleteEntry(entry.ID))

	_, err = v.GetEntry(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	onDisk, err := v.loadCategory(models.CategoryPersonal)
	require.NoError(t, err)
	assert.Empty(t, onDisk.Entries)
}

func TestAuditKey_RequiresUnlocked(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)
	v.Lock()

	_, err = v.AuditKey()
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestAuditKey_DeterministicPerVault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	k1, err := v.AuditKey()
	require.NoError(t, err)
	k2, err := v.AuditKey()
	require.NoError(t, err)
	assert.Equal(t, k1.Bytes(), k2.Bytes())
}

func TestUnlockCategories_EagerlyLoadsListedCategories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	v, err := Create(dir, "test passphrase")
	require.NoError(t, err)

	entry := models.NewVaultEntry(v.NewEntryID(), models.CategoryHealth, models.EntryTypeSecureNote, "health note", []byte("ok"))
	require.NoError(t, v.AddEntry(entry))
	v.Lock()

	reopened, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, reopened.UnlockCategories("test passphrase", []models.Category{models.CategoryHealth}))
	assert.Contains(t, reopened.unlockedCategories, models.CategoryHealth)
	assert.Len(t, reopened.unlockedCategories, 1)

	got, err := reopened.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "health note", got.Name)
}
