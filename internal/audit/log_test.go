// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosperity/vaultd/internal/crypto"
	"github.com/prosperity/vaultd/models"
)

func newTestKey(t *testing.T) crypto.SecureKey {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key
}

func TestOpen_FreshLogStartsAtGenesisHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.enc")
	log, err := Open(path, newTestKey(t))
	require.NoError(t, err)
	assert.Equal(t, crypto.GenesisHash, log.lastHash)
}

// TestAppend_UnlockAccessLockChain mirrors the scenario of logging an
// unlock, a single access event, and a lock, and verifying the resulting
// chain.
func TestAppend_UnlockAccessLockChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.enc")
	log, err := Open(path, newTestKey(t))
	require.NoError(t, err)

	require.NoError(t, log.LogUnlock())
	require.NoError(t, log.LogAccess(models.AuditEventEntryAccess, "entry-id", "Gmail", models.CategoryAuthentication, "email-agent", "send email"))
	require.NoError(t, log.LogLock())

	entries, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, models.AuditEventVaultUnlock, entries[0].EventType)
	assert.Equal(t, models.AuditEventEntryAccess, entries[1].EventType)
	assert.Equal(t, models.AuditEventVaultLock, entries[2].EventType)

	assert.Equal(t, crypto.GenesisHash, entries[0].PreviousHash)
	assert.Equal(t, entries[0].EntryHash, entries[1].PreviousHash)
	assert.Equal(t, entries[1].EntryHash, entries[2].PreviousHash)

	assert.NoError(t, log.VerifyChain())
}

func TestLogDenial_RecordsReasonAndDeniedGrant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.enc")
	log, err := Open(path, newTestKey(t))
	require.NoError(t, err)

	require.NoError(t, log.LogDenial(models.AuditEventAccessDenied, "not unlocked"))

	entries, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Granted)
	require.NotNil(t, entries[0].DenialReason)
	assert.Equal(t, "not unlocked", *entries[0].DenialReason)
}

func TestVerifyChain_DetectsTamperedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.enc")
	key := newTestKey(t)
	log, err := Open(path, key)
	require.NoError(t, err)

	require.NoError(t, log.LogUnlock())
	require.NoError(t, log.LogLock())

	entries, err := log.ReadAll()
	require.NoError(t, err)
	entries[0].EventType = models.AuditEventAnomalyDetected
	require.NoError(t, log.writeAllToDisk(entries))

	reopened, err := Open(path, key)
	require.NoError(t, err)
	assert.ErrorIs(t, reopened.VerifyChain(), ErrChainBroken)
}

func TestOpen_WrongKeyFailsOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.enc")
	log, err := Open(path, newTestKey(t))
	require.NoError(t, err)
	require.NoError(t, log.LogUnlock())

	_, err = Open(path, newTestKey(t))
	assert.ErrorIs(t, err, ErrTamperedOrWrongKey)
}

func TestRecentEntries_FiltersByTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.enc")
	log, err := Open(path, newTestKey(t))
	require.NoError(t, err)

	require.NoError(t, log.LogUnlock())

	recent, err := log.RecentEntries(time.Hour)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	none, err := log.RecentEntries(-time.Hour)
	require.NoError(t, err)
	assert.Empty(t, none)
}
