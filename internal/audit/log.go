// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit implements the vault's hash-chained, whole-file-encrypted
// audit log: one newline-delimited JSON record per event, each chained to
// the previous record's hash so the log's history cannot be silently
// edited without breaking the chain.
package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/prosperity/vaultd/internal/crypto"
	"github.com/prosperity/vaultd/internal/utils"
	"github.com/prosperity/vaultd/models"
)

const filePerm = 0o600

// Log is an open handle to one vault's audit.enc file. A Log is not safe
// for concurrent use; callers (the daemon) are expected to serialize
// access.
type Log struct {
	path     string
	key      crypto.SecureKey
	lastHash string
	uuids    *utils.UUIDGenerator
}

// Open opens the audit log at path, encrypted under key. If path does not
// exist yet, it is treated as a fresh log whose chain starts at
// [crypto.GenesisHash]; the file itself is created lazily on the first
// [Log.Append].
func Open(path string, key crypto.SecureKey) (*Log, error) {
	l := &Log{
		path:     path,
		key:      key,
		lastHash: crypto.GenesisHash,
		uuids:    utils.NewUUIDGenerator(),
	}

	entries, err := l.readAllFromDisk()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, err
	}

	if len(entries) > 0 {
		l.lastHash = entries[len(entries)-1].EntryHash
	}

	return l, nil
}

// Append assigns entry a fresh ID, timestamp, previous_hash (the current
// chain tip), and hash, then re-encrypts the whole log with entry added as
// its new last line. This is O(n) in the number of existing entries, an
// accepted trade-off for keeping the log a single AEAD-protected file.
func (l *Log) Append(entry models.AuditEntry) error {
	entry.ID = l.uuids.Generate()
	entry.Timestamp = time.Now().UTC()
	entry.PreviousHash = l.lastHash
	entry.EntryHash = crypto.HashChainLink(entry.CanonicalHashInput())

	existing, err := l.readAllFromDisk()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	existing = append(existing, entry)
	if err := l.writeAllToDisk(existing); err != nil {
		return err
	}

	l.lastHash = entry.EntryHash
	return nil
}

// LogUnlock records a vault_unlock event.
func (l *Log) LogUnlock() error {
	return l.Append(models.AuditEntry{EventType: models.AuditEventVaultUnlock, Granted: true})
}

// LogLock records a vault_lock event.
func (l *Log) LogLock() error {
	return l.Append(models.AuditEntry{EventType: models.AuditEventVaultLock, Granted: true})
}

// LogCategoryUnlock records a category_unlock event for cat.
func (l *Log) LogCategoryUnlock(cat models.Category) error {
	return l.Append(models.AuditEntry{
		EventType: models.AuditEventCategoryUnlock,
		Category:  &cat,
		Granted:   true,
	})
}

// LogAccess records a granted event against one entry — entry_access,
// entry_create, entry_update, entry_delete, or auth_use — identifying the
// entry, its category, the requesting agent, and the stated purpose.
func (l *Log) LogAccess(eventType models.AuditEventType, entryID, entryName string, category models.Category, agentID, purpose string) error {
	entry := models.AuditEntry{
		EventType: eventType,
		EntryID:   &entryID,
		EntryName: &entryName,
		Category:  &category,
		Granted:   true,
	}
	if agentID != "" {
		entry.AgentID = &agentID
	}
	if purpose != "" {
		entry.Purpose = &purpose
	}
	return l.Append(entry)
}

// LogDenial records a denied event — access_denied or anomaly_detected —
// with a human-readable reason.
func (l *Log) LogDenial(eventType models.AuditEventType, reason string) error {
	return l.Append(models.AuditEntry{
		EventType:    eventType,
		Granted:      false,
		DenialReason: &reason,
	})
}

// ReadAll decrypts the audit file and returns every entry, in chain order.
func (l *Log) ReadAll() ([]models.AuditEntry, error) {
	return l.readAllFromDisk()
}

// VerifyChain re-derives and re-checks every entry's hash and previous_hash
// link. Returns [ErrChainBroken] on the first mismatch.
func (l *Log) VerifyChain() error {
	entries, err := l.readAllFromDisk()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	prev := crypto.GenesisHash
	for _, e := range entries {
		if e.PreviousHash != prev {
			return ErrChainBroken
		}

		want := e.EntryHash
		e.EntryHash = ""
		got := crypto.HashChainLink(e.CanonicalHashInput())
		if got != want {
			return ErrChainBroken
		}

		prev = want
	}

	return nil
}

// RecentEntries returns every entry whose timestamp falls within the last
// since duration.
func (l *Log) RecentEntries(since time.Duration) ([]models.AuditEntry, error) {
	entries, err := l.readAllFromDisk()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-since)
	var recent []models.AuditEntry
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			recent = append(recent, e)
		}
	}

	return recent, nil
}

func (l *Log) readAllFromDisk() ([]models.AuditEntry, error) {
	blob, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Decrypt(&l.key, blob)
	if err != nil {
		if errors.Is(err, crypto.ErrCiphertextTooShort) {
			return nil, ErrCorruptFormat
		}
		return nil, ErrTamperedOrWrongKey
	}

	var entries []models.AuditEntry
	scanner := bufio.NewScanner(bytes.NewReader(plaintext))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var entry models.AuditEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, ErrCorruptFormat
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrCorruptFormat
	}

	return entries, nil
}

func (l *Log) writeAllToDisk(entries []models.AuditEntry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	blob, err := crypto.Encrypt(&l.key, buf.Bytes())
	if err != nil {
		return err
	}

	return writeFileAtomic(l.path, blob, filePerm)
}
