// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package daemon implements vaultd's request dispatcher: the single
// coarse-grained state machine that serializes every decoded wire request
// into the vault and audit layers beneath it.
package daemon

import (
	"encoding/base64"
	"path/filepath"
	"sync"

	"github.com/prosperity/vaultd/internal/audit"
	"github.com/prosperity/vaultd/internal/logger"
	"github.com/prosperity/vaultd/internal/validate"
	"github.com/prosperity/vaultd/internal/vault"
	"github.com/prosperity/vaultd/models"
)

const auditFilename = "audit.enc"

// VaultDaemon holds the single in-process vault and audit log, guarded by
// mu so every request — regardless of which connection goroutine it
// arrived on — is handled one at a time.
type VaultDaemon struct {
	mu sync.Mutex

	vaultDir string
	v        *vault.Vault
	auditLog *audit.Log
	log      *logger.Logger
}

// New returns a daemon rooted at vaultDir. The vault itself is not opened
// until the first Unlock request arrives.
func New(vaultDir string, log *logger.Logger) *VaultDaemon {
	return &VaultDaemon{vaultDir: vaultDir, log: log}
}

// Handle validates and dispatches one decoded request, returning the wire
// response to write back. Handle never panics on well-formed input; the
// socket layer is responsible for recovering any panic that escapes it
// anyway and converting it to an error response.
func (d *VaultDaemon) Handle(req models.Request) models.Response {
	if err := validate.Request(req); err != nil {
		return responseFromError(err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch req.Cmd {
	case models.CmdUnlock:
		return d.handleUnlock(req)
	case models.CmdLock:
		return d.handleLock()
	case models.CmdStatus:
		return d.handleStatus()
	case models.CmdList:
		return d.handleList(req)
	case models.CmdGet:
		return d.handleGet(req)
	case models.CmdCreate:
		return d.handleCreate(req)
	case models.CmdDelete:
		return d.handleDelete(req)
	case models.CmdUseForAuth:
		return d.handleUseForAuth(req)
	default:
		return responseFromError(validate.ErrUnknownCommand)
	}
}

// handleUnlock opens the vault directory, creating a new vault there if
// none exists yet, then unlocks it (eagerly loading req.Categories, if
// any). Once unlocked, it opens or creates the audit log under the
// vault's real audit key and records a vault_unlock event. An audit-open
// or audit-append failure never fails the unlock itself; it is logged at
// warn level and otherwise ignored.
func (d *VaultDaemon) handleUnlock(req models.Request) models.Response {
	if d.v == nil {
		if vault.Exists(d.vaultDir) {
			v, err := vault.Open(d.vaultDir)
			if err != nil {
				return responseFromError(err)
			}
			d.v = v
		} else {
			v, err := vault.Create(d.vaultDir, req.Passphrase)
			if err != nil {
				return responseFromError(err)
			}
			d.v = v
		}
	}

	if !d.v.IsUnlocked() {
		var err error
		if len(req.Categories) > 0 {
			err = d.v.UnlockCategories(req.Passphrase, req.Categories)
		} else {
			err = d.v.Unlock(req.Passphrase)
		}
		if err != nil {
			return responseFromError(err)
		}
	}

	d.openAuditLog()
	if d.auditLog != nil {
		if err := d.auditLog.LogUnlock(); err != nil {
			d.log.Warn().Err(err).Msg("failed to record vault_unlock event")
		}
	}

	return models.OK()
}

// handleLock records a vault_lock event best-effort, drops the audit log
// handle, then tears down every derived key and cached category.
func (d *VaultDaemon) handleLock() models.Response {
	if d.auditLog != nil {
		if err := d.auditLog.LogLock(); err != nil {
			d.log.Warn().Err(err).Msg("failed to record vault_lock event")
		}
		d.auditLog = nil
	}

	if d.v != nil {
		d.v.Lock()
	}

	return models.OK()
}

// handleStatus never requires an unlocked vault.
func (d *VaultDaemon) handleStatus() models.Response {
	unlocked := d.v != nil && d.v.IsUnlocked()
	return models.OKWith(models.StatusData{
		Unlocked:    unlocked,
		VaultExists: vault.Exists(d.vaultDir),
	})
}

func (d *VaultDaemon) handleList(req models.Request) models.Response {
	if err := d.requireUnlocked(); err != nil {
		return responseFromError(err)
	}

	entries, err := d.v.ListEntries(req.Category)
	if err != nil {
		return responseFromError(err)
	}

	return models.OKWith(entries)
}

// handleGet records an entry_access event, carrying the caller-supplied
// agent_id and purpose, before returning the decrypted entry.
func (d *VaultDaemon) handleGet(req models.Request) models.Response {
	if err := d.requireUnlocked(); err != nil {
		return responseFromError(err)
	}

	entry, err := d.v.GetEntry(req.ID)
	if err != nil {
		return responseFromError(err)
	}

	d.logAccessBestEffort(models.AuditEventEntryAccess, entry, req.AgentID, req.Purpose)

	return models.OKWith(entry)
}

// handleCreate decodes the entry's base64 value (already validated), adds
// it to the vault, and records an entry_create event.
func (d *VaultDaemon) handleCreate(req models.Request) models.Response {
	if err := d.requireUnlocked(); err != nil {
		return responseFromError(err)
	}

	value, err := base64.StdEncoding.DecodeString(req.Entry.Value)
	if err != nil {
		return responseFromError(validate.ErrInvalidBase64Value)
	}

	entry := models.NewVaultEntry(d.v.NewEntryID(), req.Entry.Category, req.Entry.Type, req.Entry.Name, value)
	entry.Username = req.Entry.Username
	entry.URL = req.Entry.URL

	if err := d.v.AddEntry(entry); err != nil {
		return responseFromError(err)
	}

	d.logAccessBestEffort(models.AuditEventEntryCreate, entry, req.AgentID, req.Purpose)

	return models.OKWith(entry.Metadata())
}

func (d *VaultDaemon) handleDelete(req models.Request) models.Response {
	if err := d.requireUnlocked(); err != nil {
		return responseFromError(err)
	}

	entry, err := d.v.GetEntry(req.ID)
	if err != nil {
		return responseFromError(err)
	}

	if err := d.v.DeleteEntry(req.ID); err != nil {
		return responseFromError(err)
	}

	d.logAccessBestEffort(models.AuditEventEntryDelete, entry, req.AgentID, req.Purpose)

	return models.OK()
}

// handleUseForAuth validates the vault is unlocked and the entry exists,
// records an auth_use event, and responds that the authenticated-request
// flow itself was not performed. Executing the flow against TargetURL is
// out of scope.
func (d *VaultDaemon) handleUseForAuth(req models.Request) models.Response {
	if err := d.requireUnlocked(); err != nil {
		return responseFromError(err)
	}

	entry, err := d.v.GetEntry(req.ID)
	if err != nil {
		return responseFromError(err)
	}

	d.logAccessBestEffort(models.AuditEventAuthUse, entry, req.AgentID, req.Purpose)

	return models.OKWith(models.UseForAuthData{
		AuthPerformed: false,
		Message:       "authenticated-request execution is not implemented",
		Target:        req.TargetURL,
	})
}

func (d *VaultDaemon) requireUnlocked() error {
	if d.v == nil || !d.v.IsUnlocked() {
		return vault.ErrNotUnlocked
	}
	return nil
}

func (d *VaultDaemon) logAccessBestEffort(eventType models.AuditEventType, entry models.VaultEntry, agentID, purpose string) {
	if d.auditLog == nil {
		return
	}
	if err := d.auditLog.LogAccess(eventType, entry.ID, entry.Name, entry.Category, agentID, purpose); err != nil {
		d.log.Warn().Err(err).Str("event_type", eventType.String()).Msg("failed to record audit event")
	}
}

// openAuditLog opens (or lazily creates) the audit log under the vault's
// real audit key. Any failure is logged at warn level; the daemon
// continues to operate without an audit log rather than failing the
// unlock that triggered this call.
func (d *VaultDaemon) openAuditLog() {
	if d.auditLog != nil {
		return
	}

	key, err := d.v.AuditKey()
	if err != nil {
		d.log.Warn().Err(err).Msg("failed to derive audit key")
		return
	}

	l, err := audit.Open(filepath.Join(d.vaultDir, auditFilename), key)
	if err != nil {
		d.log.Warn().Err(err).Msg("failed to open audit log")
		return
	}

	d.auditLog = l
}
