// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the encrypted on-disk credential store: the
// key hierarchy derived from a passphrase, the lock/unlock state machine,
// and CRUD over category-partitioned entries.
package vault

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/prosperity/vaultd/internal/crypto"
	"github.com/prosperity/vaultd/internal/utils"
	"github.com/prosperity/vaultd/models"
)

const (
	metaFilename = "vault.meta"
	dekFilename  = "dek.enc"
	categoryDir  = "categories"

	kekContext   = "kek"
	auditContext = "audit"

	metaFilePerm = 0o600
	dataFilePerm = 0o600
)

// State is the vault's lifecycle state.
type State int

const (
	StateClosed State = iota
	StateLocked
	StateUnlocked
)

// Vault is an open handle to one on-disk vault. A Vault is not safe for
// concurrent use; callers (the daemon) are expected to serialize access.
type Vault struct {
	dir   string
	meta  models.VaultMeta
	state State

	masterKey *crypto.SecureKey
	kek       *crypto.SecureKey
	dek       *crypto.SecureKey

	categoryKeys       map[models.Category]crypto.SecureKey
	unlockedCategories map[models.Category]models.CategoryData

	uuids *utils.UUIDGenerator
}

// Exists reports whether a vault.meta file is present at dir, i.e. whether
// Create or Open is the right next call.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, metaFilename))
	return err == nil
}

// Create initializes a brand-new vault at dir: derives the key hierarchy
// from passphrase, generates and wraps a fresh DEK, writes an empty
// CategoryData file per category, and writes vault.meta. The returned
// Vault is left Unlocked, mirroring the freshly-derived keys already in
// memory.
func Create(dir, passphrase string) (*Vault, error) {
	if Exists(dir) {
		return nil, ErrVaultAlreadyExists
	}

	if err := os.MkdirAll(filepath.Join(dir, categoryDir), 0o700); err != nil {
		return nil, err
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	params := crypto.DefaultKDFParams()
	meta := models.NewVaultMeta(salt, params.MemoryKiB, params.Iterations, params.Parallelism)

	v := &Vault{
		dir:                dir,
		meta:               meta,
		uuids:              utils.NewUUIDGenerator(),
		categoryKeys:       make(map[models.Category]crypto.SecureKey),
		unlockedCategories: make(map[models.Category]models.CategoryData),
	}

	if err := v.deriveKeysFromPassphrase(passphrase); err != nil {
		return nil, err
	}

	dek, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	v.dek = &dek

	if err := v.saveDEK(); err != nil {
		return nil, err
	}

	for _, cat := range models.AllCategories() {
		key, err := crypto.DeriveSubkey(v.masterKey, cat.ContextString())
		if err != nil {
			return nil, err
		}
		v.categoryKeys[cat] = key

		if err := v.saveCategory(cat, models.CategoryData{Entries: []models.VaultEntry{}}); err != nil {
			return nil, err
		}
	}

	if err := v.saveMeta(); err != nil {
		return nil, err
	}

	v.state = StateUnlocked
	return v, nil
}

// Open loads an existing vault's metadata only, leaving it Locked. Call
// Unlock or UnlockCategories to derive keys and decrypt data.
func Open(dir string) (*Vault, error) {
	if !Exists(dir) {
		return nil, ErrVaultNotFound
	}

	meta, err := loadMeta(dir)
	if err != nil {
		return nil, err
	}

	return &Vault{
		dir:                dir,
		meta:               meta,
		state:              StateLocked,
		uuids:              utils.NewUUIDGenerator(),
		categoryKeys:       make(map[models.Category]crypto.SecureKey),
		unlockedCategories: make(map[models.Category]models.CategoryData),
	}, nil
}

// Unlock re-derives the master key and KEK from passphrase, decrypts the
// DEK, and derives every category key. It does not load any category's
// entries; call UnlockCategories or rely on the lazy loads inside
// GetEntry/DeleteEntry for that. Returns ErrWrongPassphrase if the
// derived KEK cannot open the stored DEK blob.
func (v *Vault) Unlock(passphrase string) error {
	if err := v.deriveKeysFromPassphrase(passphrase); err != nil {
		return err
	}

	dek, err := v.loadDEK()
	if err != nil {
		v.clearKeys()
		return err
	}
	v.dek = &dek

	for _, cat := range models.AllCategories() {
		key, err := crypto.DeriveSubkey(v.masterKey, cat.ContextString())
		if err != nil {
			v.clearKeys()
			return err
		}
		v.categoryKeys[cat] = key
	}

	v.state = StateUnlocked
	return nil
}

// UnlockCategories unlocks the vault and eagerly loads the given
// categories' entries into memory.
func (v *Vault) UnlockCategories(passphrase string, categories []models.Category) error {
	if err := v.Unlock(passphrase); err != nil {
		return err
	}

	for _, cat := range categories {
		if _, err := v.ensureCategoryLoaded(cat); err != nil {
			return err
		}
	}

	return nil
}

// IsUnlocked reports whether the vault is currently in the Unlocked state.
func (v *Vault) IsUnlocked() bool {
	return v.state == StateUnlocked
}

// Lock discards every derived key and every loaded category's in-memory
// entries, returning the vault to the Locked state. It is always safe to
// call, even on an already-Locked vault.
func (v *Vault) Lock() {
	v.clearKeys()
	v.unlockedCategories = make(map[models.Category]models.CategoryData)
	if v.state == StateUnlocked {
		v.state = StateLocked
	}
}

// AuditKey derives the audit log's encryption key from the vault's real
// master key. The vault must be Unlocked.
func (v *Vault) AuditKey() (crypto.SecureKey, error) {
	if !v.IsUnlocked() {
		return crypto.SecureKey{}, ErrNotUnlocked
	}
	return crypto.DeriveSubkey(v.masterKey, auditContext)
}

// NewEntryID returns a fresh entry identifier.
func (v *Vault) NewEntryID() string {
	return v.uuids.Generate()
}

// AddEntry persists entry into its category's file. The vault must be
// Unlocked.
func (v *Vault) AddEntry(entry models.VaultEntry) error {
	if !v.IsUnlocked() {
		return ErrNotUnlocked
	}

	data, err := v.ensureCategoryLoaded(entry.Category)
	if err != nil {
		return err
	}

	data.Entries = append(data.Entries, entry)
	return v.saveCategory(entry.Category, data)
}

// GetEntry returns the full entry with the given ID. It first loads every
// not-yet-loaded category, then searches them in [models.AllCategories]
// order; the first match wins. Returns ErrNotFound if no category contains
// it.
func (v *Vault) GetEntry(id string) (models.VaultEntry, error) {
	if !v.IsUnlocked() {
		return models.VaultEntry{}, ErrNotUnlocked
	}

	for _, cat := range models.AllCategories() {
		if _, err := v.ensureCategoryLoaded(cat); err != nil {
			return models.VaultEntry{}, err
		}
	}

	for _, cat := range models.AllCategories() {
		for _, e := range v.unlockedCategories[cat].Entries {
			if e.ID == id {
				return e, nil
			}
		}
	}

	return models.VaultEntry{}, ErrNotFound
}

// ListEntries returns metadata for every entry, optionally restricted to
// one category. When category is nil, every category is loaded (in
// [models.AllCategories] order) and all entries are listed.
func (v *Vault) ListEntries(category *models.Category) ([]models.EntryMetadata, error) {
	if !v.IsUnlocked() {
		return nil, ErrNotUnlocked
	}

	cats := models.AllCategories()
	if category != nil {
		cats = []models.Category{*category}
	}

	var out []models.EntryMetadata
	for _, cat := range cats {
		data, err := v.ensureCategoryLoaded(cat)
		if err != nil {
			return nil, err
		}
		for _, e := range data.Entries {
			out = append(out, e.Metadata())
		}
	}

	return out, nil
}

// DeleteEntry removes the entry with the given ID. It first loads every
// not-yet-loaded category, then removes the first match in
// [models.AllCategories] order and persists that category. Returns
// ErrNotFound if no category contains it.
func (v *Vault) DeleteEntry(id string) error {
	if !v.IsUnlocked() {
		return ErrNotUnlocked
	}

	for _, cat := range models.AllCategories() {
		if _, err := v.ensureCategoryLoaded(cat); err != nil {
			return err
		}
	}

	for _, cat := range models.AllCategories() {
		data := v.unlockedCategories[cat]
		for i, e := range data.Entries {
			if e.ID == id {
				data.Entries = append(data.Entries[:i], data.Entries[i+1:]...)
				return v.saveCategory(cat, data)
			}
		}
	}

	return ErrNotFound
}

func (v *Vault) clearKeys() {
	if v.masterKey != nil {
		v.masterKey.Zero()
		v.masterKey = nil
	}
	if v.kek != nil {
		v.kek.Zero()
		v.kek = nil
	}
	if v.dek != nil {
		v.dek.Zero()
		v.dek = nil
	}
	for cat, key := range v.categoryKeys {
		key.Zero()
		delete(v.categoryKeys, cat)
	}
}

func (v *Vault) deriveKeysFromPassphrase(passphrase string) error {
	params := crypto.KDFParams{
		MemoryKiB:   v.meta.ArgonMemoryKiB,
		Iterations:  v.meta.ArgonIterations,
		Parallelism: v.meta.ArgonParallelism,
	}
	master := crypto.DeriveMasterKey(passphrase, v.meta.Salt, params)
	v.masterKey = &master

	kek, err := crypto.DeriveSubkey(v.masterKey, kekContext)
	if err != nil {
		return err
	}
	v.kek = &kek

	return nil
}

func (v *Vault) ensureCategoryLoaded(cat models.Category) (models.CategoryData, error) {
	if data, ok := v.unlockedCategories[cat]; ok {
		return data, nil
	}

	data, err := v.loadCategory(cat)
	if err != nil {
		return models.CategoryData{}, err
	}

	v.unlockedCategories[cat] = data
	return data, nil
}

func (v *Vault) categoryPath(cat models.Category) string {
	return filepath.Join(v.dir, categoryDir, cat.Filename())
}

func (v *Vault) loadCategory(cat models.Category) (models.CategoryData, error) {
	key, ok := v.categoryKeys[cat]
	if !ok {
		return models.CategoryData{}, ErrNotUnlocked
	}

	blob, err := os.ReadFile(v.categoryPath(cat))
	if err != nil {
		return models.CategoryData{}, err
	}

	plaintext, err := crypto.Decrypt(&key, blob)
	if err != nil {
		if errors.Is(err, crypto.ErrCiphertextTooShort) {
			return models.CategoryData{}, ErrCorruptFormat
		}
		return models.CategoryData{}, ErrTamperedOrWrongKey
	}

	var data models.CategoryData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return models.CategoryData{}, ErrCorruptFormat
	}

	return data, nil
}

func (v *Vault) saveCategory(cat models.Category, data models.CategoryData) error {
	key, ok := v.categoryKeys[cat]
	if !ok {
		return ErrNotUnlocked
	}

	plaintext, err := json.Marshal(data)
	if err != nil {
		return err
	}

	blob, err := crypto.Encrypt(&key, plaintext)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(v.categoryPath(cat), blob, dataFilePerm); err != nil {
		return err
	}

	v.unlockedCategories[cat] = data
	return nil
}

func (v *Vault) loadDEK() (crypto.SecureKey, error) {
	blob, err := os.ReadFile(filepath.Join(v.dir, dekFilename))
	if err != nil {
		return crypto.SecureKey{}, err
	}

	plaintext, err := crypto.Decrypt(v.kek, blob)
	if err != nil {
		return crypto.SecureKey{}, ErrWrongPassphrase
	}

	key, err := crypto.NewSecureKey(plaintext)
	for i := range plaintext {
		plaintext[i] = 0
	}
	if err != nil {
		return crypto.SecureKey{}, ErrCorruptFormat
	}

	return key, nil
}

func (v *Vault) saveDEK() error {
	blob, err := crypto.Encrypt(v.kek, v.dek.Bytes())
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(v.dir, dekFilename), blob, dataFilePerm)
}

func (v *Vault) saveMeta() error {
	v.meta.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(v.meta, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(v.dir, metaFilename), data, metaFilePerm)
}

func loadMeta(dir string) (models.VaultMeta, error) {
	data, err := os.ReadFile(filepath.Join(dir, metaFilename))
	if err != nil {
		return models.VaultMeta{}, err
	}

	var meta models.VaultMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return models.VaultMeta{}, ErrCorruptFormat
	}

	return meta, nil
}
