// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validate

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prosperity/vaultd/models"
)

const validUUID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

func TestRequest_UnknownCommand(t *testing.T) {
	err := Request(models.Request{Cmd: "not_a_command"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRequest_Unlock(t *testing.T) {
	t.Run("missing passphrase", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdUnlock})
		assert.ErrorIs(t, err, ErrMissingPassphrase)
	})

	t.Run("valid", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdUnlock, Passphrase: "x"})
		assert.NoError(t, err)
	})
}

func TestRequest_LockAndStatusNeverFail(t *testing.T) {
	assert.NoError(t, Request(models.Request{Cmd: models.CmdLock}))
	assert.NoError(t, Request(models.Request{Cmd: models.CmdStatus}))
}

func TestRequest_List(t *testing.T) {
	assert.NoError(t, Request(models.Request{Cmd: models.CmdList}))

	cat := models.CategoryFinancial
	assert.NoError(t, Request(models.Request{Cmd: models.CmdList, Category: &cat}))
}

func TestRequest_GetAndDelete(t *testing.T) {
	for _, cmd := range []string{models.CmdGet, models.CmdDelete} {
		t.Run(cmd, func(t *testing.T) {
			t.Run("missing id", func(t *testing.T) {
				err := Request(models.Request{Cmd: cmd})
				assert.ErrorIs(t, err, ErrMissingID)
			})

			t.Run("malformed uuid", func(t *testing.T) {
				err := Request(models.Request{Cmd: cmd, ID: "not-a-uuid"})
				assert.ErrorIs(t, err, ErrInvalidUUID)
			})

			t.Run("valid", func(t *testing.T) {
				err := Request(models.Request{Cmd: cmd, ID: validUUID})
				assert.NoError(t, err)
			})
		})
	}
}

func TestRequest_Create(t *testing.T) {
	validValue := base64.StdEncoding.EncodeToString([]byte("secret"))

	t.Run("missing entry", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdCreate})
		assert.ErrorIs(t, err, ErrMissingEntry)
	})

	t.Run("missing name", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdCreate, Entry: &models.NewEntryRequest{Value: validValue}})
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("invalid base64 value", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdCreate, Entry: &models.NewEntryRequest{Name: "x", Value: "not base64!!"}})
		assert.ErrorIs(t, err, ErrInvalidBase64Value)
	})

	t.Run("valid", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdCreate, Entry: &models.NewEntryRequest{Name: "x", Value: validValue}})
		assert.NoError(t, err)
	})
}

func TestRequest_UseForAuth(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdUseForAuth, TargetURL: "https://example.com"})
		assert.ErrorIs(t, err, ErrMissingID)
	})

	t.Run("missing target url", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdUseForAuth, ID: validUUID})
		assert.ErrorIs(t, err, ErrMissingTargetURL)
	})

	t.Run("valid", func(t *testing.T) {
		err := Request(models.Request{Cmd: models.CmdUseForAuth, ID: validUUID, TargetURL: "https://example.com"})
		assert.NoError(t, err)
	})
}
