// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package daemon

import (
	"errors"

	"github.com/prosperity/vaultd/internal/app"
	"github.com/prosperity/vaultd/internal/audit"
	"github.com/prosperity/vaultd/internal/validate"
	"github.com/prosperity/vaultd/internal/vault"
	"github.com/prosperity/vaultd/models"
)

type errorResponse struct {
	message string
}

var errorStatusMap = map[error]errorResponse{
	vault.ErrNotUnlocked:        {message: app.MsgNotUnlocked},
	vault.ErrWrongPassphrase:    {message: app.MsgWrongPassphrase},
	vault.ErrNotFound:           {message: app.MsgNotFound},
	vault.ErrInvalidInput:       {message: app.MsgInvalidInput},
	vault.ErrCorruptFormat:      {message: app.MsgCorruptFormat},
	vault.ErrTamperedOrWrongKey: {message: app.MsgTamperedOrWrongKey},
	vault.ErrVaultNotFound:      {message: app.MsgVaultNotFound},
	vault.ErrVaultAlreadyExists: {message: app.MsgVaultAlreadyExists},

	audit.ErrCorruptFormat:      {message: app.MsgCorruptFormat},
	audit.ErrTamperedOrWrongKey: {message: app.MsgTamperedOrWrongKey},

	validate.ErrUnknownCommand:     {message: app.MsgInvalidInput},
	validate.ErrMissingPassphrase:  {message: app.MsgInvalidInput},
	validate.ErrMissingID:          {message: app.MsgInvalidInput},
	validate.ErrInvalidUUID:        {message: app.MsgInvalidInput},
	validate.ErrMissingEntry:       {message: app.MsgInvalidInput},
	validate.ErrMissingName:        {message: app.MsgInvalidInput},
	validate.ErrInvalidBase64Value: {message: app.MsgInvalidInput},
	validate.ErrMissingTargetURL:   {message: app.MsgInvalidInput},
}

// responseFromError maps err to a wire error response. Sentinel errors from
// internal/vault, internal/audit, and internal/validate produce a stable,
// client-facing message; anything else (an I/O error, a cryptographic
// primitive failure) falls back to a generic internal-error message so raw
// filesystem paths or implementation details never reach the wire.
func responseFromError(err error) models.Response {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return models.ErrorResponse(resp.message)
		}
	}
	return models.ErrorResponse(app.MsgInternalError)
}
