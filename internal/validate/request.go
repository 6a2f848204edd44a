// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validate checks decoded wire requests before they reach the
// daemon core, so malformed input (an unknown cmd, a non-UUID id, a
// create.entry.value that isn't valid base64) is rejected uniformly as
// InvalidInput without the vault or audit layers ever seeing it.
//
// Category and EntryType enum membership is already enforced at JSON
// decode time by their UnmarshalJSON methods; this package only checks
// what decoding alone cannot.
package validate

import (
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/prosperity/vaultd/models"
)

// Request validates req according to its Cmd. Returns ErrUnknownCommand
// if Cmd does not match a known command.
func Request(req models.Request) error {
	switch req.Cmd {
	case models.CmdUnlock:
		return validateUnlock(req)
	case models.CmdLock, models.CmdStatus:
		return nil
	case models.CmdList:
		return nil
	case models.CmdGet:
		return validateID(req.ID)
	case models.CmdCreate:
		return validateCreate(req)
	case models.CmdDelete:
		return validateID(req.ID)
	case models.CmdUseForAuth:
		return validateUseForAuth(req)
	default:
		return ErrUnknownCommand
	}
}

func validateUnlock(req models.Request) error {
	if req.Passphrase == "" {
		return ErrMissingPassphrase
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return ErrMissingID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidUUID
	}
	return nil
}

func validateCreate(req models.Request) error {
	if req.Entry == nil {
		return ErrMissingEntry
	}
	if req.Entry.Name == "" {
		return ErrMissingName
	}
	if _, err := base64.StdEncoding.DecodeString(req.Entry.Value); err != nil {
		return ErrInvalidBase64Value
	}
	return nil
}

func validateUseForAuth(req models.Request) error {
	if err := validateID(req.ID); err != nil {
		return err
	}
	if req.TargetURL == "" {
		return ErrMissingTargetURL
	}
	return nil
}
