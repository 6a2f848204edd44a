// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validate

import "errors"

var (
	// ErrUnknownCommand is returned when a request's cmd field does not
	// match any known command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingPassphrase is returned when an unlock request's
	// passphrase field is empty.
	ErrMissingPassphrase = errors.New("passphrase is required")

	// ErrMissingID is returned when a request that requires an entry ID
	// (get, delete, use_for_auth) has an empty id field.
	ErrMissingID = errors.New("id is required")

	// ErrInvalidUUID is returned when a request's id field is not a
	// well-formed UUID.
	ErrInvalidUUID = errors.New("id must be a valid UUID")

	// ErrMissingEntry is returned when a create request has no entry
	// payload.
	ErrMissingEntry = errors.New("entry is required")

	// ErrMissingName is returned when a create request's entry has an
	// empty name field.
	ErrMissingName = errors.New("entry name is required")

	// ErrInvalidBase64Value is returned when a create request's
	// entry.value field is not valid standard-alphabet base64.
	ErrInvalidBase64Value = errors.New("entry value must be valid base64")

	// ErrMissingTargetURL is returned when a use_for_auth request has an
	// empty target_url field.
	ErrMissingTargetURL = errors.New("target_url is required")
)
