// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tuiclient implements vaultctl's interactive terminal client
// runtime: a Bubble Tea application that dials a running vaultd's Unix
// socket and drives its human-facing commands (unlock, lock, list, get,
// create, delete). status and use_for_auth are not sent by this client. Retrieved secret values are copied to the system
// clipboard rather than rendered on screen.
package tuiclient
