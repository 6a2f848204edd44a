// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package socket

import "github.com/prosperity/vaultd/models"

// Server defines the common lifecycle contract for the socket transport.
//
// Implementations are expected to block in [Server.RunServer] until
// shutdown is requested and to release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts accepting connections and blocks until the server
	// stops.
	RunServer()

	// Shutdown gracefully stops the server and removes the socket file.
	Shutdown()
}

// Dispatcher handles one decoded wire request and returns the response to
// write back. [*github.com/prosperity/vaultd/internal/daemon.VaultDaemon]
// satisfies this interface; the socket package depends only on this
// narrow contract so it never needs to know about vaults or audit logs.
type Dispatcher interface {
	Handle(req models.Request) models.Response
}
