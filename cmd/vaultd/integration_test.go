// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosperity/vaultd/internal/daemon"
	"github.com/prosperity/vaultd/internal/logger"
	"github.com/prosperity/vaultd/internal/socket"
)

// dialTestDaemon wires a real VaultDaemon to a real socket.Server rooted at
// a t.TempDir() vault, dials it, and returns the connection. This exercises
// the actual wire path (models.DecodeRequest on a literal JSON line) rather
// than constructing requests as Go struct literals, so a wire field-name
// mismatch between the protocol and spec.md is caught here even when every
// other package's tests miss it entirely.
func dialTestDaemon(t *testing.T) net.Conn {
	t.Helper()

	vaultDir := filepath.Join(t.TempDir(), "vault")
	sockPath := filepath.Join(t.TempDir(), "vault.sock")

	d := daemon.New(vaultDir, logger.Nop())
	srv, err := socket.NewServer(sockPath, d, logger.Nop())
	require.NoError(t, err)
	go srv.RunServer()
	t.Cleanup(srv.Shutdown)

	conn, err := net.Dial("unix", sockPath)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// sendLine writes line (a literal, hand-written JSON request) followed by a
// newline, reads back one newline-terminated response, and decodes it into
// a generic map so the test can assert on the exact wire field names
// instead of whatever Go field names the client-side struct happens to use.
func sendLine(t *testing.T, conn net.Conn, reader *bufio.Reader, line string) map[string]any {
	t.Helper()

	_, err := conn.Write([]byte(line + "\n"))
	require.NoError(t, err)

	raw, err := reader.ReadBytes('\n')
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

// TestSocket_EndToEndWireProtocol mirrors spec.md §8 scenario 6: connect to
// the daemon's Unix socket and drive it with the literal snake_case JSON
// text a real client sends, not Go struct literals.
func TestSocket_EndToEndWireProtocol(t *testing.T) {
	conn := dialTestDaemon(t)
	reader := bufio.NewReader(conn)

	resp := sendLine(t, conn, reader, `{"cmd":"status"}`)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["data"].(map[string]any)["unlocked"])

	resp = sendLine(t, conn, reader, `{"cmd":"unlock","passphrase":"correct horse battery staple"}`)
	require.Equal(t, "ok", resp["status"])

	resp = sendLine(t, conn, reader, `{"cmd":"list","category":"authentication"}`)
	require.Equal(t, "ok", resp["status"], "the spec-compliant category name must be accepted, not just its filename abbreviation")

	resp = sendLine(t, conn, reader,
		`{"cmd":"create","entry":{"category":"authentication","entry_type":"card","name":"GitHub","value":"Z2hwX3h4eHh4eHh4eHh4eA=="}}`)
	require.Equal(t, "ok", resp["status"])
	created := resp["data"].(map[string]any)
	assert.Equal(t, "card", created["type"], "entry_type must decode from the wire, not silently default to password")
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	resp = sendLine(t, conn, reader, `{"cmd":"get","id":"`+id+`","agent_id":"tester"}`)
	require.Equal(t, "ok", resp["status"])
	got := resp["data"].(map[string]any)
	assert.Equal(t, "GitHub", got["name"])
	assert.Equal(t, "authentication", got["category"])

	resp = sendLine(t, conn, reader, `{"cmd":"lock"}`)
	assert.Equal(t, "ok", resp["status"])
}

// TestSocket_UnknownCategoryNameIsRejected confirms that a category's
// filename abbreviation is not also accepted as its wire name.
func TestSocket_UnknownCategoryNameIsRejected(t *testing.T) {
	conn := dialTestDaemon(t)
	reader := bufio.NewReader(conn)

	resp := sendLine(t, conn, reader, `{"cmd":"unlock","passphrase":"x"}`)
	require.Equal(t, "ok", resp["status"])

	resp = sendLine(t, conn, reader, `{"cmd":"list","category":"auth"}`)
	assert.Equal(t, "error", resp["status"])
}
