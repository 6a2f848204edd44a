// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package socket

import (
	"bufio"
	"encoding/json"
	"net"

	"github.com/prosperity/vaultd/internal/app"
	"github.com/prosperity/vaultd/internal/logger"
	"github.com/prosperity/vaultd/models"
)

// maxLineSize bounds one framed request/response line. Entry values travel
// as base64 inside a request, so this is sized generously above the
// largest secret a vault entry is expected to hold.
const maxLineSize = 4 * 1024 * 1024

// handleConnection serves one accepted connection until the client closes
// it or a framing error occurs. Each line is decoded, dispatched, and
// answered independently; the daemon's own mutex is what actually
// serializes requests across connections, so no locking happens here.
func handleConnection(conn net.Conn, dispatcher Dispatcher, log *logger.Logger) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	enc := json.NewEncoder(conn)

	for scanner.Scan() {
		resp := dispatchLine(scanner.Bytes(), dispatcher, log)
		if err := enc.Encode(resp); err != nil {
			log.Warn().Err(err).Msg("failed to write response")
			return
		}
	}

	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Msg("connection read error")
	}
}

// dispatchLine decodes and dispatches one request line, recovering any
// panic escaping the dispatcher and converting it to an error response so
// a single malformed or unexpected request never takes the whole daemon
// process down.
func dispatchLine(line []byte, dispatcher Dispatcher, log *logger.Logger) (resp models.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered panic handling request")
			resp = models.ErrorResponse(app.MsgInternalError)
		}
	}()

	req, err := models.DecodeRequest(line)
	if err != nil {
		return models.ErrorResponse(app.MsgInvalidInput)
	}

	return dispatcher.Handle(req)
}
