// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package socket implements vaultd's transport: a Unix domain socket
// listener that frames the wire protocol as one JSON request and one JSON
// response per line, serialized through a [Dispatcher].
package socket

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prosperity/vaultd/internal/logger"
)

// socketPerm restricts the socket to owner read/write only, so no
// other local user can dial in and exercise the vault.
const socketPerm = 0o600

// socketDirPerm restricts a freshly created parent directory (e.g.
// /run/prosperity) to the owner as well.
const socketDirPerm = 0o700

type server struct {
	path       string
	listener   net.Listener
	dispatcher Dispatcher
	log        *logger.Logger
}

// NewServer binds a Unix domain socket at path, creating its parent
// directory if necessary and removing any stale socket file left behind by
// a previous, uncleanly-terminated run. The socket's permissions are
// restricted to the owner.
func NewServer(path string, dispatcher Dispatcher, log *logger.Logger) (Server, error) {
	if err := os.MkdirAll(filepath.Dir(path), socketDirPerm); err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	if err := os.Chmod(path, socketPerm); err != nil {
		ln.Close()
		return nil, err
	}

	return &server{path: path, listener: ln, dispatcher: dispatcher, log: log}, nil
}

// RunServer accepts connections until a termination signal arrives or
// Shutdown is called, spawning one goroutine per connection.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	s.log.Info().Str("socket", s.path).Msg("vaultd listening")

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}

		go handleConnection(conn, s.dispatcher, s.log)
	}
}

// Shutdown closes the listener and removes the socket file. It is safe to
// call more than once.
func (s *server) Shutdown() {
	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.path)
}
