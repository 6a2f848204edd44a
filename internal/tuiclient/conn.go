// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tuiclient

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"

	"github.com/prosperity/vaultd/models"
)

// Conn is a line-delimited JSON connection to a running vaultd instance
// over its Unix domain socket. One Conn serves the whole interactive
// session; requests are sent and answered one at a time, matching the
// daemon's own serialized dispatch.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to the vaultd socket at path.
func Dial(path string) (*Conn, error) {
	c, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial vaultd socket: %w", err)
	}
	return &Conn{conn: c, reader: bufio.NewReaderSize(c, 64*1024)}, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Send writes req as one JSON line and returns the decoded response.
func (c *Conn) Send(req models.Request) (models.Response, error) {
	line, err := json.Marshal(req)
	if err != nil {
		return models.Response{}, err
	}
	line = append(line, '\n')

	if _, err := c.conn.Write(line); err != nil {
		return models.Response{}, fmt.Errorf("write request: %w", err)
	}

	respLine, err := c.reader.ReadBytes('\n')
	if err != nil {
		return models.Response{}, fmt.Errorf("read response: %w", err)
	}

	var resp models.Response
	if err := json.Unmarshal(respLine, &resp); err != nil {
		return models.Response{}, fmt.Errorf("decode response: %w", err)
	}

	return resp, nil
}
