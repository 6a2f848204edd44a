// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tuiclient

import (
	tea "github.com/charmbracelet/bubbletea"
)

// App is the concrete interactive client runtime. It owns the socket
// connection to vaultd and the Bubble Tea program driving the terminal
// UI.
type App struct {
	conn *Conn
}

// NewApp dials the vaultd socket at socketPath and returns a ready-to-run
// [App].
func NewApp(socketPath string) (*App, error) {
	conn, err := Dial(socketPath)
	if err != nil {
		return nil, err
	}
	return &App{conn: conn}, nil
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (a *App) Run() error {
	defer a.conn.Close()

	program := tea.NewProgram(NewRootModel(a.conn))
	_, err := program.Run()
	return err
}
