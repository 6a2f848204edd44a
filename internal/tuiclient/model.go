// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tuiclient

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/prosperity/vaultd/models"
)

// screen identifies which view of the root model is currently active.
type screen int

const (
	screenUnlock screen = iota
	screenMenu
	screenList
	screenDetail
	screenCreate
)

// RootModel is vaultctl's single Bubble Tea model. Every screen shares one
// struct rather than a per-page router: the state machine is small enough
// (five screens, one socket connection) that a page map and NavigateTo
// messages would add indirection without buying anything.
type RootModel struct {
	conn *Conn

	screen screen
	err    error
	status string

	passphraseInput textinput.Model

	entries  []models.EntryMetadata
	cursor   int
	detail   models.VaultEntry
	unlocked bool

	createName  textinput.Model
	createValue textinput.Model
	focusIdx    int
}

// NewRootModel constructs the initial unlock screen bound to conn.
func NewRootModel(conn *Conn) RootModel {
	pass := textinput.New()
	pass.Placeholder = "passphrase"
	pass.EchoMode = textinput.EchoPassword
	pass.Focus()

	name := textinput.New()
	name.Placeholder = "name"
	name.Width = 40

	value := textinput.New()
	value.Placeholder = "secret value"
	value.Width = 40

	return RootModel{
		conn:            conn,
		screen:          screenUnlock,
		passphraseInput: pass,
		createName:      name,
		createValue:     value,
	}
}

// Init implements [tea.Model].
func (m RootModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

// View implements [tea.Model].
func (m RootModel) View() string {
	var body string
	switch m.screen {
	case screenUnlock:
		body = m.viewUnlock()
	case screenMenu:
		body = m.viewMenu()
	case screenList:
		body = m.viewList()
	case screenDetail:
		body = m.viewDetail()
	case screenCreate:
		body = m.viewCreate()
	}

	if m.err != nil {
		body += "\n\n" + errorStyle.Render(m.err.Error())
	}
	return appStyle.Render(body)
}

func (m RootModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		resp, err := m.conn.Send(models.Request{
			Cmd:        models.CmdUnlock,
			Passphrase: m.passphraseInput.Value(),
		})
		if err != nil {
			m.err = err
			return m, nil
		}
		if resp.Status != "ok" {
			m.err = fmt.Errorf("%s", resp.Message)
			return m, nil
		}
		m.err = nil
		m.unlocked = true
		m.screen = screenMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.passphraseInput, cmd = m.passphraseInput.Update(msg)
	return m, cmd
}

func (m RootModel) viewUnlock() string {
	out := titleStyle.Render("Prosperity Vault") + "\n\n"
	out += "Passphrase: " + m.passphraseInput.View() + "\n\n"
	out += helpStyle.Render("enter unlock  ctrl+c quit")
	return out
}

func (m RootModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case keys.lock.Keys()[0]:
		_, _ = m.conn.Send(models.Request{Cmd: models.CmdLock})
		m.unlocked = false
		m.screen = screenUnlock
		return m, nil
	case "enter":
		return m.loadList()
	case keys.newItem.Keys()[0]:
		m.screen = screenCreate
		m.focusIdx = 0
		m.createName.Focus()
		m.createValue.Blur()
		return m, nil
	}

	return m, nil
}

func (m RootModel) viewMenu() string {
	out := titleStyle.Render("Prosperity Vault") + "\n\n"
	out += "enter  view entries\n"
	out += "n      create entry\n"
	out += "l      lock vault\n"
	out += "\n" + helpStyle.Render("ctrl+c quit")
	return out
}

func (m RootModel) loadList() (tea.Model, tea.Cmd) {
	resp, err := m.conn.Send(models.Request{Cmd: models.CmdList})
	if err != nil {
		m.err = err
		return m, nil
	}
	if resp.Status != "ok" {
		m.err = fmt.Errorf("%s", resp.Message)
		return m, nil
	}

	raw, _ := json.Marshal(resp.Data)
	var entries []models.EntryMetadata
	_ = json.Unmarshal(raw, &entries)

	m.entries = entries
	m.cursor = 0
	m.err = nil
	m.screen = screenList
	return m, nil
}

func (m RootModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.screen = screenMenu
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.loadDetail()
	case "d":
		return m.deleteSelected()
	}

	return m, nil
}

func (m RootModel) viewList() string {
	out := titleStyle.Render("Entries") + "\n\n"
	if len(m.entries) == 0 {
		out += "(empty)\n"
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%-10s %-20s %s", e.Category.String(), e.Name, e.Type.String())
		if i == m.cursor {
			line = selectedItem.Render("> " + line)
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}
	out += "\n" + helpStyle.Render("enter view  d delete  esc back")
	return out
}

func (m RootModel) loadDetail() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return m, nil
	}

	id := m.entries[m.cursor].ID
	resp, err := m.conn.Send(models.Request{Cmd: models.CmdGet, ID: id, AgentID: "vaultctl"})
	if err != nil {
		m.err = err
		return m, nil
	}
	if resp.Status != "ok" {
		m.err = fmt.Errorf("%s", resp.Message)
		return m, nil
	}

	raw, _ := json.Marshal(resp.Data)
	var entry models.VaultEntry
	_ = json.Unmarshal(raw, &entry)

	m.detail = entry
	m.err = nil
	m.screen = screenDetail
	return m, nil
}

func (m RootModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return m, nil
	}

	id := m.entries[m.cursor].ID
	resp, err := m.conn.Send(models.Request{Cmd: models.CmdDelete, ID: id})
	if err != nil {
		m.err = err
		return m, nil
	}
	if resp.Status != "ok" {
		m.err = fmt.Errorf("%s", resp.Message)
		return m, nil
	}

	return m.loadList()
}

func (m RootModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.screen = screenList
		return m, nil
	case keys.copy.Keys()[0]:
		if err := clipboard.WriteAll(string(m.detail.Value)); err != nil {
			m.err = fmt.Errorf("clipboard: %w", err)
			return m, nil
		}
		m.status = "value copied to clipboard"
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m RootModel) viewDetail() string {
	out := titleStyle.Render(m.detail.Name) + "\n\n"
	out += "category: " + m.detail.Category.String() + "\n"
	out += "type:     " + m.detail.Type.String() + "\n"
	if m.detail.Username != "" {
		out += "username: " + m.detail.Username + "\n"
	}
	if m.detail.URL != "" {
		out += "url:      " + m.detail.URL + "\n"
	}
	out += "value:    " + maskedValue(len(m.detail.Value)) + "\n"
	if m.status != "" {
		out += "\n" + successStyle.Render(m.status) + "\n"
	}
	out += "\n" + helpStyle.Render("c copy value  esc back")
	return out
}

func maskedValue(n int) string {
	masked := ""
	for i := 0; i < n && i < 32; i++ {
		masked += "*"
	}
	if masked == "" {
		masked = "(empty)"
	}
	return masked
}

func (m RootModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.screen = screenMenu
		return m, nil
	case "tab":
		m.focusIdx = (m.focusIdx + 1) % 2
		if m.focusIdx == 0 {
			m.createName.Focus()
			m.createValue.Blur()
		} else {
			m.createName.Blur()
			m.createValue.Focus()
		}
		return m, nil
	case "enter":
		return m.submitCreate()
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.createName, cmd = m.createName.Update(msg)
	} else {
		m.createValue, cmd = m.createValue.Update(msg)
	}
	return m, cmd
}

func (m RootModel) submitCreate() (tea.Model, tea.Cmd) {
	value := base64.StdEncoding.EncodeToString([]byte(m.createValue.Value()))
	resp, err := m.conn.Send(models.Request{
		Cmd: models.CmdCreate,
		Entry: &models.NewEntryRequest{
			Category: models.CategoryAuthentication,
			Type:     models.EntryTypePassword,
			Name:     m.createName.Value(),
			Value:    value,
		},
	})
	if err != nil {
		m.err = err
		return m, nil
	}
	if resp.Status != "ok" {
		m.err = fmt.Errorf("%s", resp.Message)
		return m, nil
	}

	m.createName.SetValue("")
	m.createValue.SetValue("")
	m.err = nil
	m.screen = screenMenu
	return m, nil
}

func (m RootModel) viewCreate() string {
	out := titleStyle.Render("New entry") + "\n\n"
	out += "Name:  [" + m.createName.View() + "]\n"
	out += "Value: [" + m.createValue.View() + "]\n\n"
	out += helpStyle.Render("tab next field  enter save  esc cancel")
	return out
}
