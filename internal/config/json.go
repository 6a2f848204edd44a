// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the JSON-specific representation of vaultd's
// configuration. It mirrors [StructuredConfig] but uses JSON struct tags.
//
// After decoding, the values are mapped into a [StructuredConfig] by
// [parseJSON].
type StructuredJSONConfig struct {
	// Daemon holds socket and vault-directory settings loaded from the JSON
	// file.
	Daemon struct {
		Socket   string `json:"socket"`
		VaultDir string `json:"vault_dir"`
	} `json:"daemon,omitempty"`

	// Log holds logging settings loaded from the JSON file.
	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

// parseJSON opens the JSON file at jsonFilePath, decodes it into a
// [StructuredJSONConfig], and maps the result into a [StructuredConfig].
//
// JSONFilePath is intentionally left empty in the returned config so that
// the path is not re-processed during subsequent merge steps.
//
// Returns a wrapped error if the file cannot be opened or its contents
// cannot be decoded as valid JSON.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Daemon: Daemon{
			Socket:   jsonCfg.Daemon.Socket,
			VaultDir: jsonCfg.Daemon.VaultDir,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "", // intentionally cleared to prevent re-processing
	}

	return cfg, nil
}
