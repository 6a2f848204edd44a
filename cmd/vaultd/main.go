// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/prosperity/vaultd/internal/config"
	"github.com/prosperity/vaultd/internal/daemon"
	"github.com/prosperity/vaultd/internal/logger"
	"github.com/prosperity/vaultd/internal/socket"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultd", logger.ParseLevel(""))
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger("vaultd", logger.ParseLevel(cfg.Log.Level))
	log.Info().Msg("starting vaultd")
	log.Debug().Any("config", cfg).Msg("received configs")

	d := daemon.New(cfg.Daemon.VaultDir, log)

	srv, err := socket.NewServer(cfg.Daemon.Socket, d, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating socket server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
