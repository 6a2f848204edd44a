// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prosperity/vaultd/internal/tuiclient"
)

const defaultSocket = "/run/prosperity/vault.sock"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	socketPath := flag.String("socket", defaultSocket, "Unix domain socket path of a running vaultd")
	flag.Parse()

	app, err := tuiclient.NewApp(*socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init vaultctl error: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl run error: %v\n", err)
		os.Exit(1)
	}
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
