// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/client"
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/tui"
	"github.com/MKhiriev/go-auth-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("go-auth-client", os.Stderr)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	auth, err := adapter.NewHTTPAuthClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth client")
	}

	var clip client.CopyFunc
	if !clipboard.Unsupported {
		clip = clipboard.WriteAll
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TUI || len(args) == 0 {
		buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		err = tui.New(auth, tui.CopyFunc(clip), buildInfo, log).Run(ctx)
	} else {
		err = client.NewApp(auth, clip, os.Stdout, log).Run(ctx, args)
	}
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
