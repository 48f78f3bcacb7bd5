// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultClientRequestTimeout bounds every request of the CLI client.
const DefaultClientRequestTimeout = 10 * time.Second

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the auth server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the CLI client.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// TUI opens the interactive terminal UI instead of running a command.
	// Env: CLIENT_TUI
	TUI bool `env:"CLIENT_TUI"`
}

// GetClientConfig builds and validates the client configuration. A field is
// taken from environment variables first, then from the leading flags of
// args, then from defaults.
//
// It returns the arguments left after flag parsing (the client command and
// its operands).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://" + DefaultHTTPAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Auth server address")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.BoolVar(&flagCfg.TUI, "tui", false, "Open the interactive terminal UI")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	var err error
	for _, layer := range []*ClientConfig{envCfg, flagCfg, defaults} {
		err = errors.Join(err, mergo.Merge(cfg, layer))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", err)
	}

	return cfg, fs.Args(), cfg.validate()
}
