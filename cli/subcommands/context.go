// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

// Package subcommands holds the helpers shared by the farmctl subcommand
// packages: the values the root command attaches to the command context, and
// the table renderer used by the list commands.
package subcommands

import (
	"context"
	"fmt"

	"github.com/foundriesio/farmctl/cli/config"
	"github.com/foundriesio/farmctl/cli/history"
	"github.com/foundriesio/farmctl/devicefarm"
)

type ctxKey int

const (
	ctxKeyClient ctxKey = iota
	ctxKeyConfig
	ctxKeyHistory
)

func CtxWithClient(ctx context.Context, c *devicefarm.Client) context.Context {
	return context.WithValue(ctx, ctxKeyClient, c)
}

func CtxGetClient(ctx context.Context) *devicefarm.Client {
	return ctx.Value(ctxKeyClient).(*devicefarm.Client)
}

func CtxWithConfig(ctx context.Context, cfg *config.Context) context.Context {
	return context.WithValue(ctx, ctxKeyConfig, cfg)
}

func CtxGetConfig(ctx context.Context) *config.Context {
	return ctx.Value(ctxKeyConfig).(*config.Context)
}

func CtxWithHistory(ctx context.Context, s *history.Store) context.Context {
	return context.WithValue(ctx, ctxKeyHistory, s)
}

func CtxGetHistory(ctx context.Context) *history.Store {
	return ctx.Value(ctxKeyHistory).(*history.Store)
}

// ProjectName resolves the project to operate on: an explicit flag value
// wins, then the configured context's default.
func ProjectName(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg := CtxGetConfig(ctx); cfg.Project != "" {
		return cfg.Project, nil
	}
	return "", fmt.Errorf("no project given; use --project or set one in the configuration")
}

// DevicePoolName resolves the device pool the same way.
func DevicePoolName(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg := CtxGetConfig(ctx); cfg.DevicePool != "" {
		return cfg.DevicePool, nil
	}
	return "", fmt.Errorf("no device pool given; use --device-pool or set one in the configuration")
}
