// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/config"
	"github.com/foundriesio/farmctl/cli/history"
	"github.com/foundriesio/farmctl/cli/subcommands"
	"github.com/foundriesio/farmctl/cli/subcommands/account"
	"github.com/foundriesio/farmctl/cli/subcommands/contexts"
	"github.com/foundriesio/farmctl/cli/subcommands/devicepools"
	"github.com/foundriesio/farmctl/cli/subcommands/devices"
	"github.com/foundriesio/farmctl/cli/subcommands/projects"
	"github.com/foundriesio/farmctl/cli/subcommands/runs"
	"github.com/foundriesio/farmctl/cli/subcommands/uploads"
	appctx "github.com/foundriesio/farmctl/context"
	"github.com/foundriesio/farmctl/devicefarm"
)

var hist *history.Store

var rootCmd = &cobra.Command{
	Use:   "farmctl",
	Short: "A command line interface to AWS Device Farm",
	Long: `farmctl schedules mobile test runs on AWS Device Farm and collects
their results: it uploads app and test artifacts, schedules runs against a
device pool, and downloads result artifacts into a local directory tree.

Configuration is stored in $HOME/.config/farmctl.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		log, err := appctx.InitLogger(level)
		if err != nil {
			return err
		}

		// Context management is purely local; it must work before any
		// credentials are configured.
		if strings.HasPrefix(cmd.CommandPath(), "farmctl contexts") {
			cmd.SetContext(appctx.CtxWithLog(cmd.Context(), log))
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		contextName, err := cmd.Flags().GetString("context")
		if err != nil {
			return err
		}
		farmCfg, err := cfg.GetContext(contextName)
		if err != nil {
			return fmt.Errorf("failed to get current context: %w", err)
		}

		client, err := devicefarm.NewClient(cmd.Context(), devicefarm.ClientOptions{
			Region: farmCfg.Region,
			Role:   farmCfg.RoleArn,
			Logger: log,
		})
		if err != nil {
			return err
		}

		hist, err = history.Open(historyPath())
		if err != nil {
			return err
		}

		ctx := appctx.CtxWithLog(cmd.Context(), log)
		ctx = subcommands.CtxWithClient(ctx, client)
		ctx = subcommands.CtxWithConfig(ctx, farmCfg)
		ctx = subcommands.CtxWithHistory(ctx, hist)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if hist != nil {
			return hist.Close()
		}
		return nil
	},
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "farmctl-history.db"
	}
	return filepath.Join(home, ".local", "share", "farmctl", "history.db")
}

func init() {
	rootCmd.PersistentFlags().StringP("context", "c", "", "Specify the context to use from the configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warning, error)")
	rootCmd.AddCommand(projects.ProjectsCmd)
	rootCmd.AddCommand(devicepools.DevicePoolsCmd)
	rootCmd.AddCommand(devices.DevicesCmd)
	rootCmd.AddCommand(runs.RunsCmd)
	rootCmd.AddCommand(uploads.UploadsCmd)
	rootCmd.AddCommand(account.AccountCmd)
	rootCmd.AddCommand(contexts.ContextsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "ERROR: %s (%s)\n", err, apiErr.ErrorCode())
		} else {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		os.Exit(1)
	}
}
