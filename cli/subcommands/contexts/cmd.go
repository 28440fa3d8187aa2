// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package contexts

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/config"
	"github.com/foundriesio/farmctl/cli/subcommands"
)

var ContextsCmd = &cobra.Command{
	Use:   "contexts",
	Short: "Manage configuration contexts",
	Long:  `Commands for managing the named contexts in ~/.config/farmctl.yaml`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		table := subcommands.NewTableWriter([]string{"", "NAME", "REGION", "ROLE", "PROJECT"})
		for name, c := range cfg.Contexts {
			active := ""
			if name == cfg.ActiveContext {
				active = "*"
			}
			table.AddRow(active, name, c.Region, c.RoleArn, c.Project)
		}
		table.Render()
		return nil
	},
}

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Contexts[args[0]]; !ok {
			return fmt.Errorf("context '%s' not found", args[0])
		}
		cfg.ActiveContext = args[0]
		return config.SaveConfig(cfg)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update a context",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.Contexts == nil {
			cfg.Contexts = map[string]config.Context{}
		}

		c := cfg.Contexts[args[0]]
		if v, _ := cmd.Flags().GetString("region"); cmd.Flags().Changed("region") {
			c.Region = v
		}
		if v, _ := cmd.Flags().GetString("role-arn"); cmd.Flags().Changed("role-arn") {
			c.RoleArn = v
		}
		if v, _ := cmd.Flags().GetString("project"); cmd.Flags().Changed("project") {
			c.Project = v
		}
		if v, _ := cmd.Flags().GetString("device-pool"); cmd.Flags().Changed("device-pool") {
			c.DevicePool = v
		}
		cfg.Contexts[args[0]] = c

		if cfg.ActiveContext == "" {
			cfg.ActiveContext = args[0]
		}
		return config.SaveConfig(cfg)
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	ContextsCmd.AddCommand(listCmd)
	ContextsCmd.AddCommand(useCmd)
	ContextsCmd.AddCommand(setCmd)
	setCmd.Flags().String("region", "", "AWS region for Device Farm API calls")
	setCmd.Flags().String("role-arn", "", "IAM role to assume for API calls")
	setCmd.Flags().String("project", "", "Default project name")
	setCmd.Flags().String("device-pool", "", "Default device pool name")
}
