// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicepools

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the device pools of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		projectFlag, _ := cmd.Flags().GetString("project")
		projectName, err := subcommands.ProjectName(ctx, projectFlag)
		if err != nil {
			return err
		}

		client := subcommands.CtxGetClient(ctx)
		project, err := client.Project(ctx, projectName)
		if err != nil {
			return err
		}
		pools, err := client.DevicePools(ctx, aws.ToString(project.Arn))
		if err != nil {
			return err
		}

		table := subcommands.NewTableWriter([]string{"NAME", "TYPE", "ARN"})
		for _, p := range pools {
			table.AddRow(aws.ToString(p.Name), p.Type, aws.ToString(p.Arn))
		}
		table.Render()
		return nil
	},
}

func init() {
	DevicePoolsCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("project", "p", "", "Project name (defaults to the configured project)")
}
