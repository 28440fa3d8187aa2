// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicepools

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one device pool and its selection rules",
	Args:  cobra.ExactArgs(1),
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
		pool, err := client.DevicePool(ctx, aws.ToString(project.Arn), args[0])
		if err != nil {
			return err
		}

		fmt.Println("Name:       ", aws.ToString(pool.Name))
		fmt.Println("ARN:        ", aws.ToString(pool.Arn))
		fmt.Println("Description:", aws.ToString(pool.Description))
		if len(pool.Rules) > 0 {
			fmt.Println("Rules:")
			for _, r := range pool.Rules {
				fmt.Printf("  %s %s %s\n", r.Attribute, r.Operator, aws.ToString(r.Value))
			}
		}
		return nil
	},
}

func init() {
	DevicePoolsCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("project", "p", "", "Project name (defaults to the configured project)")
}
