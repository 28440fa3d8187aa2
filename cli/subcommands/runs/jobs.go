// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package runs

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs [run-arn]",
	Short: "List the per-device jobs of a run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runArn, err := resolveRunArn(cmd, args)
		if err != nil {
			return err
		}
		client := subcommands.CtxGetClient(cmd.Context())
		jobs, err := client.Jobs(cmd.Context(), runArn)
		if err != nil {
			return err
		}

		table := subcommands.NewTableWriter([]string{"NAME", "DEVICE OS", "STATUS", "RESULT"})
		for _, j := range jobs {
			os := ""
			if j.Device != nil {
				os = aws.ToString(j.Device.Os)
			}
			table.AddRow(aws.ToString(j.Name), os, j.Status, j.Result)
		}
		table.Render()
		return nil
	},
}

func init() {
	RunsCmd.AddCommand(jobsCmd)
}
