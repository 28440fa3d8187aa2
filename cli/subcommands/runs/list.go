// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package runs

import (
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List runs scheduled from this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := subcommands.CtxGetHistory(cmd.Context()).List(limit)
		if err != nil {
			return err
		}

		table := subcommands.NewTableWriter([]string{"NAME", "PROJECT", "SCHEDULED", "STATUS", "ARN"})
		for _, r := range runs {
			table.AddRow(r.Name, r.Project, r.ScheduledAt.Format("2006-01-02 15:04"), r.Status, r.Arn)
		}
		table.Render()
		return nil
	},
}

func init() {
	RunsCmd.AddCommand(listCmd)
	listCmd.Flags().IntP("limit", "l", 20, "Maximum number of runs to list")
}
