// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package projects

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var ProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage Device Farm projects",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := subcommands.CtxGetClient(cmd.Context())
		projects, err := client.Projects(cmd.Context())
		if err != nil {
			return err
		}

		table := subcommands.NewTableWriter([]string{"NAME", "ARN", "CREATED"})
		for _, p := range projects {
			created := ""
			if p.Created != nil {
				created = p.Created.Format("2006-01-02 15:04")
			}
			table.AddRow(aws.ToString(p.Name), aws.ToString(p.Arn), created)
		}
		table.Render()
		return nil
	},
}

func init() {
	ProjectsCmd.AddCommand(listCmd)
}
