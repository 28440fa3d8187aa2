// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package runs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var RunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage test runs",
	Long:  `Commands for scheduling Device Farm test runs and collecting their results`,
}

// resolveRunArn picks the run to operate on: an explicit argument wins, then
// the most recently scheduled run from the local history.
func resolveRunArn(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	latest, err := subcommands.CtxGetHistory(cmd.Context()).Latest()
	if err != nil {
		return "", err
	}
	if latest == nil {
		return "", fmt.Errorf("no run ARN given and no runs in the local history")
	}
	return latest.Arn, nil
}
