// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package runs

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var showCmd = &cobra.Command{
	Use:   "show [run-arn]",
	Short: "Show the state of a run",
	Long:  `Show the state of a run. Without an ARN, the most recently scheduled run is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runArn, err := resolveRunArn(cmd, args)
		if err != nil {
			return err
		}
		client := subcommands.CtxGetClient(cmd.Context())
		run, err := client.Run(cmd.Context(), runArn)
		if err != nil {
			return err
		}

		fmt.Println("Name:   ", aws.ToString(run.Name))
		fmt.Println("ARN:    ", aws.ToString(run.Arn))
		fmt.Println("Status: ", run.Status)
		fmt.Println("Result: ", run.Result)
		if run.Counters != nil {
			fmt.Printf("Tests:   %d total, %d passed, %d failed, %d errored, %d warned, %d skipped\n",
				aws.ToInt32(run.Counters.Total),
				aws.ToInt32(run.Counters.Passed),
				aws.ToInt32(run.Counters.Failed),
				aws.ToInt32(run.Counters.Errored),
				aws.ToInt32(run.Counters.Warned),
				aws.ToInt32(run.Counters.Skipped))
		}
		return nil
	},
}

func init() {
	RunsCmd.AddCommand(showCmd)
}
