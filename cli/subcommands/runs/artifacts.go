// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package runs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
	appctx "github.com/foundriesio/farmctl/context"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts [run-arn]",
	Short: "Download all artifacts of a run",
	Long: `Download every artifact of a run into a local directory tree mirroring the
run's job/suite/test hierarchy. Without an ARN, the most recently scheduled
run is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dest, _ := cmd.Flags().GetString("dest")

		runArn, err := resolveRunArn(cmd, args)
		if err != nil {
			return err
		}

		client := subcommands.CtxGetClient(ctx)
		result, err := client.DownloadArtifacts(ctx, runArn, dest)
		if err != nil {
			return err
		}

		for _, f := range result.Files {
			fmt.Println(f)
		}
		appctx.CtxGetLog(ctx).Info("artifacts downloaded",
			"run", runArn, "files", len(result.Files), "jobs", len(result.Jobs), "tests", len(result.Tests))
		return nil
	},
}

func init() {
	RunsCmd.AddCommand(artifactsCmd)
	artifactsCmd.Flags().StringP("dest", "o", "artifacts", "Directory to download artifacts into")
}
