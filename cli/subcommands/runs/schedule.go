// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package runs

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/history"
	"github.com/foundriesio/farmctl/cli/profile"
	"github.com/foundriesio/farmctl/cli/subcommands"
	"github.com/foundriesio/farmctl/devicefarm"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Upload artifacts and schedule a test run",
	Long: `Upload the app, test package, and extra data named by the run profile,
then schedule a run against the chosen device pool. Each upload blocks until
Device Farm has processed it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		profilePath, _ := cmd.Flags().GetString("profile")
		projectFlag, _ := cmd.Flags().GetString("project")
		poolFlag, _ := cmd.Flags().GetString("device-pool")
		name, _ := cmd.Flags().GetString("name")
		wait, _ := cmd.Flags().GetBool("wait")

		p, err := profile.Load(profilePath)
		if err != nil {
			return err
		}
		spec, err := p.TestSpec()
		if err != nil {
			return err
		}

		projectName, err := subcommands.ProjectName(ctx, projectFlag)
		if err != nil {
			return err
		}
		poolName, err := subcommands.DevicePoolName(ctx, poolFlag)
		if err != nil {
			return err
		}
		if name == "" {
			name = fmt.Sprintf("%s-%s", strings.TrimSuffix(projectName, "/"), time.Now().Format("20060102-150405"))
		}

		client := subcommands.CtxGetClient(ctx)
		project, err := client.Project(ctx, projectName)
		if err != nil {
			return err
		}
		pool, err := client.DevicePool(ctx, aws.ToString(project.Arn), poolName)
		if err != nil {
			return err
		}

		var appArn, extraDataArn, testPackageArn string
		if p.App != "" {
			upload, err := client.UploadApp(ctx, aws.ToString(project.Arn), p.App)
			if err != nil {
				return err
			}
			appArn = aws.ToString(upload.Arn)
		}
		if p.ExtraData != "" {
			upload, err := client.UploadExtraData(ctx, aws.ToString(project.Arn), p.ExtraData)
			if err != nil {
				return err
			}
			extraDataArn = aws.ToString(upload.Arn)
		}
		if spec.Package != "" {
			upload, err := client.UploadTest(ctx, aws.ToString(project.Arn), spec)
			if err != nil {
				return err
			}
			testPackageArn = aws.ToString(upload.Arn)
		}

		run, err := client.ScheduleRun(ctx, devicefarm.RunOptions{
			ProjectArn:        aws.ToString(project.Arn),
			Name:              name,
			DevicePoolArn:     aws.ToString(pool.Arn),
			AppArn:            appArn,
			TestPackageArn:    testPackageArn,
			Test:              spec,
			JobTimeoutMinutes: p.JobTimeoutMinutes,
			Configuration:     p.RunConfiguration(extraDataArn),
		})
		if err != nil {
			return err
		}

		runArn := aws.ToString(run.Arn)
		if err := subcommands.CtxGetHistory(ctx).Add(history.Run{
			Arn:         runArn,
			Name:        name,
			Project:     projectName,
			ScheduledAt: time.Now(),
			Status:      string(run.Status),
		}); err != nil {
			return err
		}
		fmt.Println(runArn)

		if !wait {
			return nil
		}
		final, err := client.WaitRun(ctx, runArn)
		if err != nil {
			return err
		}
		if err := subcommands.CtxGetHistory(ctx).SetStatus(runArn, string(final.Result)); err != nil {
			return err
		}
		if final.Result != types.ExecutionResultPassed {
			return fmt.Errorf("run %s finished with result %s", name, final.Result)
		}
		return nil
	},
}

func init() {
	RunsCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringP("profile", "f", "", "Path to the TOML run profile")
	_ = scheduleCmd.MarkFlagRequired("profile")
	scheduleCmd.Flags().StringP("project", "p", "", "Project name (defaults to the configured project)")
	scheduleCmd.Flags().StringP("device-pool", "d", "", "Device pool name (defaults to the configured pool)")
	scheduleCmd.Flags().StringP("name", "n", "", "Run name (defaults to <project>-<timestamp>)")
	scheduleCmd.Flags().BoolP("wait", "w", false, "Wait for the run to complete; fail unless it passed")
}
