// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package uploads

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
	"github.com/foundriesio/farmctl/devicefarm"
)

var pushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Upload an artifact and wait until it is processed",
	Long: `Upload an app, extra-data package, or test package. The type is "app",
"extra-data", or one of the test framework names (` + strings.Join(devicefarm.Frameworks(), ", ") + `).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		projectFlag, _ := cmd.Flags().GetString("project")
		kind, _ := cmd.Flags().GetString("type")

		projectName, err := subcommands.ProjectName(ctx, projectFlag)
		if err != nil {
			return err
		}
		client := subcommands.CtxGetClient(ctx)
		project, err := client.Project(ctx, projectName)
		if err != nil {
			return err
		}
		projectArn := aws.ToString(project.Arn)

		var upload *types.Upload
		switch kind {
		case "app":
			upload, err = client.UploadApp(ctx, projectArn, args[0])
		case "extra-data":
			upload, err = client.UploadExtraData(ctx, projectArn, args[0])
		default:
			framework, ferr := devicefarm.ParseFramework(kind)
			if ferr != nil {
				return fmt.Errorf("unknown upload type %s: %w", kind, ferr)
			}
			upload, err = client.UploadTest(ctx, projectArn, devicefarm.TestSpec{
				Framework: framework,
				Package:   args[0],
			})
		}
		if err != nil {
			return err
		}
		fmt.Println(aws.ToString(upload.Arn))
		return nil
	},
}

func init() {
	UploadsCmd.AddCommand(pushCmd)
	pushCmd.Flags().StringP("project", "p", "", "Project name (defaults to the configured project)")
	pushCmd.Flags().StringP("type", "t", "app", "Upload type")
}
