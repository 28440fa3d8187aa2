// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package uploads

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var statusCmd = &cobra.Command{
	Use:   "status <upload-arn>",
	Short: "Show the state of an upload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := subcommands.CtxGetClient(cmd.Context())
		upload, err := client.GetUpload(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println("Name:    ", aws.ToString(upload.Name))
		fmt.Println("Type:    ", upload.Type)
		fmt.Println("Status:  ", upload.Status)
		if metadata := aws.ToString(upload.Metadata); metadata != "" {
			fmt.Println("Metadata:", metadata)
		}
		return nil
	},
}

func init() {
	UploadsCmd.AddCommand(statusCmd)
}
