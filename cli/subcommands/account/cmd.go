// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package account

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Inspect account settings",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the account's Device Farm settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := subcommands.CtxGetClient(cmd.Context())
		settings, err := client.AccountSettings(cmd.Context())
		if err != nil {
			return err
		}
		if settings == nil {
			fmt.Println("No account settings")
			return nil
		}

		fmt.Println("AWS account:", aws.ToString(settings.AwsAccountNumber))
		fmt.Println("Unmetered devices:")
		for platform, count := range settings.UnmeteredDevices {
			fmt.Printf("  %s: %d\n", platform, count)
		}
		if settings.MaxJobTimeoutMinutes != nil {
			fmt.Println("Max job timeout (minutes):", aws.ToInt32(settings.MaxJobTimeoutMinutes))
		}
		return nil
	},
}

func init() {
	AccountCmd.AddCommand(settingsCmd)
}
