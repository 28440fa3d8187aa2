// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devices

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
	"github.com/spf13/cobra"

	"github.com/foundriesio/farmctl/cli/subcommands"
)

var allColumns = []string{
	"name",
	"os",
	"platform",
	"form-factor",
	"arn",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all devices",
	Long:  `List all devices available to a project`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		projectFlag, _ := cmd.Flags().GetString("project")
		columns, _ := cmd.Flags().GetString("columns")

		projectName, err := subcommands.ProjectName(ctx, projectFlag)
		if err != nil {
			return err
		}
		client := subcommands.CtxGetClient(ctx)
		project, err := client.Project(ctx, projectName)
		if err != nil {
			return err
		}
		devices, err := client.Devices(ctx, aws.ToString(project.Arn))
		if err != nil {
			return err
		}
		return listDevices(devices, columns)
	},
}

func init() {
	colmnsStr := strings.Join(allColumns, ",")
	DevicesCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("project", "p", "", "Project name (defaults to the configured project)")
	listCmd.Flags().StringP("columns", "", "name,os,platform",
		"Comma-separated list of columns to display (available: "+colmnsStr+")")
}

func listDevices(devices []types.Device, columnsStr string) error {
	columns := strings.Split(columnsStr, ",")
	for i, col := range columns {
		columns[i] = strings.TrimSpace(col)
		if slices.Index(allColumns, columns[i]) < 0 {
			return fmt.Errorf("invalid column: %s", col)
		}
	}

	headers := make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, strings.ToUpper(strings.ReplaceAll(col, "-", " ")))
	}
	table := subcommands.NewTableWriter(headers)

	for _, device := range devices {
		row := make([]any, 0, len(columns))
		for _, col := range columns {
			row = append(row, getColumnValue(&device, col))
		}
		table.AddRow(row...)
	}

	table.Render()
	return nil
}

func getColumnValue(device *types.Device, column string) string {
	switch column {
	case "name":
		return aws.ToString(device.Name)
	case "os":
		return aws.ToString(device.Os)
	case "platform":
		return string(device.Platform)
	case "form-factor":
		return string(device.FormFactor)
	case "arn":
		return aws.ToString(device.Arn)
	}
	return ""
}
