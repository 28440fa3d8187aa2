// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package uploads

import (
	"github.com/spf13/cobra"
)

var UploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Manage uploads",
	Long:  `Commands for pushing artifacts to Device Farm and inspecting their state`,
}
