// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicepools

import (
	"github.com/spf13/cobra"
)

var DevicePoolsCmd = &cobra.Command{
	Use:   "device-pools",
	Short: "Manage device pools",
	Long:  `Commands for inspecting the device pools of a Device Farm project`,
}
