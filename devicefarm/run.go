// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
)

// DefaultJobTimeoutMinutes is the service-side default per-job timeout. An
// execution configuration is only sent when the requested timeout differs,
// so the service default is not overridden needlessly.
const DefaultJobTimeoutMinutes = 60

// RunOptions describe a run to schedule. AppArn and Configuration are
// optional; a zero JobTimeoutMinutes means the service default.
type RunOptions struct {
	ProjectArn        string
	Name              string
	DevicePoolArn     string
	AppArn            string
	TestPackageArn    string
	Test              TestSpec
	JobTimeoutMinutes int32
	Configuration     *types.ScheduleRunConfiguration
}

// ScheduleRun schedules a test run and returns the service's description of
// it verbatim. It does not wait for the run to finish; scheduling twice
// creates two runs, so callers must not re-invoke on their own.
func (c *Client) ScheduleRun(ctx context.Context, opts RunOptions) (*types.Run, error) {
	test, err := opts.Test.scheduleRunTest(opts.TestPackageArn)
	if err != nil {
		return nil, err
	}

	in := &devicefarm.ScheduleRunInput{
		ProjectArn:    aws.String(opts.ProjectArn),
		Name:          aws.String(opts.Name),
		DevicePoolArn: aws.String(opts.DevicePoolArn),
		Test:          test,
	}
	if opts.JobTimeoutMinutes != 0 && opts.JobTimeoutMinutes != DefaultJobTimeoutMinutes {
		in.ExecutionConfiguration = &types.ExecutionConfiguration{
			JobTimeoutMinutes: aws.Int32(opts.JobTimeoutMinutes),
		}
	}
	if opts.Configuration != nil {
		in.Configuration = opts.Configuration
	}
	if opts.AppArn != "" {
		in.AppArn = aws.String(opts.AppArn)
	}

	out, err := c.api.ScheduleRun(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("scheduling run %s: %w", opts.Name, err)
	}
	c.infof("run scheduled", "name", opts.Name, "arn", aws.ToString(out.Run.Arn))
	return out.Run, nil
}

// Run describes an existing run.
func (c *Client) Run(ctx context.Context, runArn string) (*types.Run, error) {
	out, err := c.api.GetRun(ctx, &devicefarm.GetRunInput{Arn: aws.String(runArn)})
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return out.Run, nil
}

// WaitRun polls the run at the client's poll interval until it completes,
// returning its final description. Cancelling ctx interrupts the wait and is
// surfaced as an error.
func (c *Client) WaitRun(ctx context.Context, runArn string) (*types.Run, error) {
	for {
		run, err := c.Run(ctx, runArn)
		if err != nil {
			return nil, err
		}
		if run.Status == types.ExecutionStatusCompleted {
			c.infof("run completed", "name", aws.ToString(run.Name), "result", run.Result)
			return run, nil
		}

		c.infof("waiting for run to complete", "name", aws.ToString(run.Name), "status", run.Status)
		if err := sleep(ctx, c.pollInterval); err != nil {
			return nil, fmt.Errorf("interrupted while waiting for run: %w", err)
		}
	}
}
