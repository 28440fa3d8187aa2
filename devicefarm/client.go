// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

// Package devicefarm wraps the AWS Device Farm API with the small set of
// operations needed to drive a remote test run end to end: discover projects
// and device pools, upload app and test artifacts, schedule runs, and collect
// result artifacts into a local directory tree.
package devicefarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
)

// API is the slice of the Device Farm service API the client uses. It is
// satisfied by *devicefarm.Client.
type API interface {
	ListProjects(ctx context.Context, in *devicefarm.ListProjectsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListProjectsOutput, error)
	ListDevicePools(ctx context.Context, in *devicefarm.ListDevicePoolsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListDevicePoolsOutput, error)
	ListDevices(ctx context.Context, in *devicefarm.ListDevicesInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListDevicesOutput, error)
	GetAccountSettings(ctx context.Context, in *devicefarm.GetAccountSettingsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.GetAccountSettingsOutput, error)
	CreateUpload(ctx context.Context, in *devicefarm.CreateUploadInput, optFns ...func(*devicefarm.Options)) (*devicefarm.CreateUploadOutput, error)
	GetUpload(ctx context.Context, in *devicefarm.GetUploadInput, optFns ...func(*devicefarm.Options)) (*devicefarm.GetUploadOutput, error)
	ScheduleRun(ctx context.Context, in *devicefarm.ScheduleRunInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ScheduleRunOutput, error)
	GetRun(ctx context.Context, in *devicefarm.GetRunInput, optFns ...func(*devicefarm.Options)) (*devicefarm.GetRunOutput, error)
	ListJobs(ctx context.Context, in *devicefarm.ListJobsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListJobsOutput, error)
	ListSuites(ctx context.Context, in *devicefarm.ListSuitesInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListSuitesOutput, error)
	ListTests(ctx context.Context, in *devicefarm.ListTestsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListTestsOutput, error)
	ListArtifacts(ctx context.Context, in *devicefarm.ListArtifactsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListArtifactsOutput, error)
}

// Client is a thin wrapper over the Device Farm API. It holds only its API
// handle, HTTP client for raw transfers, and an optional progress logger, all
// fixed at construction. Operations are synchronous and perform no retries;
// errors are surfaced once, immediately, to the caller.
type Client struct {
	api          API
	http         *http.Client
	log          *slog.Logger
	pollInterval time.Duration
}

// NewClient builds a Device Farm client from the given options. When a role
// is configured, the STS exchange happens here and a failed exchange fails
// construction.
func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	cfg, err := opts.config(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up client: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Client{
		api:          devicefarm.NewFromConfig(cfg),
		http:         hc,
		log:          opts.Logger,
		pollInterval: interval,
	}, nil
}

func (c *Client) infof(msg string, args ...any) {
	if c.log != nil {
		c.log.Info(msg, args...)
	}
}

// Projects lists all projects visible to the account.
func (c *Client) Projects(ctx context.Context) ([]types.Project, error) {
	out, err := c.api.ListProjects(ctx, &devicefarm.ListProjectsInput{})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return out.Projects, nil
}

// Project returns the project whose name exactly equals name.
func (c *Client) Project(ctx context.Context, name string) (*types.Project, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if aws.ToString(p.Name) == name {
			return &p, nil
		}
	}
	return nil, &NotFoundError{Resource: "project", Name: name}
}

// DevicePools lists the device pools of a project.
func (c *Client) DevicePools(ctx context.Context, projectArn string) ([]types.DevicePool, error) {
	out, err := c.api.ListDevicePools(ctx, &devicefarm.ListDevicePoolsInput{Arn: aws.String(projectArn)})
	if err != nil {
		return nil, fmt.Errorf("listing device pools: %w", err)
	}
	return out.DevicePools, nil
}

// DevicePool returns the project's device pool whose name exactly equals
// name.
func (c *Client) DevicePool(ctx context.Context, projectArn, name string) (*types.DevicePool, error) {
	pools, err := c.DevicePools(ctx, projectArn)
	if err != nil {
		return nil, err
	}
	for _, p := range pools {
		if aws.ToString(p.Name) == name {
			return &p, nil
		}
	}
	return nil, &NotFoundError{Resource: "device pool", Name: name}
}

// Devices lists the devices available to a project.
func (c *Client) Devices(ctx context.Context, projectArn string) ([]types.Device, error) {
	out, err := c.api.ListDevices(ctx, &devicefarm.ListDevicesInput{Arn: aws.String(projectArn)})
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	return out.Devices, nil
}

// AccountSettings returns the account's settings. Some accounts have none;
// that is a valid state and is reported as a nil result, not an error.
func (c *Client) AccountSettings(ctx context.Context) (*types.AccountSettings, error) {
	out, err := c.api.GetAccountSettings(ctx, &devicefarm.GetAccountSettingsInput{})
	if err != nil {
		var nf *types.NotFoundException
		if errors.As(err, &nf) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting account settings: %w", err)
	}
	return out.AccountSettings, nil
}

// UnmeteredDeviceCount returns how many unmetered devices the account has for
// the given platform. Accounts without settings have zero.
func (c *Client) UnmeteredDeviceCount(ctx context.Context, platform types.DevicePlatform) (int32, error) {
	settings, err := c.AccountSettings(ctx)
	if err != nil {
		return 0, err
	}
	if settings == nil {
		return 0, nil
	}
	return settings.UnmeteredDevices[string(platform)], nil
}

// PlatformForApp reports which device platform an app artifact targets, based
// on its file extension.
func PlatformForApp(path string) (types.DevicePlatform, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".apk":
		return types.DevicePlatformAndroid, nil
	case ".ipa":
		return types.DevicePlatformIos, nil
	default:
		return "", &UnrecognizedArtifactError{Path: path}
	}
}
