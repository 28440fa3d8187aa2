// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/devicefarm"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
)

// fakeAPI is a canned-response implementation of API. Response slices that
// hold several elements are consumed one call at a time, so tests can script
// status progressions.
type fakeAPI struct {
	projects    []types.Project
	pools       []types.DevicePool
	devices     []types.Device
	settings    *types.AccountSettings
	settingsErr error

	createdUpload   *types.Upload
	createUploadIn  *devicefarm.CreateUploadInput
	uploadStatuses  []types.Upload
	getUploadCalls  int
	scheduledRun    *types.Run
	scheduleRunIn   *devicefarm.ScheduleRunInput
	runStatuses     []types.Run
	getRunCalls     int
	jobs            []types.Job
	suitesByJob     map[string][]types.Suite
	testsBySuite    map[string][]types.Test
	artifacts       map[types.ArtifactCategory][]types.Artifact
	listSuitesCalls []string
	listTestsCalls  []string
}

func (f *fakeAPI) ListProjects(ctx context.Context, in *devicefarm.ListProjectsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListProjectsOutput, error) {
	return &devicefarm.ListProjectsOutput{Projects: f.projects}, nil
}

func (f *fakeAPI) ListDevicePools(ctx context.Context, in *devicefarm.ListDevicePoolsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListDevicePoolsOutput, error) {
	return &devicefarm.ListDevicePoolsOutput{DevicePools: f.pools}, nil
}

func (f *fakeAPI) ListDevices(ctx context.Context, in *devicefarm.ListDevicesInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListDevicesOutput, error) {
	return &devicefarm.ListDevicesOutput{Devices: f.devices}, nil
}

func (f *fakeAPI) GetAccountSettings(ctx context.Context, in *devicefarm.GetAccountSettingsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.GetAccountSettingsOutput, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return &devicefarm.GetAccountSettingsOutput{AccountSettings: f.settings}, nil
}

func (f *fakeAPI) CreateUpload(ctx context.Context, in *devicefarm.CreateUploadInput, optFns ...func(*devicefarm.Options)) (*devicefarm.CreateUploadOutput, error) {
	f.createUploadIn = in
	return &devicefarm.CreateUploadOutput{Upload: f.createdUpload}, nil
}

func (f *fakeAPI) GetUpload(ctx context.Context, in *devicefarm.GetUploadInput, optFns ...func(*devicefarm.Options)) (*devicefarm.GetUploadOutput, error) {
	i := f.getUploadCalls
	if i >= len(f.uploadStatuses) {
		i = len(f.uploadStatuses) - 1
	}
	f.getUploadCalls++
	u := f.uploadStatuses[i]
	return &devicefarm.GetUploadOutput{Upload: &u}, nil
}

func (f *fakeAPI) ScheduleRun(ctx context.Context, in *devicefarm.ScheduleRunInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ScheduleRunOutput, error) {
	f.scheduleRunIn = in
	return &devicefarm.ScheduleRunOutput{Run: f.scheduledRun}, nil
}

func (f *fakeAPI) GetRun(ctx context.Context, in *devicefarm.GetRunInput, optFns ...func(*devicefarm.Options)) (*devicefarm.GetRunOutput, error) {
	i := f.getRunCalls
	if i >= len(f.runStatuses) {
		i = len(f.runStatuses) - 1
	}
	f.getRunCalls++
	r := f.runStatuses[i]
	return &devicefarm.GetRunOutput{Run: &r}, nil
}

func (f *fakeAPI) ListJobs(ctx context.Context, in *devicefarm.ListJobsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListJobsOutput, error) {
	return &devicefarm.ListJobsOutput{Jobs: f.jobs}, nil
}

func (f *fakeAPI) ListSuites(ctx context.Context, in *devicefarm.ListSuitesInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListSuitesOutput, error) {
	arn := *in.Arn
	f.listSuitesCalls = append(f.listSuitesCalls, arn)
	return &devicefarm.ListSuitesOutput{Suites: f.suitesByJob[arn]}, nil
}

func (f *fakeAPI) ListTests(ctx context.Context, in *devicefarm.ListTestsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListTestsOutput, error) {
	arn := *in.Arn
	f.listTestsCalls = append(f.listTestsCalls, arn)
	return &devicefarm.ListTestsOutput{Tests: f.testsBySuite[arn]}, nil
}

func (f *fakeAPI) ListArtifacts(ctx context.Context, in *devicefarm.ListArtifactsInput, optFns ...func(*devicefarm.Options)) (*devicefarm.ListArtifactsOutput, error) {
	return &devicefarm.ListArtifactsOutput{Artifacts: f.artifacts[in.Type]}, nil
}

// newTestClient wires a client to the fake with a poll interval suitable for
// tests.
func newTestClient(api API) *Client {
	return &Client{api: api, http: http.DefaultClient, pollInterval: time.Millisecond}
}
