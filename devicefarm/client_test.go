// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
	"github.com/stretchr/testify/require"
)

func TestProjectLookup(t *testing.T) {
	api := &fakeAPI{projects: []types.Project{
		{Name: aws.String("android-nightly"), Arn: aws.String("arn:aws:devicefarm:us-west-2:1:project:p1")},
		{Name: aws.String("Android-Nightly"), Arn: aws.String("arn:aws:devicefarm:us-west-2:1:project:p2")},
	}}
	c := newTestClient(api)

	p, err := c.Project(context.Background(), "Android-Nightly")
	require.Nil(t, err)
	require.Equal(t, "arn:aws:devicefarm:us-west-2:1:project:p2", *p.Arn)

	// Case-insensitive and substring matches do not count.
	_, err = c.Project(context.Background(), "android")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "android", nf.Name)
	require.Equal(t, "project 'android' not found", err.Error())
}

func TestDevicePoolLookup(t *testing.T) {
	api := &fakeAPI{pools: []types.DevicePool{
		{Name: aws.String("Top Devices"), Arn: aws.String("arn:aws:devicefarm:us-west-2:1:devicepool:p/d1")},
	}}
	c := newTestClient(api)

	pool, err := c.DevicePool(context.Background(), "arn:aws:devicefarm:us-west-2:1:project:p", "Top Devices")
	require.Nil(t, err)
	require.Equal(t, "Top Devices", *pool.Name)

	_, err = c.DevicePool(context.Background(), "arn:aws:devicefarm:us-west-2:1:project:p", "top devices")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "device pool", nf.Resource)
}

func TestAccountSettingsNotFoundIsNotAnError(t *testing.T) {
	api := &fakeAPI{settingsErr: &types.NotFoundException{Message: aws.String("no settings")}}
	c := newTestClient(api)

	settings, err := c.AccountSettings(context.Background())
	require.Nil(t, err)
	require.Nil(t, settings)

	count, err := c.UnmeteredDeviceCount(context.Background(), types.DevicePlatformAndroid)
	require.Nil(t, err)
	require.Zero(t, count)
}

func TestUnmeteredDeviceCount(t *testing.T) {
	api := &fakeAPI{settings: &types.AccountSettings{
		UnmeteredDevices: map[string]int32{"ANDROID": 3, "IOS": 1},
	}}
	c := newTestClient(api)

	n, err := c.UnmeteredDeviceCount(context.Background(), types.DevicePlatformAndroid)
	require.Nil(t, err)
	require.EqualValues(t, 3, n)

	n, err = c.UnmeteredDeviceCount(context.Background(), types.DevicePlatformIos)
	require.Nil(t, err)
	require.EqualValues(t, 1, n)
}

func TestPlatformForApp(t *testing.T) {
	p, err := PlatformForApp("build/app-release.APK")
	require.Nil(t, err)
	require.Equal(t, types.DevicePlatformAndroid, p)

	p, err = PlatformForApp("MyApp.ipa")
	require.Nil(t, err)
	require.Equal(t, types.DevicePlatformIos, p)

	_, err = PlatformForApp("app.exe")
	var unrec *UnrecognizedArtifactError
	require.True(t, errors.As(err, &unrec))
}
