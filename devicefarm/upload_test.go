// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
	"github.com/stretchr/testify/require"
)

const testProjectArn = "arn:aws:devicefarm:us-west-2:1:project:p1"

func writeArtifact(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte("artifact-bytes"), 0o644))
	return path
}

// uploadServer accepts PUTs and records the last body and content type.
type uploadServer struct {
	*httptest.Server
	body        []byte
	contentType string
	status      int
}

func newUploadServer(status int) *uploadServer {
	s := &uploadServer{status: status}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.body, _ = io.ReadAll(r.Body)
		s.contentType = r.Header.Get("Content-Type")
		w.WriteHeader(s.status)
	}))
	return s
}

func fakeUpload(url string) *types.Upload {
	return &types.Upload{
		Arn:         aws.String("arn:aws:devicefarm:us-west-2:1:upload:p1/u1"),
		Name:        aws.String("app-release.apk"),
		Url:         aws.String(url),
		ContentType: aws.String("application/octet-stream"),
		Status:      types.UploadStatusInitialized,
	}
}

func TestUploadAppClassification(t *testing.T) {
	cases := []struct {
		name       string
		uploadType types.UploadType
	}{
		{"app-release.apk", types.UploadTypeAndroidApp},
		{"APP-RELEASE.APK", types.UploadTypeAndroidApp},
		{"MyApp.ipa", types.UploadTypeIosApp},
		{"MyApp.IPA", types.UploadTypeIosApp},
		{"MyApp.zip", types.UploadTypeIosApp},
	}
	for _, tc := range cases {
		srv := newUploadServer(http.StatusOK)
		api := &fakeAPI{
			createdUpload:  fakeUpload(srv.URL),
			uploadStatuses: []types.Upload{{Status: types.UploadStatusSucceeded}},
		}
		c := newTestClient(api)

		_, err := c.UploadApp(context.Background(), testProjectArn, writeArtifact(t, tc.name))
		require.Nil(t, err, tc.name)
		require.Equal(t, tc.uploadType, api.createUploadIn.Type, tc.name)
		srv.Close()
	}

	c := newTestClient(&fakeAPI{})
	_, err := c.UploadApp(context.Background(), testProjectArn, "some/app.msi")
	var unrec *UnrecognizedArtifactError
	require.True(t, errors.As(err, &unrec))
	require.Contains(t, err.Error(), "app.msi")
}

func TestUploadExtraDataClassification(t *testing.T) {
	srv := newUploadServer(http.StatusOK)
	defer srv.Close()
	api := &fakeAPI{
		createdUpload:  fakeUpload(srv.URL),
		uploadStatuses: []types.Upload{{Status: types.UploadStatusSucceeded}},
	}
	c := newTestClient(api)

	_, err := c.UploadExtraData(context.Background(), testProjectArn, writeArtifact(t, "fixtures.ZIP"))
	require.Nil(t, err)
	require.Equal(t, types.UploadTypeExternalData, api.createUploadIn.Type)

	_, err = c.UploadExtraData(context.Background(), testProjectArn, "fixtures.tar.gz")
	var unrec *UnrecognizedArtifactError
	require.True(t, errors.As(err, &unrec))
}

func TestUploadValidation(t *testing.T) {
	c := newTestClient(&fakeAPI{})

	_, err := c.Upload(context.Background(), testProjectArn, "", types.UploadTypeAndroidApp)
	require.ErrorIs(t, err, ErrMissingArtifactPath)

	_, err = c.Upload(context.Background(), testProjectArn, "no/such/file.apk", types.UploadTypeAndroidApp)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "no/such/file.apk")
}

func TestUploadPutsFileAndPolls(t *testing.T) {
	srv := newUploadServer(http.StatusOK)
	defer srv.Close()

	// Two non-terminal statuses then success: exactly two waits, three polls.
	api := &fakeAPI{
		createdUpload: fakeUpload(srv.URL),
		uploadStatuses: []types.Upload{
			{Status: types.UploadStatusInitialized},
			{Status: types.UploadStatusProcessing},
			{Status: types.UploadStatusSucceeded},
		},
	}
	c := newTestClient(api)

	up, err := c.Upload(context.Background(), testProjectArn, writeArtifact(t, "app.apk"), types.UploadTypeAndroidApp)
	require.Nil(t, err)
	require.Equal(t, types.UploadStatusSucceeded, up.Status)
	require.Equal(t, 3, api.getUploadCalls)
	require.Equal(t, []byte("artifact-bytes"), srv.body)
	require.Equal(t, "application/octet-stream", srv.contentType)
	require.Equal(t, "app.apk", *api.createUploadIn.Name)
	require.Equal(t, testProjectArn, *api.createUploadIn.ProjectArn)
	require.Equal(t, "application/octet-stream", *api.createUploadIn.ContentType)
}

func TestUploadFailedCarriesMetadata(t *testing.T) {
	srv := newUploadServer(http.StatusOK)
	defer srv.Close()

	api := &fakeAPI{
		createdUpload: fakeUpload(srv.URL),
		uploadStatuses: []types.Upload{
			{Status: types.UploadStatusProcessing},
			{Status: types.UploadStatusFailed, Metadata: aws.String("The test package is invalid")},
		},
	}
	c := newTestClient(api)

	_, err := c.Upload(context.Background(), testProjectArn, writeArtifact(t, "app.apk"), types.UploadTypeAndroidApp)
	var failed *UploadFailedError
	require.True(t, errors.As(err, &failed))
	require.Equal(t, "The test package is invalid", failed.Metadata)
	require.Contains(t, err.Error(), "The test package is invalid")
}

func TestUploadRejectedPut(t *testing.T) {
	srv := newUploadServer(http.StatusForbidden)
	defer srv.Close()

	api := &fakeAPI{createdUpload: fakeUpload(srv.URL)}
	c := newTestClient(api)

	_, err := c.Upload(context.Background(), testProjectArn, writeArtifact(t, "app.apk"), types.UploadTypeAndroidApp)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "non-200 response: 403")
	require.Zero(t, api.getUploadCalls, "rejected upload must not be polled")
}

func TestUploadWaitInterrupted(t *testing.T) {
	srv := newUploadServer(http.StatusOK)
	defer srv.Close()

	api := &fakeAPI{
		createdUpload:  fakeUpload(srv.URL),
		uploadStatuses: []types.Upload{{Status: types.UploadStatusProcessing}},
	}
	c := newTestClient(api)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.waitUpload(ctx, fakeUpload(srv.URL))
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, err.Error(), "interrupted while waiting for upload")
}
