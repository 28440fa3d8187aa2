// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
	"github.com/stretchr/testify/require"
)

const (
	testAccount  = "arn:aws:devicefarm:us-west-2:123456789012"
	runPath      = "proj-1234/run-5678"
	job1Path     = runPath + "/job-1"
	job2Path     = runPath + "/job-2"
	job3Path     = runPath + "/job-3"
	suite1Path   = job1Path + "/suite-1"
	test1Path    = suite1Path + "/test-1"
	artifact1Arn = testAccount + ":artifact:" + test1Path + "/artifact-9"
)

func artifactFixture(srvURL string) *fakeAPI {
	osTen := &types.Device{Os: aws.String("10.0")}
	osEleven := &types.Device{Os: aws.String("11.0")}
	return &fakeAPI{
		jobs: []types.Job{
			{Arn: aws.String(testAccount + ":job:" + job1Path), Name: aws.String("Suite A"), Device: osTen},
			{Arn: aws.String(testAccount + ":job:" + job2Path), Name: aws.String("Suite A"), Device: osEleven},
			{Arn: aws.String(testAccount + ":job:" + job3Path), Name: aws.String("Headless")},
		},
		suitesByJob: map[string][]types.Suite{
			testAccount + ":job:" + job1Path: {
				{Arn: aws.String(testAccount + ":suite:" + suite1Path), Name: aws.String("LoginSuite")},
			},
		},
		testsBySuite: map[string][]types.Test{
			testAccount + ":suite:" + suite1Path: {
				{Arn: aws.String(testAccount + ":test:" + test1Path), Name: aws.String("testLogin")},
			},
		},
		artifacts: map[types.ArtifactCategory][]types.Artifact{
			types.ArtifactCategoryLog: {
				{
					Arn:       aws.String(artifact1Arn),
					Name:      aws.String("Logcat"),
					Extension: aws.String(".logcat"),
					Url:       aws.String(srvURL + "/logcat"),
				},
			},
		},
	}
}

func TestDownloadArtifacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("log contents"))
	}))
	defer srv.Close()

	api := artifactFixture(srv.URL)
	c := newTestClient(api)
	dest := t.TempDir()

	result, err := c.DownloadArtifacts(context.Background(), testRunArn, dest)
	require.Nil(t, err)

	// Duplicate job names become distinct via the device OS version; a job
	// with no device falls back to its own id.
	require.Equal(t, filepath.Join(dest, "Suite A-10.0"), result.Jobs[job1Path])
	require.Equal(t, filepath.Join(dest, "Suite A-11.0"), result.Jobs[job2Path])
	require.Equal(t, filepath.Join(dest, "Headless-job-3"), result.Jobs[job3Path])

	require.Equal(t, filepath.Join(dest, "Suite A-10.0", "LoginSuite"), result.Suites[suite1Path])
	require.Equal(t, filepath.Join(dest, "Suite A-10.0", "LoginSuite", "testLogin"), result.Tests[test1Path])

	// Suites were listed against job ARNs rebuilt from the run ARN.
	require.Contains(t, api.listSuitesCalls, testAccount+":job:"+job1Path)
	require.Contains(t, api.listTestsCalls, testAccount+":suite:"+suite1Path)

	// The artifact lands in its test's directory, named {name}-{id}.{ext}
	// with the extension's leading dot stripped.
	wantFile := filepath.Join(dest, "Suite A-10.0", "LoginSuite", "testLogin", "Logcat-artifact-9.logcat")
	require.Equal(t, []string{wantFile}, result.Files)
	data, err := os.ReadFile(wantFile)
	require.Nil(t, err)
	require.Equal(t, "log contents", string(data))

	// Every mapped directory exists on disk.
	for _, dir := range result.Jobs {
		require.DirExists(t, dir)
	}
	for _, dir := range result.Suites {
		require.DirExists(t, dir)
	}
	for _, dir := range result.Tests {
		require.DirExists(t, dir)
	}
}

func TestDownloadArtifactsRejectsBadArn(t *testing.T) {
	c := newTestClient(&fakeAPI{})
	_, err := c.DownloadArtifacts(context.Background(), "proj-1234/run-5678", t.TempDir())
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "invalid run ARN")
}

func TestDownloadArtifactsUnknownTest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	api := artifactFixture(srv.URL)
	// Artifact owned by a test that was never listed.
	api.artifacts[types.ArtifactCategoryLog] = []types.Artifact{{
		Arn:       aws.String(testAccount + ":artifact:" + suite1Path + "/test-99/artifact-1"),
		Name:      aws.String("Video"),
		Extension: aws.String("mp4"),
		Url:       aws.String(srv.URL),
	}}
	c := newTestClient(api)

	_, err := c.DownloadArtifacts(context.Background(), testRunArn, t.TempDir())
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "no test directory for artifact Video")
}

func TestDownloadArtifactFailedFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	api := artifactFixture(srv.URL)
	c := newTestClient(api)

	_, err := c.DownloadArtifacts(context.Background(), testRunArn, t.TempDir())
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "downloading artifact Logcat")
}
