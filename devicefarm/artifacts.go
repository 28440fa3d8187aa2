// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
)

// artifactCategories are all categories a run's artifacts are listed under.
var artifactCategories = []types.ArtifactCategory{
	types.ArtifactCategoryFile,
	types.ArtifactCategoryLog,
	types.ArtifactCategoryScreenshot,
}

// RunArtifacts is the outcome of collecting a run's artifacts: every written
// file, plus the local directory each job, suite, and test was mapped to,
// keyed by resource path.
type RunArtifacts struct {
	Files  []string
	Jobs   map[string]string
	Suites map[string]string
	Tests  map[string]string
}

// Jobs lists the jobs of a run.
func (c *Client) Jobs(ctx context.Context, runArn string) ([]types.Job, error) {
	out, err := c.api.ListJobs(ctx, &devicefarm.ListJobsInput{Arn: aws.String(runArn)})
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return out.Jobs, nil
}

// Suites lists the suites of a job.
func (c *Client) Suites(ctx context.Context, jobArn string) ([]types.Suite, error) {
	out, err := c.api.ListSuites(ctx, &devicefarm.ListSuitesInput{Arn: aws.String(jobArn)})
	if err != nil {
		return nil, fmt.Errorf("listing suites: %w", err)
	}
	return out.Suites, nil
}

// Tests lists the tests of a suite.
func (c *Client) Tests(ctx context.Context, suiteArn string) ([]types.Test, error) {
	out, err := c.api.ListTests(ctx, &devicefarm.ListTestsInput{Arn: aws.String(suiteArn)})
	if err != nil {
		return nil, fmt.Errorf("listing tests: %w", err)
	}
	return out.Tests, nil
}

// Artifacts lists a run's artifacts of one category.
func (c *Client) Artifacts(ctx context.Context, runArn string, category types.ArtifactCategory) ([]types.Artifact, error) {
	out, err := c.api.ListArtifacts(ctx, &devicefarm.ListArtifactsInput{
		Arn:  aws.String(runArn),
		Type: category,
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s artifacts: %w", category, err)
	}
	return out.Artifacts, nil
}

// DownloadArtifacts walks the run's jobs, suites, and tests, creates a local
// directory tree mirroring that hierarchy under dest, and downloads every
// artifact of every category into its owning test's directory as
// {name}-{id}.{extension}. A failure partway leaves the files already written
// and returns the failing step's error.
func (c *Client) DownloadArtifacts(ctx context.Context, runArn, dest string) (*RunArtifacts, error) {
	if !arn.IsARN(runArn) {
		return nil, fmt.Errorf("invalid run ARN: %q", runArn)
	}

	jobs, err := c.jobDirs(ctx, runArn, dest)
	if err != nil {
		return nil, err
	}
	suites, err := c.suiteDirs(ctx, runArn, jobs)
	if err != nil {
		return nil, err
	}
	tests, err := c.testDirs(ctx, runArn, suites)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, category := range artifactCategories {
		artifacts, err := c.Artifacts(ctx, runArn, category)
		if err != nil {
			return nil, err
		}
		for _, a := range artifacts {
			path, err := c.downloadArtifact(ctx, a, tests)
			if err != nil {
				return nil, err
			}
			files = append(files, path)
		}
	}

	return &RunArtifacts{Files: files, Jobs: jobs, Suites: suites, Tests: tests}, nil
}

// jobDirs creates one directory per job under dest. Two jobs can share a
// name, so the device OS version (or the job's own id when the device is
// unknown) is appended to keep them apart.
func (c *Client) jobDirs(ctx context.Context, runArn, dest string) (map[string]string, error) {
	jobs, err := c.Jobs(ctx, runArn)
	if err != nil {
		return nil, err
	}

	dirs := make(map[string]string, len(jobs))
	for _, job := range jobs {
		path, err := resourcePath(aws.ToString(job.Arn))
		if err != nil {
			return nil, err
		}
		_, jobID := splitResourcePath(path)

		suffix := jobID
		if job.Device != nil && aws.ToString(job.Device.Os) != "" {
			suffix = aws.ToString(job.Device.Os)
		}
		dir := filepath.Join(dest, aws.ToString(job.Name)+"-"+suffix)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating job directory: %w", err)
		}
		dirs[path] = dir
	}
	return dirs, nil
}

// suiteDirs creates one directory per suite, nested under its owning job's
// directory and named by the suite name. Each job's full ARN is rebuilt from
// the run ARN and the job's resource path.
func (c *Client) suiteDirs(ctx context.Context, runArn string, jobs map[string]string) (map[string]string, error) {
	dirs := make(map[string]string)
	for jobPath, jobDir := range jobs {
		jobArn, err := withResource(runArn, "job", jobPath)
		if err != nil {
			return nil, err
		}
		suites, err := c.Suites(ctx, jobArn)
		if err != nil {
			return nil, err
		}
		for _, suite := range suites {
			path, err := resourcePath(aws.ToString(suite.Arn))
			if err != nil {
				return nil, err
			}
			dir := filepath.Join(jobDir, aws.ToString(suite.Name))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating suite directory: %w", err)
			}
			dirs[path] = dir
		}
	}
	return dirs, nil
}

// testDirs creates one directory per test, nested under its owning suite's
// directory and named by the test name.
func (c *Client) testDirs(ctx context.Context, runArn string, suites map[string]string) (map[string]string, error) {
	dirs := make(map[string]string)
	for suitePath, suiteDir := range suites {
		suiteArn, err := withResource(runArn, "suite", suitePath)
		if err != nil {
			return nil, err
		}
		tests, err := c.Tests(ctx, suiteArn)
		if err != nil {
			return nil, err
		}
		for _, test := range tests {
			path, err := resourcePath(aws.ToString(test.Arn))
			if err != nil {
				return nil, err
			}
			dir := filepath.Join(suiteDir, aws.ToString(test.Name))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating test directory: %w", err)
			}
			dirs[path] = dir
		}
	}
	return dirs, nil
}

// downloadArtifact fetches one artifact from its pre-signed URL into the
// directory of the test its ARN belongs to, and returns the written path.
func (c *Client) downloadArtifact(ctx context.Context, artifact types.Artifact, tests map[string]string) (string, error) {
	name := aws.ToString(artifact.Name)
	path, err := resourcePath(aws.ToString(artifact.Arn))
	if err != nil {
		return "", err
	}
	testPath, artifactID := splitResourcePath(path)

	dir, ok := tests[testPath]
	if !ok {
		return "", fmt.Errorf("no test directory for artifact %s (test %s)", name, testPath)
	}

	ext := strings.TrimPrefix(aws.ToString(artifact.Extension), ".")
	target := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", name, artifactID, ext))

	c.infof("downloading artifact", "name", name, "to", target)
	if err := c.fetch(ctx, aws.ToString(artifact.Url), target); err != nil {
		return "", fmt.Errorf("downloading artifact %s: %w", name, err)
	}
	return target, nil
}

// fetch GETs url and writes the body to target.
func (c *Client) fetch(ctx context.Context, url, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 response: %d", resp.StatusCode)
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
