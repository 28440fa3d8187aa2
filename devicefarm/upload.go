// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
)

// UploadApp uploads an application artifact, classifying it from its file
// extension: .apk is an Android app, .ipa or .zip an iOS app. The call blocks
// until Device Farm reports the upload processed.
func (c *Client) UploadApp(ctx context.Context, projectArn, path string) (*types.Upload, error) {
	var uploadType types.UploadType
	switch strings.ToLower(filepath.Ext(path)) {
	case ".apk":
		uploadType = types.UploadTypeAndroidApp
	case ".ipa", ".zip":
		uploadType = types.UploadTypeIosApp
	default:
		return nil, &UnrecognizedArtifactError{Path: path}
	}
	return c.Upload(ctx, projectArn, path, uploadType)
}

// UploadExtraData uploads an extra-data package, which must be a .zip.
func (c *Client) UploadExtraData(ctx context.Context, projectArn, path string) (*types.Upload, error) {
	if strings.ToLower(filepath.Ext(path)) != ".zip" {
		return nil, &UnrecognizedArtifactError{Path: path}
	}
	return c.Upload(ctx, projectArn, path, types.UploadTypeExternalData)
}

// UploadTest uploads the test package of the given spec, using the upload
// type its framework maps to.
func (c *Client) UploadTest(ctx context.Context, projectArn string, spec TestSpec) (*types.Upload, error) {
	uploadType, err := spec.Framework.UploadType()
	if err != nil {
		return nil, err
	}
	return c.Upload(ctx, projectArn, spec.Package, uploadType)
}

// Upload transfers a local file to Device Farm as the given upload type:
// create the upload slot, PUT the raw bytes to the returned pre-signed URL,
// then poll until the service reports the upload SUCCEEDED or FAILED. The
// wait is unbounded; bound it through ctx.
func (c *Client) Upload(ctx context.Context, projectArn, path string, uploadType types.UploadType) (*types.Upload, error) {
	if path == "" {
		return nil, ErrMissingArtifactPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("artifact file %s not found: %w", path, err)
	}

	name := filepath.Base(path)
	out, err := c.api.CreateUpload(ctx, &devicefarm.CreateUploadInput{
		Name:        aws.String(name),
		ProjectArn:  aws.String(projectArn),
		ContentType: aws.String("application/octet-stream"),
		Type:        uploadType,
	})
	if err != nil {
		return nil, fmt.Errorf("creating upload %s: %w", name, err)
	}
	upload := out.Upload

	c.infof("uploading to S3", "name", name, "type", uploadType)
	if err := c.putFile(ctx, upload, path); err != nil {
		return nil, err
	}

	return c.waitUpload(ctx, upload)
}

// GetUpload fetches the current state of an upload.
func (c *Client) GetUpload(ctx context.Context, uploadArn string) (*types.Upload, error) {
	out, err := c.api.GetUpload(ctx, &devicefarm.GetUploadInput{Arn: aws.String(uploadArn)})
	if err != nil {
		return nil, fmt.Errorf("getting upload: %w", err)
	}
	return out.Upload, nil
}

// putFile PUTs the file's raw bytes to the upload's pre-signed URL, with the
// Content-Type the create call handed back.
func (c *Client) putFile(ctx context.Context, upload *types.Upload, path string) error {
	name := aws.ToString(upload.Name)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("opening artifact %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, aws.ToString(upload.Url), f)
	if err != nil {
		return fmt.Errorf("building upload request for %s: %w", name, err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", aws.ToString(upload.ContentType))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload %s returned non-200 response: %d", name, resp.StatusCode)
	}
	return nil
}

// waitUpload polls the upload status at the client's poll interval until it
// reaches a terminal state. Context cancellation interrupts the wait and is
// returned as an error, never swallowed.
func (c *Client) waitUpload(ctx context.Context, upload *types.Upload) (*types.Upload, error) {
	name := aws.ToString(upload.Name)
	for {
		current, err := c.GetUpload(ctx, aws.ToString(upload.Arn))
		if err != nil {
			return nil, err
		}

		switch current.Status {
		case types.UploadStatusSucceeded:
			c.infof("upload succeeded", "name", name)
			return current, nil
		case types.UploadStatusFailed:
			return nil, &UploadFailedError{Name: name, Metadata: aws.ToString(current.Metadata)}
		}

		c.infof("waiting for upload to be ready", "name", name, "status", current.Status)
		if err := sleep(ctx, c.pollInterval); err != nil {
			return nil, fmt.Errorf("interrupted while waiting for upload %s: %w", name, err)
		}
	}
}

// sleep pauses for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
