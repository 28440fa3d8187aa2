// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"errors"
	"fmt"
)

// ErrMissingArtifactPath is returned when an upload is requested with an
// empty artifact path.
var ErrMissingArtifactPath = errors.New("artifact path is required")

// NotFoundError is returned by name-based lookups when no resource with an
// exactly matching name exists. Matching is case-sensitive.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Name)
}

// UnrecognizedArtifactError is returned when a file's extension does not map
// to any known Device Farm upload type.
type UnrecognizedArtifactError struct {
	Path string
}

func (e *UnrecognizedArtifactError) Error() string {
	return fmt.Sprintf("unrecognized artifact to upload: %s", e.Path)
}

// UploadFailedError is returned when Device Farm reports an upload as FAILED.
// Metadata carries the failure message supplied by the service.
type UploadFailedError struct {
	Name     string
	Metadata string
}

func (e *UploadFailedError) Error() string {
	if e.Metadata == "" {
		return fmt.Sprintf("upload %s failed", e.Name)
	}
	return fmt.Sprintf("upload %s failed: %s", e.Name, e.Metadata)
}
