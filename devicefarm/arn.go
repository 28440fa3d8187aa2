// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"fmt"
	"strings"
)

// Device Farm ARNs have exactly seven colon-separated segments:
//
//	arn:aws:devicefarm:<region>:<account>:<resource-type>:<resource-path>
//
// The resource path is itself slash-separated and encodes the containment
// hierarchy, e.g. a test ARN's path is
// <project-id>/<run-id>/<job-id>/<suite-id>/<test-id>. All splicing between
// hierarchy levels happens here so that a change in the service's ARN grammar
// breaks loudly in one place.
const arnSegments = 7

const (
	arnTypeSegment = 5
	arnPathSegment = 6
)

// resourcePath returns the slash-separated resource path of a Device Farm
// ARN (its final colon segment).
func resourcePath(resourceArn string) (string, error) {
	parts := strings.Split(resourceArn, ":")
	if len(parts) != arnSegments {
		return "", fmt.Errorf("malformed resource ARN %q: expected %d segments, got %d", resourceArn, arnSegments, len(parts))
	}
	return parts[arnPathSegment], nil
}

// withResource rebuilds baseArn with its resource type and path replaced,
// leaving every other segment untouched. It is used to derive a child
// resource's full ARN (e.g. a job ARN) from its parent run's ARN plus the
// child's resource path.
func withResource(baseArn, resourceType, path string) (string, error) {
	parts := strings.Split(baseArn, ":")
	if len(parts) != arnSegments {
		return "", fmt.Errorf("malformed resource ARN %q: expected %d segments, got %d", baseArn, arnSegments, len(parts))
	}
	parts[arnTypeSegment] = resourceType
	parts[arnPathSegment] = path
	return strings.Join(parts, ":"), nil
}

// splitResourcePath splits a resource path into the path of its owning
// resource and its own trailing id. A path with no slash has an empty parent.
func splitResourcePath(path string) (parent, leaf string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
