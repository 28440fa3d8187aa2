// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"
)

// DefaultRegion is the only region Device Farm is offered in.
const DefaultRegion = "us-west-2"

// DefaultPollInterval is how often upload and run status is re-checked while
// waiting for a terminal state.
const DefaultPollInterval = 5 * time.Second

// ClientOptions configure authentication and behavior of a Client.
type ClientOptions struct {
	// Creds is an explicit credentials provider. If nil, the SDK's default
	// credentials chain is used.
	Creds aws.CredentialsProvider
	// Role is an IAM role ARN. When set, temporary credentials are obtained
	// from STS by assuming the role before any Device Farm call is made, and
	// client construction fails if the exchange fails.
	Role string
	// Region defaults to DefaultRegion when empty.
	Region string
	// HTTPClient is used both for SDK calls and for the raw transfers to the
	// pre-signed artifact URLs. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// PollInterval defaults to DefaultPollInterval when zero.
	PollInterval time.Duration
	// Logger receives human-readable progress lines. A nil logger disables
	// progress output.
	Logger *slog.Logger
}

// NewClientOptions returns empty options suitable for chaining setters.
func NewClientOptions() *ClientOptions {
	return &ClientOptions{}
}

// SetCreds sets an explicit credentials provider.
func (o *ClientOptions) SetCreds(creds aws.CredentialsProvider) *ClientOptions {
	o.Creds = creds
	return o
}

// SetRole sets the IAM role to assume.
func (o *ClientOptions) SetRole(role string) *ClientOptions {
	o.Role = role
	return o
}

// SetRegion sets the region API calls are made against.
func (o *ClientOptions) SetRegion(region string) *ClientOptions {
	o.Region = region
	return o
}

// SetHTTPClient sets the HTTP client used for SDK calls and raw transfers.
func (o *ClientOptions) SetHTTPClient(hc *http.Client) *ClientOptions {
	o.HTTPClient = hc
	return o
}

// SetPollInterval sets the status polling interval.
func (o *ClientOptions) SetPollInterval(d time.Duration) *ClientOptions {
	o.PollInterval = d
	return o
}

// SetLogger sets the progress logger.
func (o *ClientOptions) SetLogger(log *slog.Logger) *ClientOptions {
	o.Logger = log
	return o
}

// config resolves the AWS configuration, wiring in the assume-role provider
// when a role is configured. The session name carries a random suffix so
// concurrent invocations are distinguishable in CloudTrail.
func (o *ClientOptions) config(ctx context.Context) (aws.Config, error) {
	region := o.Region
	if region == "" {
		region = DefaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if o.Creds != nil {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(o.Creds))
	}
	if o.HTTPClient != nil {
		loadOpts = append(loadOpts, awsconfig.WithHTTPClient(o.HTTPClient))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}

	if o.Role != "" {
		provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), o.Role, func(aro *stscreds.AssumeRoleOptions) {
			aro.RoleSessionName = "farmctl-" + uuid.NewString()[:8]
		})
		cfg.Credentials = aws.NewCredentialsCache(provider)
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return aws.Config{}, fmt.Errorf("assuming role %s: %w", o.Role, err)
		}
	}

	return cfg, nil
}
