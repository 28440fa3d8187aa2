// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

// Package profile loads TOML run profiles: everything about a run that is
// stable across invocations (app, test package, framework, timeout, run
// configuration), so scheduling from CI is a single flag.
package profile

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"

	"github.com/foundriesio/farmctl/devicefarm"
)

type Profile struct {
	// App is the local path of the application artifact. Empty for runs that
	// need no app (e.g. web tests).
	App string `toml:"app"`
	// ExtraData is the local path of a .zip pushed onto the devices.
	ExtraData string `toml:"extra_data"`
	// JobTimeoutMinutes overrides the per-job timeout. Zero keeps the
	// service default.
	JobTimeoutMinutes int32  `toml:"job_timeout_minutes"`
	Locale            string `toml:"locale"`
	// BillingMethod is "metered" or "unmetered". Empty leaves the choice to
	// the service.
	BillingMethod string `toml:"billing_method"`

	Test Test `toml:"test"`
}

type Test struct {
	Framework  string            `toml:"framework"`
	Package    string            `toml:"package"`
	Filter     string            `toml:"filter"`
	Parameters map[string]string `toml:"parameters"`
}

// Load reads and validates a profile file.
func Load(path string) (*Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if _, err := p.TestSpec(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	if _, err := p.billingMethod(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

// TestSpec converts the profile's test section into the library's test
// descriptor.
func (p *Profile) TestSpec() (devicefarm.TestSpec, error) {
	framework, err := devicefarm.ParseFramework(p.Test.Framework)
	if err != nil {
		return devicefarm.TestSpec{}, err
	}
	return devicefarm.TestSpec{
		Framework:  framework,
		Package:    p.Test.Package,
		Filter:     p.Test.Filter,
		Parameters: p.Test.Parameters,
	}, nil
}

func (p *Profile) billingMethod() (types.BillingMethod, error) {
	switch strings.ToLower(p.BillingMethod) {
	case "":
		return "", nil
	case "metered":
		return types.BillingMethodMetered, nil
	case "unmetered":
		return types.BillingMethodUnmetered, nil
	default:
		return "", fmt.Errorf("unknown billing method: %s", p.BillingMethod)
	}
}

// RunConfiguration builds the run configuration to attach when scheduling,
// folding in the ARN of the already-uploaded extra-data package. It returns
// nil when the profile sets nothing, so the schedule request stays minimal.
func (p *Profile) RunConfiguration(extraDataArn string) *types.ScheduleRunConfiguration {
	cfg := &types.ScheduleRunConfiguration{}
	attach := false

	if extraDataArn != "" {
		cfg.ExtraDataPackageArn = aws.String(extraDataArn)
		attach = true
	}
	if p.Locale != "" {
		cfg.Locale = aws.String(p.Locale)
		attach = true
	}
	if method, err := p.billingMethod(); err == nil && method != "" {
		cfg.BillingMethod = method
		attach = true
	}

	if !attach {
		return nil
	}
	return cfg
}
