// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package devicefarm

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/devicefarm/types"
)

// Framework identifies a supported test framework.
type Framework string

const (
	FrameworkInstrumentation  Framework = "instrumentation"
	FrameworkCalabash         Framework = "calabash"
	FrameworkUIAutomator      Framework = "uiautomator"
	FrameworkUIAutomation     Framework = "uiautomation"
	FrameworkXCTest           Framework = "xctest"
	FrameworkXCTestUI         Framework = "xctest-ui"
	FrameworkAppiumJavaJUnit  Framework = "appium-java-junit"
	FrameworkAppiumJavaTestNG Framework = "appium-java-testng"
	FrameworkAppiumPython     Framework = "appium-python"
	FrameworkAppiumWebJUnit   Framework = "appium-web-java-junit"
	FrameworkAppiumWebTestNG  Framework = "appium-web-java-testng"
	FrameworkAppiumWebPython  Framework = "appium-web-python"
)

// frameworks maps each supported framework to the upload type of its test
// package and the test type used when scheduling a run. The mapping is total
// over the Framework constants above.
var frameworks = map[Framework]struct {
	uploadType types.UploadType
	testType   types.TestType
}{
	FrameworkInstrumentation:  {types.UploadTypeInstrumentationTestPackage, types.TestTypeInstrumentation},
	FrameworkCalabash:         {types.UploadTypeCalabashTestPackage, types.TestTypeCalabash},
	FrameworkUIAutomator:      {types.UploadTypeUiautomatorTestPackage, types.TestTypeUiautomator},
	FrameworkUIAutomation:     {types.UploadTypeUiautomationTestPackage, types.TestTypeUiautomation},
	FrameworkXCTest:           {types.UploadTypeXctestTestPackage, types.TestTypeXctest},
	FrameworkXCTestUI:         {types.UploadTypeXctestUiTestPackage, types.TestTypeXctestUi},
	FrameworkAppiumJavaJUnit:  {types.UploadTypeAppiumJavaJunitTestPackage, types.TestTypeAppiumJavaJunit},
	FrameworkAppiumJavaTestNG: {types.UploadTypeAppiumJavaTestngTestPackage, types.TestTypeAppiumJavaTestng},
	FrameworkAppiumPython:     {types.UploadTypeAppiumPythonTestPackage, types.TestTypeAppiumPython},
	FrameworkAppiumWebJUnit:   {types.UploadTypeAppiumWebJavaJunitTestPackage, types.TestTypeAppiumWebJavaJunit},
	FrameworkAppiumWebTestNG:  {types.UploadTypeAppiumWebJavaTestngTestPackage, types.TestTypeAppiumWebJavaTestng},
	FrameworkAppiumWebPython:  {types.UploadTypeAppiumWebPythonTestPackage, types.TestTypeAppiumWebPython},
}

// ParseFramework converts a user-supplied framework name into a Framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(s)
	if _, ok := frameworks[f]; !ok {
		return "", fmt.Errorf("unknown test framework: %s", s)
	}
	return f, nil
}

// Frameworks returns the names of all supported frameworks.
func Frameworks() []string {
	names := make([]string, 0, len(frameworks))
	for f := range frameworks {
		names = append(names, string(f))
	}
	return names
}

// UploadType returns the Device Farm upload type for the framework's test
// package.
func (f Framework) UploadType() (types.UploadType, error) {
	m, ok := frameworks[f]
	if !ok {
		return "", fmt.Errorf("unknown test framework: %s", f)
	}
	return m.uploadType, nil
}

// TestType returns the Device Farm test type used to schedule a run of this
// framework.
func (f Framework) TestType() (types.TestType, error) {
	m, ok := frameworks[f]
	if !ok {
		return "", fmt.Errorf("unknown test framework: %s", f)
	}
	return m.testType, nil
}

// TestSpec describes the test to run: a framework plus the local path of the
// test package to upload, and optional filter and parameters passed through
// to the service.
type TestSpec struct {
	Framework  Framework
	Package    string
	Filter     string
	Parameters map[string]string
}

// scheduleRunTest builds the service-side test descriptor, given the ARN of
// the already-uploaded test package.
func (s TestSpec) scheduleRunTest(packageArn string) (*types.ScheduleRunTest, error) {
	testType, err := s.Framework.TestType()
	if err != nil {
		return nil, err
	}
	t := &types.ScheduleRunTest{
		Type:       testType,
		Parameters: s.Parameters,
	}
	if packageArn != "" {
		t.TestPackageArn = aws.String(packageArn)
	}
	if s.Filter != "" {
		t.Filter = aws.String(s.Filter)
	}
	return t, nil
}
