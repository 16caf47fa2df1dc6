// Package reactnative renders the unversioned React Native dependency block of a
// Podfile and its bundled third-party libraries.
package reactnative

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/podspec"
	"github.com/conn-castle/podkit/internal/sdkversion"
)

// ErrMissingRequiredOption reports a renderer input (usually a local path) that was not supplied.
var ErrMissingRequiredOption = errors.New(messages.ReactNativeMissingOption)

const (
	integrationScriptDirective = `
# Install React Native and its dependencies
require_relative '../node_modules/react-native/scripts/react_native_pods'
use_react_native!(production: true)`

	autolinkScriptDirective = `
# Install React Native and its dependencies
require_relative '../node_modules/react-native/scripts/autolink-ios.rb'
use_react_native!`

	thirdPartyPodspecDir = "third-party-podspecs"
)

// DefaultSubspecs are the React subspecs wired by hand before the autolink script existed.
var DefaultSubspecs = []string{
	"Core",
	"ART",
	"RCTActionSheet",
	"RCTAnimation",
	"RCTCameraRoll",
	"RCTGeolocation",
	"RCTImage",
	"RCTNetwork",
	"RCTText",
	"RCTVibration",
	"RCTWebSocket",
	"DevSupport",
	"CxxBridge",
}

// Options configures the unversioned dependency render.
type Options struct {
	// ReactNativePath is the local path to react-native, relative to the Podfile.
	ReactNativePath string
	// Subspecs overrides DefaultSubspecs when non-empty.
	Subspecs []string
}

// RenderDependency returns the PODFILE_UNVERSIONED_RN_DEPENDENCY block for features.
//
// With the integration script the block only requires react_native_pods; with the
// autolink script it requires autolink-ios.rb. Otherwise React, yoga and the
// DoubleConversion, Folly and glog podspecs are declared against ReactNativePath.
func RenderDependency(opts Options, features sdkversion.Features) (string, error) {
	if features.Has(sdkversion.BehaviorIntegrationScript) {
		return podspec.Indent(integrationScriptDirective, 1), nil
	}
	if features.Has(sdkversion.BehaviorAutolinkScript) {
		return podspec.Indent(autolinkScriptDirective, 1), nil
	}
	return renderLegacy(opts, features)
}

// GlogPodName returns the logging library pod name, which was lowercased at a threshold.
func GlogPodName(features sdkversion.Features) string {
	if features.Has(sdkversion.BehaviorLowercaseGlog) {
		return "glog"
	}
	return "GLog"
}

func renderLegacy(opts Options, features sdkversion.Features) (string, error) {
	rnPath := strings.TrimSpace(opts.ReactNativePath)
	if rnPath == "" {
		return "", fmt.Errorf("%w: "+messages.ReactNativePathRequiredFmt, ErrMissingRequiredOption, "React")
	}
	subspecs := opts.Subspecs
	if len(subspecs) == 0 {
		subspecs = DefaultSubspecs
	}
	glog := GlogPodName(features)

	pods := []struct {
		name  string
		attrs podspec.Attributes
	}{
		{"React", podspec.Attributes{
			{Key: "path", Value: rnPath},
			{Key: "inhibit_warnings", Value: true},
			{Key: "subspecs", Value: subspecs},
		}},
		{"yoga", podspec.Attributes{
			{Key: "path", Value: path.Join(rnPath, "ReactCommon", "yoga")},
			{Key: "inhibit_warnings", Value: true},
		}},
		{"DoubleConversion", thirdPartyAttributes(rnPath, "DoubleConversion")},
		{"Folly", thirdPartyAttributes(rnPath, "Folly")},
		{glog, thirdPartyAttributes(rnPath, glog)},
	}

	blocks := make([]string, 0, len(pods))
	for _, pod := range pods {
		block, err := podspec.RenderPod(pod.name, pod.attrs, podspec.DialectPodfile)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return podspec.Indent("\n"+strings.Join(blocks, "\n")+"\n", 2), nil
}

func thirdPartyAttributes(rnPath string, podName string) podspec.Attributes {
	return podspec.Attributes{
		{Key: "podspec", Value: path.Join(rnPath, thirdPartyPodspecDir, podName+".podspec")},
		{Key: "inhibit_warnings", Value: true},
	}
}
