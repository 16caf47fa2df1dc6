package reactnative

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/podkit/internal/sdkversion"
)

func features(t *testing.T, version string) sdkversion.Features {
	t.Helper()
	v, err := sdkversion.Parse(version)
	require.NoError(t, err)
	return sdkversion.DefaultTable().Resolve(v)
}

func TestRenderDependencyIntegrationScript(t *testing.T) {
	out, err := RenderDependency(Options{ReactNativePath: "../react-native"}, features(t, "40.0.0"))
	require.NoError(t, err)
	assert.Equal(t, "\n # Install React Native and its dependencies\n"+
		" require_relative '../node_modules/react-native/scripts/react_native_pods'\n"+
		" use_react_native!(production: true)", out)
	assert.NotContains(t, out, ":subspecs")
	assert.NotContains(t, out, "pod '")
}

func TestRenderDependencyUnversionedUsesIntegrationScript(t *testing.T) {
	out, err := RenderDependency(Options{}, features(t, "UNVERSIONED"))
	require.NoError(t, err)
	assert.Contains(t, out, "react_native_pods")
}

func TestRenderDependencyAutolink(t *testing.T) {
	out, err := RenderDependency(Options{}, features(t, "37.0.0"))
	require.NoError(t, err)
	assert.Contains(t, out, "autolink-ios.rb")
	assert.True(t, strings.HasSuffix(out, " use_react_native!"))
	assert.NotContains(t, out, ":subspecs")
}

func TestRenderDependencyLegacy(t *testing.T) {
	out, err := RenderDependency(Options{ReactNativePath: "../react-native"}, features(t, "20.0.0"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\n  pod 'React',\n    :path => \"../react-native\",\n    :inhibit_warnings => true,\n    :subspecs => [\n      \"Core\",\n"))
	assert.Contains(t, out, "      \"CxxBridge\"\n    ]\n  pod 'yoga',\n    :path => \"../react-native/ReactCommon/yoga\",")
	assert.Contains(t, out, "  pod 'DoubleConversion',\n    :podspec => \"../react-native/third-party-podspecs/DoubleConversion.podspec\",\n    :inhibit_warnings => true")
	assert.Contains(t, out, "  pod 'Folly',")
	assert.Contains(t, out, "  pod 'GLog',\n    :podspec => \"../react-native/third-party-podspecs/GLog.podspec\",")
	assert.NotContains(t, out, "'glog'")
	assert.True(t, strings.HasSuffix(out, "    :inhibit_warnings => true\n"))
}

func TestRenderDependencyLegacyRenamedGlog(t *testing.T) {
	out, err := RenderDependency(Options{ReactNativePath: "rn", Subspecs: []string{"Core"}}, features(t, "30.0.0"))
	require.NoError(t, err)
	assert.Contains(t, out, "  pod 'glog',\n    :podspec => \"rn/third-party-podspecs/glog.podspec\",")
	assert.Contains(t, out, ":subspecs => [\n      \"Core\"\n    ]")
}

func TestRenderDependencyMissingPath(t *testing.T) {
	out, err := RenderDependency(Options{ReactNativePath: "  "}, features(t, "20.0.0"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredOption))
	assert.Equal(t, "", out)
}

func TestGlogPodName(t *testing.T) {
	assert.Equal(t, "GLog", GlogPodName(features(t, "25.0.0")))
	assert.Equal(t, "glog", GlogPodName(features(t, "26.0.0")))
}

func TestRenderUniversalModules(t *testing.T) {
	out, err := RenderUniversalModules([]UniversalModule{
		{PodName: "EXConstants", Path: "expo-constants/ios"},
		{PodName: "EXAppAuth", Path: "expo-app-auth/ios"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t,
		"  pod 'EXConstants',\n    :path => \"../node_modules/expo-constants/ios\",\n    :inhibit_warnings => true\n"+
			"  pod 'EXAppAuth',\n    :path => \"../node_modules/expo-app-auth/ios\",\n    :inhibit_warnings => true",
		out)

	out, err = RenderUniversalModules(nil, "x")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, err = RenderUniversalModules([]UniversalModule{{PodName: "EXFoo"}}, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredOption))
	assert.Contains(t, err.Error(), "path")
}
