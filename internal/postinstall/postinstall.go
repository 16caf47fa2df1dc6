// Package postinstall renders the Podfile post_install snippets that adjust
// build settings of detached projects.
package postinstall

import (
	"fmt"
	"strings"

	"github.com/conn-castle/podkit/internal/sdkversion"
)

const (
	// DefaultCorePodName is the pod whose targets receive the detached macros.
	DefaultCorePodName = "ExpoKit"
	// BranchPodName is the advertising-attribution pod that gets the IDFA exclusion macro.
	BranchPodName = "Branch"

	preprocessorDefs = "config.build_settings['GCC_PREPROCESSOR_DEFINITIONS']"
	frameworkPaths   = "config.build_settings['FRAMEWORK_SEARCH_PATHS']"
	baseDepth        = 3
)

// Options configures the detached postinstall render.
type Options struct {
	// CorePodName defaults to DefaultCorePodName.
	CorePodName string
	// IsServiceContext adds the EX_DETACHED_SERVICE macro.
	IsServiceContext bool
}

// Accessors are the Ruby expressions for the current pod name and target inside
// an installer hook. Both come from one API generation; they are never mixed.
type Accessors struct {
	PodName string
	Target  string
}

// AccessorsFor picks the installer hook API for features.
func AccessorsFor(features sdkversion.Features) Accessors {
	if features.Has(sdkversion.BehaviorInstallerResultAPI) {
		return Accessors{PodName: "pod_name", Target: "target_installation_result"}
	}
	return Accessors{PodName: "target.pod_name", Target: "target"}
}

// script accumulates Ruby lines at two-space nesting levels.
type script struct {
	lines []string
}

func (s *script) line(depth int, text string) {
	s.lines = append(s.lines, strings.Repeat("  ", depth)+text)
}

func (s *script) blank() {
	s.lines = append(s.lines, "")
}

func (s *script) String() string {
	return "\n" + strings.Join(s.lines, "\n") + "\n"
}

// targetBlock emits `if <pod> == '<name>'` around a build_configurations loop
// whose body is produced by body at the loop's inner depth.
func (s *script) targetBlock(acc Accessors, podName string, body func(depth int)) {
	s.line(baseDepth, fmt.Sprintf("if %s == '%s'", acc.PodName, podName))
	s.line(baseDepth+1, acc.Target+".native_target.build_configurations.each do |config|")
	s.line(baseDepth+2, preprocessorDefs+" ||= ['$(inherited)']")
	body(baseDepth + 2)
	s.line(baseDepth+1, "end")
	s.line(baseDepth, "end")
}

func (s *script) macro(depth int, name string) {
	s.line(depth, fmt.Sprintf("%s << '%s'", preprocessorDefs, name))
}

// RenderDetached returns the postinstall snippet for detached projects.
//
// Targets of the core pod get EX_DETACHED, optionally EX_DETACHED_SERVICE, and the
// Google Maps macros. Before the installer result API the GoogleMaps framework
// search paths are added by hand. When IDFA exclusion is enabled a second block
// defines BRANCH_EXCLUDE_IDFA_CODE for the Branch pod.
func RenderDetached(features sdkversion.Features, opts Options) string {
	corePod := opts.CorePodName
	if strings.TrimSpace(corePod) == "" {
		corePod = DefaultCorePodName
	}
	acc := AccessorsFor(features)
	legacySearchPaths := !features.Has(sdkversion.BehaviorInstallerResultAPI)

	var s script
	s.targetBlock(acc, corePod, func(depth int) {
		s.macro(depth, "EX_DETACHED=1")
		if opts.IsServiceContext {
			s.macro(depth, "EX_DETACHED_SERVICE=1")
		}
		s.line(depth, "# Enable Google Maps support")
		s.macro(depth, "HAVE_GOOGLE_MAPS=1")
		s.macro(depth, "HAVE_GOOGLE_MAPS_UTILS=1")
		if legacySearchPaths {
			s.line(depth, "# Needed for GoogleMaps 2.x")
			s.line(depth, frameworkPaths+" ||= []")
			s.line(depth, frameworkPaths+" << '${PODS_ROOT}/GoogleMaps/Base/Frameworks'")
			s.line(depth, frameworkPaths+" << '${PODS_ROOT}/GoogleMaps/Maps/Frameworks'")
		}
	})

	if features.Has(sdkversion.BehaviorExcludeBranchIDFA) {
		s.blank()
		s.targetBlock(acc, BranchPodName, func(depth int) {
			s.macro(depth, "BRANCH_EXCLUDE_IDFA_CODE=1")
		})
	}
	return s.String()
}

const testTargets = `
  target 'ExponentIntegrationTests' do
    inherit! :search_paths
  end

  target 'Tests' do
    inherit! :search_paths
  end
`

// RenderTestTarget returns the integration test target blocks when the manifest
// is for the client itself. Shell apps (non-empty shellAppSdkVersion) get "".
func RenderTestTarget(shellAppSdkVersion string) string {
	if shellAppSdkVersion != "" {
		return ""
	}
	return testTargets
}
