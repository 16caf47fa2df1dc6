package sdkversion

import (
	"fmt"
	"sort"

	"github.com/conn-castle/podkit/internal/messages"
)

// Behavior names a manifest variant that switches on at a major-version threshold.
type Behavior string

const (
	// BehaviorLowercaseGlog renames the legacy logging library pod from GLog to glog.
	BehaviorLowercaseGlog Behavior = "lowercase-glog"
	// BehaviorInstallerResultAPI switches postinstall hooks to pod_name /
	// target_installation_result and drops the explicit framework search paths.
	BehaviorInstallerResultAPI Behavior = "installer-result-api"
	// BehaviorAutolinkScript replaces manual React Native wiring with the autolink script.
	BehaviorAutolinkScript Behavior = "autolink-script"
	// BehaviorIntegrationScript replaces manual React Native wiring with react_native_pods.
	BehaviorIntegrationScript Behavior = "integration-script"
	// BehaviorExcludeBranchIDFA defines BRANCH_EXCLUDE_IDFA_CODE for the Branch pod.
	BehaviorExcludeBranchIDFA Behavior = "exclude-branch-idfa"
)

var knownBehaviors = map[Behavior]struct{}{
	BehaviorLowercaseGlog:      {},
	BehaviorInstallerResultAPI: {},
	BehaviorAutolinkScript:     {},
	BehaviorIntegrationScript:  {},
	BehaviorExcludeBranchIDFA:  {},
}

// KnownBehavior reports whether b is a behavior the renderers understand.
func KnownBehavior(b Behavior) bool {
	_, ok := knownBehaviors[b]
	return ok
}

// Threshold enables Behavior for every major version >= Major.
type Threshold struct {
	Major    int
	Behavior Behavior
}

// Table is the ordered threshold history.
type Table []Threshold

// DefaultTable returns the threshold history of the native framework.
func DefaultTable() Table {
	return Table{
		{Major: 26, Behavior: BehaviorLowercaseGlog},
		{Major: 33, Behavior: BehaviorInstallerResultAPI},
		{Major: 36, Behavior: BehaviorAutolinkScript},
		{Major: 39, Behavior: BehaviorIntegrationScript},
		{Major: 39, Behavior: BehaviorExcludeBranchIDFA},
	}
}

// Validate rejects unknown behaviors, non-positive majors, and duplicate behaviors.
func (t Table) Validate() error {
	seen := make(map[Behavior]struct{}, len(t))
	for i, th := range t {
		if !KnownBehavior(th.Behavior) {
			return fmt.Errorf(messages.VersionUnknownBehaviorFmt, i, th.Behavior)
		}
		if th.Major <= 0 {
			return fmt.Errorf(messages.VersionThresholdMajorFmt, i, th.Major)
		}
		if _, dup := seen[th.Behavior]; dup {
			return fmt.Errorf(messages.VersionDuplicateBehaviorFmt, th.Behavior)
		}
		seen[th.Behavior] = struct{}{}
	}
	return nil
}

// Sorted returns a copy ordered by ascending major, then behavior name.
func (t Table) Sorted() Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Major != out[j].Major {
			return out[i].Major < out[j].Major
		}
		return out[i].Behavior < out[j].Behavior
	})
	return out
}

// Features is the set of behaviors enabled for one render.
type Features struct {
	version Version
	enabled map[Behavior]bool
}

// Resolve evaluates the table once for v. Behaviors absent from the table stay off.
func (t Table) Resolve(v Version) Features {
	enabled := make(map[Behavior]bool, len(t))
	for _, th := range t {
		enabled[th.Behavior] = v.AtLeast(th.Major)
	}
	return Features{version: v, enabled: enabled}
}

// Has reports whether b is enabled.
func (f Features) Has(b Behavior) bool {
	return f.enabled[b]
}

// Version returns the version the features were resolved for.
func (f Features) Version() Version {
	return f.version
}

// Enabled lists enabled behaviors in name order.
func (f Features) Enabled() []Behavior {
	out := make([]Behavior, 0, len(f.enabled))
	for b, on := range f.enabled {
		if on {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
