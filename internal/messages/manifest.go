package messages

// Manifest rendering messages.
const (
	// VersionInvalidFormat is the sentinel text for malformed SDK versions.
	VersionInvalidFormat        = "sdk version must be UNVERSIONED or MAJOR.MINOR.PATCH"
	VersionUnknownBehaviorFmt   = "thresholds[%d]: unknown behavior %q"
	VersionThresholdMajorFmt    = "thresholds[%d]: major must be greater than zero (got %d)"
	VersionDuplicateBehaviorFmt = "behavior %q appears more than once in thresholds"

	PodspecAttributeKeyRequired      = "podspec attribute key is required"
	PodspecAttributeEncodeFmt        = "failed to encode podspec attribute %s: %w"
	PodspecInvalidDependenciesFmt    = "invalid dependencies file %s: %w"
	PodspecDependencyNameRequiredFmt = "%s: dependencies[%d].name is required"
	PodspecReadDependenciesFmt       = "failed to read dependencies file %s: %w"

	FragmentReadFailed    = "failed to read fragment"
	FragmentListFailedFmt = "failed to list fragments in %s: %w"

	ReactNativeMissingOption           = "missing required option"
	ReactNativePathRequiredFmt         = "local react native path is required for the %s dependency"
	ReactNativeUniversalModuleFieldFmt = "universal_modules[%d].%s is required"

	SubstitutionUnknownKey            = "unrecognized template key"
	SubstitutionUnknownKeyFmt         = "unrecognized %s template key: %s"
	SubstitutionTemplateNotCovered    = "template has no registered placeholders"
	SubstitutionTemplateNotCoveredFmt = "template has no %s placeholders"

	RenderTemplateReadFailed = "failed to read template"
	RenderWriteFailed        = "failed to write manifest"
	RenderOutputPathRequired = "output path is required"
	RenderReadCurrentFmt     = "failed to read current manifest %s: %w"
	RenderSdkVersionFmt      = "invalid sdk version %q: %w"
)
