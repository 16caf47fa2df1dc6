package messages

// Config and values file messages.
const (
	// ConfigValidationFailed is the sentinel text for config validation errors.
	ConfigValidationFailed = "config validation failed"
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt          = "missing config file %s: %w"
	ConfigInvalidFmt              = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt     = "%s: unrecognized config keys: %w"
	ConfigExpandPathFmt           = "failed to expand path %s: %w"
	ConfigSdkVersionInvalidFmt    = "%s: render.sdk_version %q: %w"
	ConfigTemplatePathInvalidFmt  = "%s: %s must be a relative slash-separated path (got %q)"
	ConfigExpoSubspecEmptyFmt     = "%s: render.expo_subspecs[%d] must not be empty"
	ConfigUniversalModuleFieldFmt = "%s: universal_modules[%d].%s is required"
	ConfigSectionFmt              = "%s: %w"

	// ValuesFileReadFmt formats values file read errors.
	ValuesFileReadFmt           = "failed to read values file %s: %w"
	ValuesFileInvalidFmt        = "invalid values file %s: %w"
	ValuesFileLineFmt           = "line %d: %w"
	ValuesFileScanFmt           = "failed to scan values file: %w"
	ValuesFileExpectedKeyValue  = "expected KEY=VALUE"
	ValuesFileUnterminatedQuote = "unterminated quoted value"
	ValuesFileQuotedSuffix      = "unexpected characters after quoted value"
)
