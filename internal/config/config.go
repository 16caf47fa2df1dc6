package config

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "podkit.toml"

// Config is the contents of podkit.toml.
type Config struct {
	Render RenderConfig `toml:"render"`
	// Substitutions are Podfile template overrides keyed by placeholder name.
	Substitutions map[string]string `toml:"substitutions"`
	// PodspecSubstitutions are embedded podspec template overrides.
	PodspecSubstitutions map[string]string `toml:"podspec_substitutions"`
	UniversalModules     []UniversalModuleConfig `toml:"universal_modules"`
	Thresholds           []ThresholdConfig       `toml:"thresholds"`
}

// RenderConfig holds the [render] section. Paths are resolved against the
// config file's directory after ~ expansion.
type RenderConfig struct {
	TemplatesDir             string   `toml:"templates_dir"`
	PodfileTemplate          string   `toml:"podfile_template"`
	PodspecTemplate          string   `toml:"podspec_template"`
	Output                   string   `toml:"output"`
	PodspecOutput            string   `toml:"podspec_output"`
	ValuesFile               string   `toml:"values_file"`
	SdkVersion               string   `toml:"sdk_version"`
	ShellAppSdkVersion       string   `toml:"shell_app_sdk_version"`
	ClientVersion            string   `toml:"client_version"`
	ServiceContext           bool     `toml:"service_context"`
	VersionedReactNativePath string   `toml:"versioned_react_native_path"`
	ExpoSubspecs             []string `toml:"expo_subspecs"`
	UniversalModulesPath     string   `toml:"universal_modules_path"`
	CorePodName              string   `toml:"core_pod_name"`
}

// UniversalModuleConfig is one [[universal_modules]] entry.
type UniversalModuleConfig struct {
	PodName string `toml:"pod_name"`
	Path    string `toml:"path"`
}

// ThresholdConfig is one [[thresholds]] entry. A non-empty list replaces the
// built-in threshold table.
type ThresholdConfig struct {
	Major    int    `toml:"major"`
	Behavior string `toml:"behavior"`
}
