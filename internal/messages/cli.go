package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "podkit"
	// RootShort is the short description for the root command.
	RootShort = "Render CocoaPods manifests for Expo iOS projects"
	RootLong  = `podkit renders the Podfile and the embedded ExpoKit podspec from templates.

Templates carry ${KEY} placeholders. podkit computes dependency blocks,
versioned React Native fragments and postinstall hooks for the target SDK
version, then fills the placeholders in a single pass. Values come from
podkit.toml, an optional values file and --set flags, in that order.`
	RootConfigFlag  = "Path to podkit.toml (default: ./podkit.toml when present)"
	RootVerboseFlag = "Log computed values and file operations"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	VersionUse       = "version"
	VersionShort     = "Print version, commit and build date"

	// RenderUse is the render command name.
	RenderUse          = "render"
	RenderShort        = "Render a Podfile or embedded podspec"
	RenderPodfileUse   = "podfile"
	RenderPodfileShort = "Render the Podfile for an SDK version"
	RenderPodspecUse   = "podspec"
	RenderPodspecShort = "Render the embedded ExpoKit podspec"

	RenderTemplatesDirFlag       = "Read templates from this directory instead of the built-in set"
	RenderTemplateFlag           = "Template path inside the templates directory"
	RenderOutputFlag             = "Output file path"
	RenderValuesFlag             = "KEY=VALUE file with placeholder values"
	RenderSetFlag                = "Set a placeholder value (KEY=VALUE, repeatable)"
	RenderCheckFlag              = "Exit non-zero and print a diff when the output is out of date; write nothing"
	RenderDiffFlag               = "Print a unified diff against the current output before writing"
	RenderYesFlag                = "Overwrite an existing output without prompting"
	RenderDiffLinesFlag          = "Maximum diff lines to print"
	RenderSdkVersionFlag         = "Target SDK version (X.Y.Z or UNVERSIONED)"
	RenderShellAppSdkVersionFlag = "Keep only the versioned fragment for this SDK version"
	RenderExpoSubspecFlag        = "Expo subspec to include (repeatable)"
	RenderServiceFlag            = "Render for the build service context"
	RenderClientVersionFlag      = "Client version written into the podspec"

	RenderUpToDateFmt             = "%s is up to date\n"
	RenderOutOfDateFmt            = "%s is out of date\n"
	RenderUnchangedFmt            = "%s unchanged\n"
	RenderOverwritePromptFmt      = "Overwrite %s?"
	RenderOverwriteRequiresYesFmt = "%s exists and overwrite prompts require an interactive terminal; re-run with --yes"
	RenderSkippedFmt              = "skipped %s\n"
	RenderUnresolvedFmt           = "left %d placeholder(s) without a value: %s\n"
	RenderWroteFmt                = "wrote %s\n"
	RenderDiffSummaryFmt          = "%d added, %d removed"

	// KeysUse is the keys command usage line.
	KeysUse       = "keys [podfile|podspec]"
	KeysShort     = "List the placeholder keys each template accepts"
	KeysHeaderFmt = "%s keys:\n"

	// TemplatesUse is the templates command usage line.
	TemplatesUse         = "templates <dir>"
	TemplatesShort       = "Write the built-in templates to a directory for use with --templates-dir"
	TemplatesForceFlag   = "Overwrite files that differ from the built-in templates"
	TemplatesConflictFmt = "%d file(s) differ from the built-in templates: %s; re-run with --force to overwrite"
)
