package messages

// Filesystem, preview and prompt messages.
const (
	// FsutilCreateTempFmt formats temp file creation errors.
	FsutilCreateTempFmt = "failed to create temp file for %s: %w"
	FsutilWriteTempFmt  = "failed to write temp file for %s: %w"
	FsutilSyncTempFmt   = "failed to sync temp file for %s: %w"
	FsutilChmodTempFmt  = "failed to chmod temp file for %s: %w"
	FsutilCloseTempFmt  = "failed to close temp file for %s: %w"
	FsutilRenameFmt     = "failed to rename temp file to %s: %w"

	// PreviewTruncatedFmt is appended when a diff preview is cut short.
	PreviewTruncatedFmt = "... (truncated to %d lines; rerun with --diff-lines <n> to see more)"

	PromptRequiresTerminal     = "prompt requires an interactive terminal"
	PromptCancelled            = "prompt cancelled"
	PromptOverwriteAffirmative = "Overwrite"
	PromptOverwriteNegative    = "Keep current"
)

// Config discovery messages.
const (
	DiscoverStartPathRequired = "start path is required"
	DiscoverStatFmt           = "failed to stat %s: %w"
	DiscoverNotRegularFileFmt = "%s exists but is not a regular file"
	DiscoverGitInvalidFmt     = "%s is neither a directory nor a regular file"
)
