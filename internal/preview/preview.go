// Package preview renders unified diffs between an on-disk manifest and a fresh render.
package preview

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/podkit/internal/messages"
)

// DefaultMaxLines is the default number of diff lines shown per file.
const DefaultMaxLines = 40

// Diff is a user-facing diff of one file.
type Diff struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// Changed reports whether current and rendered differ.
func Changed(current string, rendered string) bool {
	return current != rendered
}

// Unified diffs current against rendered for path, capped at maxLines lines
// (DefaultMaxLines when maxLines <= 0). Identical content yields an empty diff.
func Unified(path string, current string, rendered string, maxLines int) Diff {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	diff := udiff.Unified(path+" (current)", path+" (rendered)", current, rendered)
	lines := splitLines(diff)
	if len(lines) <= maxLines {
		return Diff{Path: path, UnifiedDiff: withTrailingNewline(strings.Join(lines, "\n"))}
	}
	kept := append(lines[:maxLines:maxLines], fmt.Sprintf(messages.PreviewTruncatedFmt, maxLines))
	return Diff{Path: path, UnifiedDiff: withTrailingNewline(strings.Join(kept, "\n")), Truncated: true}
}

func splitLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func withTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
