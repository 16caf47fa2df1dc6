// Package fragments selects and concatenates per-SDK template fragments.
package fragments

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/sdkversion"
)

const (
	// Extension is the file extension of fragment files.
	Extension = ".rb"
	// VersionPrefix precedes the underscore version token in versioned fragment names.
	VersionPrefix = "ReactABI"

	versionedPathPlaceholder = "${VERSIONED_REACT_NATIVE_PATH}"
	subspecsPlaceholder      = "${REACT_NATIVE_EXPO_SUBSPECS}"
)

// ErrFragmentRead wraps failures reading an individual fragment.
var ErrFragmentRead = errors.New(messages.FragmentReadFailed)

// Filter decides whether a fragment, identified by its slash-separated path, is included.
// A nil Filter includes every fragment.
type Filter func(name string) bool

// NewFilter builds the filter for a target SDK version.
//
// The sentinel excludes every fragment. A value that does not parse as a
// dotted triple (including "") yields a nil Filter, so every fragment is
// included. Otherwise only <dir>/ReactABI<major>_<minor>_<patch>.rb matches.
func NewFilter(sdkVersion string) Filter {
	v, err := sdkversion.Parse(sdkVersion)
	if err != nil {
		return nil
	}
	if v.IsUnversioned() {
		return func(string) bool { return false }
	}
	want := VersionPrefix + v.Token() + Extension
	return func(name string) bool {
		return path.Base(name) == want
	}
}

// List returns the fragment paths under dir in ascending lexical order, after
// applying filter. A missing directory yields no fragments.
func List(fsys fs.FS, dir string, filter Filter) ([]string, error) {
	pattern := path.Join(dir, "*"+Extension)
	names, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf(messages.FragmentListFailedFmt, dir, err)
	}
	sort.Strings(names)
	if filter == nil {
		return names, nil
	}
	kept := names[:0]
	for _, name := range names {
		if filter(name) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}

// Aggregate concatenates the selected fragments under dir, separated by a single
// newline. Files are read one at a time in sorted order; empty files are skipped.
// The first read failure aborts the aggregation.
func Aggregate(fsys fs.FS, dir string, filter Filter) (string, error) {
	names, err := List(fsys, dir, filter)
	if err != nil {
		return "", err
	}
	contents := make([]string, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrFragmentRead, name, err)
		}
		if len(data) == 0 {
			continue
		}
		contents = append(contents, string(data))
	}
	return strings.Join(contents, "\n"), nil
}

// AggregateDependencies aggregates versioned dependency fragments and fills in
// the versioned React Native path and subspecList, the quoted, comma-joined
// subspec list (see QuoteList).
func AggregateDependencies(fsys fs.FS, dir string, filter Filter, versionedPath string, subspecList string) (string, error) {
	out, err := Aggregate(fsys, dir, filter)
	if err != nil {
		return "", err
	}
	out = strings.ReplaceAll(out, versionedPathPlaceholder, versionedPath)
	out = strings.ReplaceAll(out, subspecsPlaceholder, subspecList)
	return out, nil
}

// QuoteList renders names as 'a', 'b'.
func QuoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ", ")
}
