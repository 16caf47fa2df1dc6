// Package sdkversion classifies SDK version identifiers and resolves the
// version-gated behaviors a manifest render depends on.
package sdkversion

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/conn-castle/podkit/internal/messages"
)

// UnversionedLiteral is the sentinel meaning "current/head revision".
const UnversionedLiteral = "UNVERSIONED"

// ErrInvalidVersionFormat reports a version that is neither the sentinel nor a dotted triple.
var ErrInvalidVersionFormat = errors.New(messages.VersionInvalidFormat)

// dottedTriple matches three dot-separated numerals.
var dottedTriple = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Version is a parsed SDK version. The zero value is not meaningful; use Parse or Unversioned.
type Version struct {
	raw         string
	major       int
	unversioned bool
}

// Unversioned returns the sentinel version.
func Unversioned() Version {
	return Version{raw: UnversionedLiteral, unversioned: true}
}

// Parse classifies raw as the sentinel (case-insensitive) or a dotted triple.
// raw is matched as given; surrounding whitespace makes it invalid.
func Parse(raw string) (Version, error) {
	if strings.EqualFold(raw, UnversionedLiteral) {
		return Unversioned(), nil
	}
	if !dottedTriple.MatchString(raw) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, raw)
	}
	parsed, err := goversion.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersionFormat, raw, err)
	}
	return Version{raw: raw, major: parsed.Segments()[0]}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// IsUnversioned reports whether v is the sentinel.
func (v Version) IsUnversioned() bool {
	return v.unversioned
}

// Major returns the major version and true, or 0 and false for the sentinel.
func (v Version) Major() (int, bool) {
	if v.unversioned {
		return 0, false
	}
	return v.major, true
}

// Token returns the version with dots replaced by underscores, e.g. 38_0_0.
// The sentinel has no token.
func (v Version) Token() string {
	if v.unversioned {
		return ""
	}
	return strings.ReplaceAll(v.raw, ".", "_")
}

// AtLeast reports whether v is at or above major. The sentinel is treated as the latest release.
func (v Version) AtLeast(major int) bool {
	if v.unversioned {
		return true
	}
	return v.major >= major
}

// String returns the canonical textual form.
func (v Version) String() string {
	return v.raw
}
