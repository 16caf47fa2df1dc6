package podspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
)

// Dialect selects the declaration syntax.
type Dialect int

const (
	// DialectPodfile emits top-level `pod` declarations.
	DialectPodfile Dialect = iota
	// DialectPodspec emits `ss.dependency` declarations nested in a subspec.
	DialectPodspec
)

// Keyword returns the declaration keyword for the dialect.
func (d Dialect) Keyword() string {
	if d == DialectPodspec {
		return "ss.dependency"
	}
	return "pod"
}

// AllowsPodfileFlags reports whether inhibit_warnings and free-form flags are legal.
func (d Dialect) AllowsPodfileFlags() bool {
	return d == DialectPodfile
}

func (d Dialect) String() string {
	if d == DialectPodspec {
		return "podspec"
	}
	return "podfile"
}

// DialectFor maps the embedded-spec flag of a render context to a dialect.
func DialectFor(isEmbeddedSpec bool) Dialect {
	if isEmbeddedSpec {
		return DialectPodspec
	}
	return DialectPodfile
}

// Dependency is one entry of dependencies.json.
type Dependency struct {
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	Comments          []string `json:"comments,omitempty"`
	OtherPodfileFlags string   `json:"otherPodfileFlags,omitempty"`
}

// ParseDependencies decodes an ordered JSON array of dependencies.
// source is used in error messages.
func ParseDependencies(data []byte, source string) ([]Dependency, error) {
	var deps []Dependency
	if err := json.Unmarshal(data, &deps); err != nil {
		return nil, fmt.Errorf(messages.PodspecInvalidDependenciesFmt, source, err)
	}
	for i, dep := range deps {
		if strings.TrimSpace(dep.Name) == "" {
			return nil, fmt.Errorf(messages.PodspecDependencyNameRequiredFmt, source, i)
		}
	}
	return deps, nil
}

// LoadDependencies reads and decodes name from fsys.
func LoadDependencies(fsys fs.FS, name string) ([]Dependency, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf(messages.PodspecReadDependenciesFmt, name, err)
	}
	return ParseDependencies(data, name)
}

// RenderDependencies renders deps in input order, one block per dependency:
// optional `# comment` lines, then the declaration line. Duplicates pass through.
func RenderDependencies(deps []Dependency, dialect Dialect) string {
	blocks := make([]string, 0, len(deps))
	for _, dep := range deps {
		blocks = append(blocks, renderDependency(dep, dialect))
	}
	return strings.Join(blocks, "\n")
}

func renderDependency(dep Dependency, dialect Dialect) string {
	var b strings.Builder
	if len(dep.Comments) > 0 {
		for i, comment := range dep.Comments {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  # ")
			b.WriteString(comment)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %s '%s', '%s'", dialect.Keyword(), dep.Name, dep.Version)
	if dialect.AllowsPodfileFlags() {
		b.WriteString(", :inhibit_warnings => true")
		b.WriteString(dep.OtherPodfileFlags)
	}
	return b.String()
}
