package substitution

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
)

// ErrTemplateNotCovered reports a template with no placeholder from the registry,
// i.e. a template this registry was not written for.
var ErrTemplateNotCovered = errors.New(messages.SubstitutionTemplateNotCovered)

// Map binds keys to rendered values. Values are inserted verbatim.
type Map map[string]string

// Set binds key to value.
func (m Map) Set(key Key, value string) {
	m[string(key)] = value
}

// Keys returns the map keys in name order.
func (m Map) Keys() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// With returns a new map holding m overlaid by overrides; overrides win.
func (m Map) With(overrides map[string]string) Map {
	out := make(Map, len(m)+len(overrides))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Result is the output of a template render.
type Result struct {
	Output string
	// Unresolved lists registered placeholders in the template that had no value,
	// in order of first appearance. They are left untouched in Output and do
	// not fail the render; callers decide whether to warn or reject.
	Unresolved []string
}

// Render validates m against reg and replaces every `${KEY}` whose KEY is in m.
//
// The template is scanned once from left to right; inserted values are never
// rescanned, so the output does not depend on map order. Tokens whose name is not
// registered (e.g. ${PODS_ROOT}) are not placeholders and pass through. A template
// without any registered placeholder fails with ErrTemplateNotCovered.
func Render(template string, m Map, reg Registry) (Result, error) {
	if err := reg.Validate(m); err != nil {
		return Result{}, err
	}

	var (
		out        strings.Builder
		unresolved []string
		seen       = map[string]bool{}
		covered    bool
	)
	out.Grow(len(template))
	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			out.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			out.WriteString(rest)
			break
		}
		name := rest[start+2 : start+2+end]
		if !isKeyName(name) {
			out.WriteString(rest[:start+2])
			rest = rest[start+2:]
			continue
		}
		token := rest[start : start+2+end+1]
		out.WriteString(rest[:start])
		rest = rest[start+len(token):]

		if !reg.Contains(name) {
			out.WriteString(token)
			continue
		}
		covered = true
		value, ok := m[name]
		if !ok {
			out.WriteString(token)
			if !seen[name] {
				seen[name] = true
				unresolved = append(unresolved, name)
			}
			continue
		}
		out.WriteString(value)
	}

	if !covered {
		return Result{}, fmt.Errorf("%w: "+messages.SubstitutionTemplateNotCoveredFmt, ErrTemplateNotCovered, reg.name)
	}
	return Result{Output: out.String(), Unresolved: unresolved}, nil
}

// Placeholders lists the distinct registered placeholders in template, in order of first appearance.
func Placeholders(template string, reg Registry) []string {
	var names []string
	seen := map[string]bool{}
	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			return names
		}
		name := rest[start+2 : start+2+end]
		if !isKeyName(name) {
			rest = rest[start+2:]
			continue
		}
		rest = rest[start+2+end+1:]
		if reg.Contains(name) && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
}

func isKeyName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
