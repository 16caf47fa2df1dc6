// Package podspec emits CocoaPods declaration syntax: dependency lines for a
// Podfile or an embedded podspec, and attribute-style pod declarations.
package podspec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
)

// Attribute is one `:key => value` pair of a pod declaration.
type Attribute struct {
	Key   string
	Value any
}

// Attributes is an ordered attribute map; serialization keeps insertion order.
type Attributes []Attribute

// Set appends key/value, or replaces the value in place when key is already present.
func (a Attributes) Set(key string, value any) Attributes {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Key: key, Value: value})
}

// SerializeAttributes renders attrs as `:key => value` lines joined by ",\n".
// Values are JSON-encoded with two-space indentation, so lists span several lines.
func SerializeAttributes(attrs Attributes) (string, error) {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if strings.TrimSpace(attr.Key) == "" {
			return "", errors.New(messages.PodspecAttributeKeyRequired)
		}
		value, err := encodeValue(attr.Value)
		if err != nil {
			return "", fmt.Errorf(messages.PodspecAttributeEncodeFmt, attr.Key, err)
		}
		parts = append(parts, ":"+attr.Key+" => "+value)
	}
	return strings.Join(parts, ",\n"), nil
}

func encodeValue(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// RenderPod renders a `pod '<name>',` header (`ss.dependency` in the embedded
// dialect) followed by attrs indented two spaces.
func RenderPod(name string, attrs Attributes, dialect Dialect) (string, error) {
	body, err := SerializeAttributes(attrs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s '%s',\n%s", dialect.Keyword(), name, Indent(body, 2)), nil
}
