// Package valuesfile reads substitution overrides from KEY=VALUE files.
//
// The format is dotenv-like: blank lines and # comments are skipped, an optional
// "export " prefix is accepted, and values may be single-quoted (literal) or
// double-quoted (with \n, \r, \" and \\ escapes) so multi-line snippets fit on one line.
package valuesfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
)

// Load reads and parses the values file at path.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ValuesFileReadFmt, path, err)
	}
	values, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ValuesFileInvalidFmt, path, err)
	}
	return values, nil
}

// Parse returns the key/value pairs in content. Later assignments win.
func Parse(content string) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.ValuesFileLineFmt, lineNo, err)
		}
		if ok {
			values[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.ValuesFileScanFmt, err)
	}
	return values, nil
}

func parseLine(line string) (key string, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	rawKey, rawValue, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(rawKey)
	if !found || key == "" {
		return "", "", false, errors.New(messages.ValuesFileExpectedKeyValue)
	}
	value = strings.TrimSpace(rawValue)

	switch {
	case strings.HasPrefix(value, `"`):
		value, err = unquoteDouble(value)
	case strings.HasPrefix(value, `'`):
		value, err = unquoteSingle(value)
	}
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

func unquoteSingle(value string) (string, error) {
	end := strings.IndexByte(value[1:], '\'')
	if end < 0 {
		return "", errors.New(messages.ValuesFileUnterminatedQuote)
	}
	end++
	if err := checkSuffix(value[end+1:]); err != nil {
		return "", err
	}
	return value[1:end], nil
}

func unquoteDouble(value string) (string, error) {
	var b strings.Builder
	for i := 1; i < len(value); i++ {
		c := value[i]
		if c == '"' {
			if err := checkSuffix(value[i+1:]); err != nil {
				return "", err
			}
			return b.String(), nil
		}
		if c == '\\' && i+1 < len(value) {
			i++
			switch value[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\':
				b.WriteByte(value[i])
			default:
				b.WriteByte('\\')
				b.WriteByte(value[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return "", errors.New(messages.ValuesFileUnterminatedQuote)
}

// checkSuffix allows only whitespace or a comment after a closing quote.
func checkSuffix(suffix string) error {
	trimmed := strings.TrimSpace(suffix)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	return errors.New(messages.ValuesFileQuotedSuffix)
}
