package podspec

import "strings"

// Indent prefixes every line of s with count spaces. Lines that are empty or
// whitespace-only are left as they are so blank lines never gain trailing spaces.
func Indent(s string, count int) string {
	if count <= 0 || s == "" {
		return s
	}
	pad := strings.Repeat(" ", count)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
