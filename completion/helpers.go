package completion

import (
	"strings"
)

// escapeBash escapes a word placed inside a double-quoted bash string
func escapeBash(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `$`, `\$`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}

// escapeFish escapes text placed inside a single-quoted fish string
func escapeFish(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	return strings.ReplaceAll(desc, "'", "\\'")
}

// escapePowerShell escapes text placed inside a single-quoted PowerShell string
func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

// escapeZsh escapes an _arguments description placed inside single quotes
func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}

// functionName turns a program name into something usable as a shell function name
func functionName(programName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, programName)
}
