package xmltemplate

import (
	"regexp"
	"strings"
)

const indent = "  "

var (
	closingTag     = regexp.MustCompile(`^</[^>]+>$`)
	selfClosingTag = regexp.MustCompile(`^<[^>]+/>$`)
	declarationTag = regexp.MustCompile(`^<[?!][^>]*>$`)
	openingTag     = regexp.MustCompile(`^<[^/?!][^>]*>$`)
	leafElement    = regexp.MustCompile(`^<([^/\s>]+)[^>]*>[^<]*</([^>]+)>$`)
	tagGap         = regexp.MustCompile(`>\s*<`)
)

// FormatIndented pretty prints xml for diagnostics only. It does not parse the
// document and leaves malformed input readable rather than failing.
func FormatIndented(xml string) string {
	compact := strings.TrimSpace(xml)
	if compact == "" {
		return ""
	}

	parts := strings.Split(tagGap.ReplaceAllString(compact, "><"), "><")
	lines := make([]string, 0, len(parts))
	depth := 0

	for i, part := range parts {
		if i > 0 {
			part = "<" + part
		}

		if i < len(parts)-1 {
			part = part + ">"
		}

		switch {
		case closingTag.MatchString(part):
			if depth > 0 {
				depth--
			}
			lines = append(lines, strings.Repeat(indent, depth)+part)
		case selfClosingTag.MatchString(part), declarationTag.MatchString(part), leafElement.MatchString(part):
			lines = append(lines, strings.Repeat(indent, depth)+part)
		case openingTag.MatchString(part):
			lines = append(lines, strings.Repeat(indent, depth)+part)
			depth++
		default:
			lines = append(lines, strings.Repeat(indent, depth)+part)
		}
	}

	return strings.Join(lines, "\n")
}
