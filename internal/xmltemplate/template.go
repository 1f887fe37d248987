package xmltemplate

import (
	"regexp"
	"sort"
	"strings"
)

// Table maps placeholder tokens to their substitution values.
type Table map[string]string

// With returns a new table holding t overridden by other. Neither input is modified.
func (t Table) With(other Table) Table {
	merged := make(Table, len(t)+len(other))

	for key, value := range t {
		merged[key] = value
	}

	for key, value := range other {
		merged[key] = value
	}

	return merged
}

func (t Table) pattern() *regexp.Regexp {
	keys := make([]string, 0, len(t))
	for key := range t {
		if key != "" {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return nil
	}

	// longest first so that $OFFER_REF_ID is never matched as a prefix of $OFFER_REF_IDS
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = regexp.QuoteMeta(key)
	}

	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// Substitute replaces every placeholder of the table in one scan of the
// template. Substituted values are not scanned again.
func Substitute(template string, table Table) string {
	pattern := table.pattern()
	if pattern == nil {
		return template
	}

	return pattern.ReplaceAllStringFunc(template, func(token string) string {
		return table[token]
	})
}
