// Package citation recognizes and normalizes ruling citation codes
// ("providencias") such as "T-123/20" or "SU. 456/21" in free text.
package citation

import (
	"regexp"
	"strings"
)

// Citation codes appear in two surface forms: a letter type joined to the
// number and year by a hyphen ("T-123/20"), or by a period ("SU. 456/21").
// Both are matched case-insensitively with arbitrary internal spacing.
var (
	hyphenPattern = regexp.MustCompile(`([A-Za-z]+)\s*-\s*(\d+)\s*/\s*(\d+)`)
	periodPattern = regexp.MustCompile(`([A-Za-z]+)\.\s*(\d+)\s*/\s*(\d+)`)
)

// Extract scans free text for citation codes and returns them in canonical
// form: letters upper-cased, hyphen-form matches before period-form matches,
// deduplicated in first-seen order. An empty result is not an error; it
// signals that the question should be answered by semantic search.
//
// The two patterns are scanned independently; pathological inputs where a
// hyphen-form and a period-form code overlap are not de-overlapped and may
// yield both normalizations.
func Extract(text string) []string {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}

	var found []string
	for _, m := range hyphenPattern.FindAllStringSubmatch(t, -1) {
		found = append(found, strings.ToUpper(m[1])+"-"+m[2]+"/"+m[3])
	}
	for _, m := range periodPattern.FindAllStringSubmatch(t, -1) {
		found = append(found, strings.ToUpper(m[1])+". "+m[2]+"/"+m[3])
	}

	return dedupe(found)
}

// Variants returns the spellings of a canonical citation plausibly stored in
// the metadata field, which is not normalized consistently upstream. The
// citation itself is always the first element.
func Variants(c string) []string {
	v := []string{
		c,
		strings.ReplaceAll(c, "-", "- "),
		strings.ReplaceAll(c, "/", " / "),
	}
	if strings.Contains(c, ". ") {
		v = append(v, strings.ReplaceAll(c, ". ", "."))
	}
	return dedupe(v)
}

var keyReplacer = strings.NewReplacer(" ", "", ".", "", "/", "")

// ComparisonKey reduces a citation or a stored citation field to a
// spelling-insensitive key: upper case with spaces, periods and slashes
// stripped. Every comparison between an extracted citation and a stored
// value goes through this one function.
func ComparisonKey(s string) string {
	return keyReplacer.Replace(strings.ToUpper(s))
}

// dedupe removes duplicates preserving first occurrence order.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
