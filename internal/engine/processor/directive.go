package processor

import "strings"

// includePrefix is the directive token. Matching is line-anchored and
// case-sensitive; leading whitespace is not tolerated.
const includePrefix = "#include"

// scanIncludeName extracts the fragment name from an include line: the text
// between the first and last double quote, verbatim. No path normalization
// and no escape processing is applied, and trailing tokens after the closing
// quote are not validated. It returns ok=false when either quote is missing
// or the last quote does not come strictly after the first.
func scanIncludeName(line string) (string, bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(line, '"')
	if end <= start {
		return "", false
	}
	return line[start+1 : end], true
}
