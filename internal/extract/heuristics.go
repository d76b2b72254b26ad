package extract

import "strings"

// branchTokens are the branching keywords and operators counted by the
// complexity estimate. The count is a substring scan, not a token scan:
// it deliberately over-counts (a generic ":" counts, "sort" contains
// "or") because the metric is a cheap ranking signal, not a
// control-flow-graph computation.
var branchTokens = []string{
	"if", "elif", "else", "for", "while", "case", "catch", "except",
	"&&", "||", "and", "or", "?", ":", "switch", "try",
}

// Complexity estimates cyclomatic complexity of a construct's raw text:
// 1 plus one increment per case-insensitive occurrence of each branching
// token.
func Complexity(raw string) int {
	lower := strings.ToLower(raw)
	n := 1
	for _, tok := range branchTokens {
		n += strings.Count(lower, tok)
	}
	return n
}

// accessKeywords in priority order; the first one found in the raw text
// wins.
var accessKeywords = []string{"public", "private", "protected", "internal", "package"}

// AccessModifier infers a construct's access level: an explicit modifier
// keyword anywhere in the raw text, else a leading underscore on the
// name marks it private, else unspecified.
func AccessModifier(raw, name string) string {
	lower := strings.ToLower(raw)
	for _, kw := range accessKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	if strings.HasPrefix(name, "_") {
		return "private"
	}
	return ""
}
