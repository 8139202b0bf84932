package matcher

// boilerplateKeywords steers every search toward beginner-friendly issues
var boilerplateKeywords = []string{"good first issue", "beginner friendly", "easy"}

// genericFallbackKeywords is the retry set used when the caller's keywords
// produce no results at all
var genericFallbackKeywords = []string{"python", "javascript", "java", "react", "node", "good first issue"}

// expandKeywords builds the search keyword set: caller keywords, one keyword
// per language, and the beginner-friendly boilerplate, deduplicated. The
// order of the result carries no meaning.
func expandKeywords(keywords, languages []string) []string {
	combined := make([]string, 0, len(keywords)+len(languages)+len(boilerplateKeywords))
	combined = append(combined, keywords...)
	combined = append(combined, languages...)
	combined = append(combined, boilerplateKeywords...)

	seen := make(map[string]bool, len(combined))
	unique := make([]string, 0, len(combined))
	for _, kw := range combined {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		unique = append(unique, kw)
	}

	return unique
}

// fallbackKeywords returns a copy of the generic fallback set
func fallbackKeywords() []string {
	out := make([]string, len(genericFallbackKeywords))
	copy(out, genericFallbackKeywords)
	return out
}
