package identity

import (
	"strings"
	"sync"
	"unicode"
)

// Registry deduplicates contributor identities across a scan. All
// lookups key on the normalized name, so any raw spelling that
// normalizes identically resolves to the same IRI. Safe for concurrent
// use by repository workers.
type Registry struct {
	base string

	mu           sync.Mutex
	contributors map[string]string // normalized name -> IRI
}

// NewRegistry creates a registry minting IRIs under the given base.
// An empty base falls back to DefaultBase.
func NewRegistry(base string) *Registry {
	if base == "" {
		base = DefaultBase
	}
	return &Registry{
		base:         strings.TrimRight(base, "/"),
		contributors: make(map[string]string),
	}
}

// Base returns the IRI prefix the registry mints under.
func (r *Registry) Base() string {
	return r.base
}

// NormalizeContributorName canonicalizes a raw author name: whitespace
// tokens are re-joined with single spaces; an all-uppercase token longer
// than one rune is capitalized ("JANE" -> "Jane"), any other token is
// title-cased per letter run ("o'brien" -> "O'Brien"). Blank input
// yields the empty string.
func NormalizeContributorName(raw string) string {
	tokens := strings.Fields(raw)
	for i, tok := range tokens {
		if len([]rune(tok)) > 1 && isAllUpper(tok) {
			tokens[i] = capitalize(tok)
		} else {
			tokens[i] = titleCase(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// ContributorIdentifier returns the IRI for a raw author name, creating
// it on first encounter. The lookup-or-create is atomic: concurrent
// callers normalizing to the same name observe the same IRI.
func (r *Registry) ContributorIdentifier(raw string) string {
	normalized := NormalizeContributorName(raw)

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.contributors[normalized]; ok {
		return id
	}
	id := r.base + "/contributor_" + encode(normalized)
	r.contributors[normalized] = id
	return id
}

// Contributors returns a snapshot of normalized name to IRI.
func (r *Registry) Contributors() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.contributors))
	for name, id := range r.contributors {
		out[name] = id
	}
	return out
}

// ContributorCount returns the number of distinct contributors seen.
func (r *Registry) ContributorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contributors)
}

// Reset clears all contributor state. Only for use between independent
// pipeline runs, never mid-run.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contributors = make(map[string]string)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if i == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// titleCase upper-cases the first letter of every letter run and
// lower-cases the rest, so "mcdonald-smith" becomes "Mcdonald-Smith".
func titleCase(s string) string {
	runes := []rune(s)
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if prevLetter {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}
