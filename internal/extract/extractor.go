package extract

import (
	"fmt"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
	"github.com/shama-llama/semantic-web-kms/internal/parser"
)

// Extractor produces an entity summary from one file's source text.
type Extractor interface {
	Extract(source []byte, language lang.Language) (Summary, error)
}

// Registry selects the extraction strategy for a language. The native
// strategy handles Python; every other registered language goes through
// the grammar-query strategy.
type Registry struct {
	byLang  map[lang.Language]Extractor
	grammar Extractor
}

// NewRegistry builds a registry with both strategies wired up. The
// query cache is shared so compiled queries are reused across files and
// workers.
func NewRegistry(queries *parser.QueryCache) *Registry {
	r := &Registry{
		byLang:  make(map[lang.Language]Extractor),
		grammar: &grammarExtractor{queries: queries},
	}
	r.byLang[lang.Python] = &pythonExtractor{}
	return r
}

// For returns the extractor for a language, or an error if the language
// is not registered at all.
func (r *Registry) For(l lang.Language) (Extractor, error) {
	if e, ok := r.byLang[l]; ok {
		return e, nil
	}
	if lang.ForLanguage(l) == nil {
		return nil, fmt.Errorf("extract: unsupported language %q", l)
	}
	return r.grammar, nil
}

// Extract runs the appropriate strategy for the language.
func (r *Registry) Extract(source []byte, language lang.Language) (Summary, error) {
	e, err := r.For(language)
	if err != nil {
		return nil, err
	}
	return e.Extract(source, language)
}
