package parser

import (
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
)

// QueryCache compiles structural queries once per (language, query)
// pair and reuses them across files. A query that fails to compile
// caches its error, so a bad pattern is reported once and then skipped
// cheaply.
type QueryCache struct {
	mu      sync.RWMutex
	queries map[queryKey]*compiled
}

type queryKey struct {
	language lang.Language
	index    int
}

type compiled struct {
	query *tree_sitter.Query
	err   error
}

// NewQueryCache creates an empty query cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{queries: make(map[queryKey]*compiled)}
}

// Get returns the compiled query for the language's query at the given
// index, compiling it on first use.
func (qc *QueryCache) Get(l lang.Language, index int, source string) (*tree_sitter.Query, error) {
	key := queryKey{language: l, index: index}

	qc.mu.RLock()
	c, ok := qc.queries[key]
	qc.mu.RUnlock()
	if ok {
		return c.query, c.err
	}

	qc.mu.Lock()
	defer qc.mu.Unlock()
	if c, ok := qc.queries[key]; ok {
		return c.query, c.err
	}

	tsLang, err := GetLanguage(l)
	if err != nil {
		qc.queries[key] = &compiled{err: err}
		return nil, err
	}

	q, qerr := tree_sitter.NewQuery(tsLang, source)
	var werr error
	if qerr != nil {
		werr = fmt.Errorf("compile query %d for %s: %w", index, l, qerr)
	}
	qc.queries[key] = &compiled{query: q, err: werr}
	return q, werr
}

// Close releases every cached query.
func (qc *QueryCache) Close() {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	for _, c := range qc.queries {
		if c.query != nil {
			c.query.Close()
		}
	}
	qc.queries = make(map[queryKey]*compiled)
}

// Capture is a (node, tag) pair produced by running a query.
type Capture struct {
	Tag  string
	Node *tree_sitter.Node
}

// RunQuery executes a compiled query over a subtree and returns every
// capture with its tag name.
func RunQuery(q *tree_sitter.Query, node *tree_sitter.Node, source []byte) []Capture {
	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	names := q.CaptureNames()
	matches := cursor.Matches(q, node, source)

	var out []Capture
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, cap := range match.Captures {
			tag := ""
			if int(cap.Index) < len(names) {
				tag = names[cap.Index]
			}
			node := cap.Node
			out = append(out, Capture{Tag: tag, Node: &node})
		}
	}
	return out
}
