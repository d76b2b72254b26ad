package extract

import (
	"log/slog"
	"sort"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
	"github.com/shama-llama/semantic-web-kms/internal/parser"
)

// recordKinds maps record-producing capture tags to entity kinds.
// Every other tag is a child capture that attaches to its innermost
// enclosing record.
var recordKinds = map[string]Kind{
	"class":       KindClass,
	"struct":      KindStruct,
	"function":    KindFunction,
	"method":      KindFunction,
	"constructor": KindFunction,
	"interface":   KindInterface,
	"protocol":    KindInterface,
	"enum":        KindEnum,
	"trait":       KindTrait,
	"module":      KindPackage,
	"object":      KindVariable,
	"variable":    KindVariable,
	"import":      KindImport,
	"comment":     KindComment,
	"func":        KindCall,
	"call":        KindCall,
}

// orphanKinds maps the child tags that become standalone records when
// no enclosing record claims them.
var orphanKinds = map[string]Kind{
	"param": KindParameter,
	"attr":  KindAttribute,
	"field": KindAttribute,
}

// namedKinds lists the kinds that require a name capture; a record of
// one of these kinds with no attached name is dropped, along with its
// children.
var namedKinds = map[Kind]bool{
	KindClass:     true,
	KindStruct:    true,
	KindFunction:  true,
	KindInterface: true,
	KindEnum:      true,
	KindTrait:     true,
	KindPackage:   true,
	KindVariable:  true,
}

// measuredKinds lists the kinds the complexity and access heuristics
// apply to.
var measuredKinds = map[Kind]bool{
	KindClass:     true,
	KindStruct:    true,
	KindFunction:  true,
	KindInterface: true,
	KindEnum:      true,
	KindTrait:     true,
}

// grammarExtractor is the query strategy: it runs the language's
// structural queries, then buckets child captures to their enclosing
// record captures by byte-range containment in a single pass.
type grammarExtractor struct {
	queries *parser.QueryCache
}

type grammarRecord struct {
	kind   Kind
	node   *tree_sitter.Node
	parent *grammarRecord
	entity *Entity
}

func (g *grammarExtractor) Extract(source []byte, language lang.Language) (Summary, error) {
	spec := lang.ForLanguage(language)

	tree, err := parser.Parse(language, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	root := tree.RootNode()

	var caps []parser.Capture
	for i, src := range spec.Queries {
		q, err := g.queries.Get(language, i, src)
		if err != nil {
			slog.Debug("extract.query.skip", "language", language, "query", i, "error", err)
			continue
		}
		caps = append(caps, parser.RunQuery(q, root, source)...)
	}

	caps = dedupCaptures(caps)
	sort.SliceStable(caps, func(i, j int) bool {
		a, b := caps[i], caps[j]
		if a.Node.StartByte() != b.Node.StartByte() {
			return a.Node.StartByte() < b.Node.StartByte()
		}
		if a.Node.EndByte() != b.Node.EndByte() {
			return a.Node.EndByte() > b.Node.EndByte()
		}
		_, ar := recordKinds[a.Tag]
		_, br := recordKinds[b.Tag]
		return ar && !br
	})

	var records []*grammarRecord
	var stack []*grammarRecord
	for _, cap := range caps {
		start := cap.Node.StartByte()
		for len(stack) > 0 && stack[len(stack)-1].node.EndByte() <= start {
			stack = stack[:len(stack)-1]
		}

		kind, isRecord := recordKinds[cap.Tag]
		if !isRecord {
			if len(stack) > 0 {
				attachChild(stack[len(stack)-1].entity, cap.Tag, parser.NodeText(cap.Node, source))
				continue
			}
			// A child capture outside any record stands on its own.
			kind, isRecord = orphanKinds[cap.Tag]
			if !isRecord {
				continue
			}
		}

		rec := &grammarRecord{
			kind: kind,
			node: cap.Node,
			entity: &Entity{
				Kind:      kind,
				StartLine: lineOf(cap.Node.StartPosition().Row),
				EndLine:   lineOf(cap.Node.EndPosition().Row),
			},
		}
		if len(stack) > 0 {
			rec.parent = stack[len(stack)-1]
		}
		records = append(records, rec)
		stack = append(stack, rec)
	}

	sum := Summary{}
	for _, rec := range records {
		e := rec.entity
		text := parser.NodeText(rec.node, source)

		switch rec.kind {
		case KindCall:
			// The capture is the callee; attach it to the enclosing
			// function when there is one, otherwise record a bare call.
			if rec.parent != nil {
				rec.parent.entity.Calls = append(rec.parent.entity.Calls, Call{Name: text})
				continue
			}
			e.Name = text
			e.Raw = text
		case KindComment:
			if rec.parent != nil {
				rec.parent.entity.Comments = append(rec.parent.entity.Comments, text)
				continue
			}
			e.Name = text
			e.Raw = text
		case KindImport, KindParameter, KindAttribute:
			e.Name = text
			e.Raw = text
		default:
			if e.Name == "" && namedKinds[rec.kind] {
				continue
			}
			e.Raw = text
			if rec.parent != nil {
				e.Parent = rec.parent.entity.Name
			}
			if measuredKinds[rec.kind] {
				e.Complexity = Complexity(e.Raw)
				e.Access = AccessModifier(e.Raw, e.Name)
			}
		}

		sum.Add(e)
	}
	return sum, nil
}

// attachChild folds a child capture into its enclosing record.
func attachChild(e *Entity, tag, text string) {
	switch tag {
	case "name":
		if e.Name == "" {
			e.Name = text
		}
	case "param":
		e.Parameters = append(e.Parameters, text)
	case "attr", "field":
		e.Fields = append(e.Fields, text)
	case "decorator":
		e.Decorators = append(e.Decorators, text)
	case "type":
		if e.Returns == "" {
			e.Returns = text
		}
	case "comment":
		e.Comments = append(e.Comments, text)
	}
}

// dedupCaptures drops repeated (tag, node) pairs, which occur when two
// queries for a language match the same construct.
func dedupCaptures(caps []parser.Capture) []parser.Capture {
	type key struct {
		tag string
		id  uintptr
	}
	seen := make(map[key]bool, len(caps))
	out := caps[:0]
	for _, c := range caps {
		k := key{tag: c.Tag, id: c.Node.Id()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}
