package extract

import (
	"strings"
	"unicode"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
	"github.com/shama-llama/semantic-web-kms/internal/parser"
)

// pythonExtractor is the native strategy: it walks the Python syntax
// tree recursively instead of running structural queries, which lets it
// see class bases, decorators, annotated fields and per-call argument
// text in full detail.
type pythonExtractor struct{}

func (p *pythonExtractor) Extract(source []byte, _ lang.Language) (Summary, error) {
	tree, err := parser.Parse(lang.Python, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	sum := Summary{}
	root := tree.RootNode()
	for i := uint(0); i < root.NamedChildCount(); i++ {
		p.topLevel(root.NamedChild(i), source, sum)
	}
	return sum, nil
}

func (p *pythonExtractor) topLevel(node *tree_sitter.Node, source []byte, sum Summary) {
	if node == nil {
		return
	}
	switch node.Kind() {
	case "decorated_definition":
		decorators := decoratorTexts(node, source)
		def := node.ChildByFieldName("definition")
		if def == nil {
			return
		}
		switch def.Kind() {
		case "class_definition":
			p.extractClass(def, decorators, source, sum)
		case "function_definition":
			p.extractFunction(def, "", decorators, source, sum)
		}
	case "class_definition":
		p.extractClass(node, nil, source, sum)
	case "function_definition":
		p.extractFunction(node, "", nil, source, sum)
	case "import_statement":
		p.extractImport(node, source, sum)
	case "import_from_statement":
		p.extractImportFrom(node, source, sum)
	case "expression_statement":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child != nil && child.Kind() == "assignment" {
				p.moduleVariable(child, source, sum)
			}
		}
	}
}

func (p *pythonExtractor) extractClass(node *tree_sitter.Node, decorators []string, source []byte, sum Summary) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := parser.NodeText(nameNode, source)
	raw := parser.NodeText(node, source)

	e := &Entity{
		Kind:       KindClass,
		Name:       name,
		StartLine:  lineOf(node.StartPosition().Row),
		EndLine:    lineOf(node.EndPosition().Row),
		Raw:        raw,
		Decorators: decorators,
		Complexity: Complexity(raw),
		Access:     AccessModifier(raw, name),
	}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := uint(0); i < supers.NamedChildCount(); i++ {
			base := supers.NamedChild(i)
			if base == nil || base.Kind() == "keyword_argument" {
				continue
			}
			text := parser.NodeText(base, source)
			e.Bases = append(e.Bases, text)
			if strings.HasSuffix(strings.ToLower(text), "interface") {
				e.Implements = append(e.Implements, text)
			}
		}
	}
	if isEnumClass(e.Bases) {
		e.Kind = KindEnum
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := uint(0); i < body.NamedChildCount(); i++ {
			stmt := body.NamedChild(i)
			if stmt == nil {
				continue
			}
			switch stmt.Kind() {
			case "expression_statement":
				for j := uint(0); j < stmt.NamedChildCount(); j++ {
					child := stmt.NamedChild(j)
					if child != nil && child.Kind() == "assignment" {
						if field := assignedName(child, source); field != "" {
							e.Fields = append(e.Fields, field)
						}
					}
				}
			case "function_definition":
				p.extractFunction(stmt, name, nil, source, sum)
			case "decorated_definition":
				def := stmt.ChildByFieldName("definition")
				if def != nil && def.Kind() == "function_definition" {
					p.extractFunction(def, name, decoratorTexts(stmt, source), source, sum)
				}
			}
		}
	}

	sum.Add(e)
}

func (p *pythonExtractor) extractFunction(node *tree_sitter.Node, parent string, decorators []string, source []byte, sum Summary) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := parser.NodeText(nameNode, source)
	raw := parser.NodeText(node, source)

	e := &Entity{
		Kind:       KindFunction,
		Name:       name,
		StartLine:  lineOf(node.StartPosition().Row),
		EndLine:    lineOf(node.EndPosition().Row),
		Raw:        raw,
		Parent:     parent,
		Decorators: decorators,
		Complexity: Complexity(raw),
		Access:     AccessModifier(raw, name),
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		e.Parameters = parameterNames(params, source)
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		e.Returns = parser.NodeText(ret, source)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		e.Calls = collectCalls(body, source)
	}

	sum.Add(e)
}

func (p *pythonExtractor) extractImport(node *tree_sitter.Node, source []byte, sum Summary) {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		var target string
		switch child.Kind() {
		case "dotted_name":
			target = parser.NodeText(child, source)
		case "aliased_import":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				target = parser.NodeText(nameNode, source)
			}
		}
		if target == "" {
			continue
		}
		sum.Add(&Entity{
			Kind:      KindImport,
			Name:      "import " + target,
			StartLine: lineOf(node.StartPosition().Row),
			EndLine:   lineOf(node.EndPosition().Row),
			Raw:       parser.NodeText(node, source),
		})
	}
}

func (p *pythonExtractor) extractImportFrom(node *tree_sitter.Node, source []byte, sum Summary) {
	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode == nil {
		return
	}
	module := parser.NodeText(moduleNode, source)

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Id() == moduleNode.Id() {
			continue
		}
		var target string
		switch child.Kind() {
		case "dotted_name":
			target = parser.NodeText(child, source)
		case "aliased_import":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				target = parser.NodeText(nameNode, source)
			}
		case "wildcard_import":
			target = "*"
		}
		if target == "" {
			continue
		}
		sum.Add(&Entity{
			Kind:      KindImport,
			Name:      "from " + module + " import " + target,
			StartLine: lineOf(node.StartPosition().Row),
			EndLine:   lineOf(node.EndPosition().Row),
			Raw:       parser.NodeText(node, source),
		})
	}
}

func (p *pythonExtractor) moduleVariable(assign *tree_sitter.Node, source []byte, sum Summary) {
	name := assignedName(assign, source)
	if name == "" {
		return
	}
	raw := parser.NodeText(assign, source)
	sum.Add(&Entity{
		Kind:      KindVariable,
		Name:      name,
		StartLine: lineOf(assign.StartPosition().Row),
		EndLine:   lineOf(assign.EndPosition().Row),
		Raw:       raw,
	})
}

// assignedName returns the identifier on the left of a plain or
// annotated assignment, or "" for destructuring targets.
func assignedName(assign *tree_sitter.Node, source []byte) string {
	left := assign.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return ""
	}
	return parser.NodeText(left, source)
}

// collectCalls gathers every call expression under a function body,
// including calls inside nested scopes.
func collectCalls(body *tree_sitter.Node, source []byte) []Call {
	var calls []Call
	parser.Walk(body, func(n *tree_sitter.Node) bool {
		if n.Kind() != "call" {
			return true
		}
		fn := n.ChildByFieldName("function")
		if fn == nil {
			return true
		}
		call := Call{Name: parser.NodeText(fn, source)}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for i := uint(0); i < args.NamedChildCount(); i++ {
				arg := args.NamedChild(i)
				if arg == nil || arg.Kind() == "keyword_argument" {
					continue
				}
				call.Args = append(call.Args, parser.NodeText(arg, source))
			}
		}
		calls = append(calls, call)
		return true
	})
	return calls
}

func parameterNames(params *tree_sitter.Node, source []byte) []string {
	var names []string
	for i := uint(0); i < params.NamedChildCount(); i++ {
		p := params.NamedChild(i)
		if p == nil {
			continue
		}
		switch p.Kind() {
		case "identifier":
			names = append(names, parser.NodeText(p, source))
		case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
			for j := uint(0); j < p.NamedChildCount(); j++ {
				child := p.NamedChild(j)
				if child != nil && child.Kind() == "identifier" {
					names = append(names, parser.NodeText(child, source))
					break
				}
			}
		case "default_parameter", "typed_default_parameter":
			if nameNode := p.ChildByFieldName("name"); nameNode != nil {
				names = append(names, parser.NodeText(nameNode, source))
			}
		}
	}
	return names
}

func decoratorTexts(decorated *tree_sitter.Node, source []byte) []string {
	var out []string
	for i := uint(0); i < decorated.NamedChildCount(); i++ {
		child := decorated.NamedChild(i)
		if child != nil && child.Kind() == "decorator" {
			out = append(out, strings.TrimPrefix(parser.NodeText(child, source), "@"))
		}
	}
	return out
}

// isEnumClass reports whether any base marks the class as an enum. A
// base matches when one of its identifier segments is "enum" or ends
// in "enum" case-insensitively, which covers the bare Enum-family
// names (Enum, IntEnum, StrEnum) and the enum.Enum attribute form
// without tripping on names like Enumeration.
func isEnumClass(bases []string) bool {
	for _, b := range bases {
		for _, seg := range strings.FieldsFunc(b, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
		}) {
			if strings.HasSuffix(strings.ToLower(seg), "enum") {
				return true
			}
		}
	}
	return false
}

func lineOf(row uint) int {
	return int(row) + 1
}
