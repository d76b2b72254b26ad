// ast-debug prints the syntax tree and query captures for a source
// file, for authoring and debugging the per-language query sets.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
	"github.com/shama-llama/semantic-web-kms/internal/parser"
)

func printAST(node *tree_sitter.Node, source []byte, indent int) {
	if node == nil {
		return
	}
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}
	text := string(source[node.StartByte():node.EndByte()])
	if len(text) > 60 {
		text = text[:60] + "..."
	}
	fmt.Printf("%s%s %q\n", prefix, node.Kind(), text)
	for i := uint(0); i < node.ChildCount(); i++ {
		printAST(node.Child(i), source, indent+1)
	}
}

func printCaptures(l lang.Language, root *tree_sitter.Node, source []byte) {
	spec := lang.ForLanguage(l)
	if spec == nil || len(spec.Queries) == 0 {
		return
	}
	cache := parser.NewQueryCache()
	defer cache.Close()

	fmt.Println("\n=== CAPTURES ===")
	for i, src := range spec.Queries {
		q, err := cache.Get(l, i, src)
		if err != nil {
			fmt.Printf("query %d: %v\n", i, err)
			continue
		}
		for _, cap := range parser.RunQuery(q, root, source) {
			text := parser.NodeText(cap.Node, source)
			if len(text) > 60 {
				text = text[:60] + "..."
			}
			fmt.Printf("query %d @%s L%d %q\n",
				i, cap.Tag, cap.Node.StartPosition().Row+1, text)
		}
	}
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: ast-debug <source-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	l, ok := lang.LanguageForExtension(filepath.Ext(path))
	if !ok {
		fmt.Fprintf(os.Stderr, "unsupported extension %q\n", filepath.Ext(path))
		os.Exit(1)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tree, err := parser.Parse(l, source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer tree.Close()

	fmt.Printf("=== %s AST ===\n", l)
	printAST(tree.RootNode(), source, 0)
	printCaptures(l, tree.RootNode(), source)
}
