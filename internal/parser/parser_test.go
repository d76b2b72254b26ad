package parser

import (
	"testing"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
)

func TestParseGo(t *testing.T) {
	source := []byte(`package main

func Hello() string {
	return "hello"
}

func Add(a, b int) int {
	return a + b
}
`)
	tree, err := Parse(lang.Go, source)
	if err != nil {
		t.Fatalf("Parse Go: %v", err)
	}
	defer tree.Close()

	var funcCount int
	Walk(tree.RootNode(), func(n *tree_sitter.Node) bool {
		if n.Kind() == "function_declaration" {
			funcCount++
		}
		return true
	})
	if funcCount != 2 {
		t.Errorf("expected 2 function_declarations, got %d", funcCount)
	}
}

func TestParseAllLanguages(t *testing.T) {
	samples := map[lang.Language]string{
		lang.Python:     "def f():\n    pass\n",
		lang.JavaScript: "function f() { return 1; }\n",
		lang.TypeScript: "function f(): number { return 1; }\n",
		lang.TSX:        "const x = <div/>;\n",
		lang.Go:         "package p\n",
		lang.Rust:       "fn f() -> i32 { 1 }\n",
		lang.Java:       "class A {}\n",
		lang.C:          "int f(void) { return 1; }\n",
		lang.CPP:        "int f() { return 1; }\n",
		lang.CSharp:     "class A {}\n",
		lang.PHP:        "<?php function f() { return 1; }\n",
		lang.Ruby:       "def f\n  1\nend\n",
		lang.Scala:      "object A\n",
		lang.Kotlin:     "fun f(): Int = 1\n",
		lang.Lua:        "local function f() return 1 end\n",
	}
	for l, src := range samples {
		tree, err := Parse(l, []byte(src))
		if err != nil {
			t.Errorf("Parse %s: %v", l, err)
			continue
		}
		if tree.RootNode() == nil {
			t.Errorf("%s: nil root node", l)
		}
		tree.Close()
	}
}

func TestParseUnsupportedLanguage(t *testing.T) {
	if _, err := Parse(lang.Language("cobol"), []byte("x")); err == nil {
		t.Fatal("expected an error for an unsupported language")
	}
}

func TestQueryCache(t *testing.T) {
	cache := NewQueryCache()
	defer cache.Close()

	src := `(function_declaration name: (identifier) @name) @function`
	q1, err := cache.Get(lang.Go, 0, src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	q2, err := cache.Get(lang.Go, 0, src)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if q1 != q2 {
		t.Error("second Get should return the cached query")
	}

	if _, err := cache.Get(lang.Go, 1, "(not_a_node_kind) @x"); err == nil {
		t.Fatal("expected a compile error")
	}
	if _, err := cache.Get(lang.Go, 1, "(not_a_node_kind) @x"); err == nil {
		t.Fatal("compile errors should be cached too")
	}
}

func TestRunQuery(t *testing.T) {
	source := []byte("package main\n\nfunc Hello() {}\n")
	tree, err := Parse(lang.Go, source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	cache := NewQueryCache()
	defer cache.Close()
	q, err := cache.Get(lang.Go, 0, `(function_declaration name: (identifier) @name) @function`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	caps := RunQuery(q, tree.RootNode(), source)
	byTag := make(map[string]string)
	for _, c := range caps {
		byTag[c.Tag] = NodeText(c.Node, source)
	}
	if byTag["name"] != "Hello" {
		t.Errorf("name capture = %q, want Hello", byTag["name"])
	}
	if byTag["function"] == "" {
		t.Error("missing function capture")
	}
}
