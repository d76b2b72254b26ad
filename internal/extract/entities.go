// Package extract turns raw source text into a language-neutral entity
// summary: classes, functions, variables, imports, calls and the rest of
// the construct kinds the graph writer knows how to serialize.
package extract

// Kind tags an extracted entity with its construct category.
type Kind string

const (
	KindClass     Kind = "ClassDefinition"
	KindFunction  Kind = "FunctionDefinition"
	KindVariable  Kind = "VariableDeclaration"
	KindImport    Kind = "ImportDeclaration"
	KindCall      Kind = "FunctionCall"
	KindComment   Kind = "CodeComment"
	KindParameter Kind = "Parameter"
	KindAttribute Kind = "AttributeDeclaration"
	KindPackage   Kind = "PackageDeclaration"
	KindStruct    Kind = "StructDefinition"
	KindInterface Kind = "InterfaceDefinition"
	KindEnum      Kind = "EnumDefinition"
	KindTrait     Kind = "TraitDefinition"
)

// Call is a call expression observed inside a function body.
type Call struct {
	Name string
	// Args holds the textual form of each positional argument.
	Args []string
}

// Entity is one extracted construct. Which fields are populated depends
// on the kind: classes carry bases and fields, functions carry
// parameters and calls, imports carry only their normalized raw form.
type Entity struct {
	Kind      Kind
	Name      string
	StartLine int
	EndLine   int
	Raw       string

	// Parent names the lexically enclosing class for methods and
	// nested fields; empty for top-level constructs.
	Parent string

	Bases      []string
	Decorators []string
	Fields     []string
	Parameters []string
	Returns    string
	Calls      []Call
	Comments   []string

	// Implements lists interface-like bases detected on a class.
	Implements []string

	Complexity int
	Access     string
}

// Summary maps entity kinds to the entities extracted from one file.
type Summary map[Kind][]*Entity

// Add appends an entity under its kind.
func (s Summary) Add(e *Entity) {
	s[e.Kind] = append(s[e.Kind], e)
}

// Count returns the total number of entities across all kinds.
func (s Summary) Count() int {
	n := 0
	for _, list := range s {
		n += len(list)
	}
	return n
}
