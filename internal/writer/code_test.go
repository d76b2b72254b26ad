package writer

import (
	"testing"

	"github.com/shama-llama/semantic-web-kms/internal/extract"
	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/identity"
)

func TestWriteCodeEntities(t *testing.T) {
	w, store, ids := newWriter()

	sum := extract.Summary{}
	sum.Add(&extract.Entity{
		Kind: extract.KindClass, Name: "Widget",
		StartLine: 3, EndLine: 12,
		Fields:     []string{"count"},
		Implements: []string{"BaseInterface"},
		Bases:      []string{"BaseInterface"},
		Complexity: 1,
	})
	sum.Add(&extract.Entity{
		Kind: extract.KindFunction, Name: "render", Parent: "Widget",
		StartLine: 6, EndLine: 10,
		Parameters: []string{"self", "depth"},
		Returns:    "str",
		Calls:      []extract.Call{{Name: "draw", Args: []string{"self.name", "depth"}}},
		Complexity: 3,
		Access:     "private",
	})

	if err := w.WriteCodeEntities("widgets", "src/render.py", sum); err != nil {
		t.Fatalf("WriteCodeEntities: %v", err)
	}

	fileID := mustID(t, ids, "widgets", identity.File, "src/render.py")

	classID, err := ids.CodeEntityIdentifier("widgets", "src/render.py", "Widget")
	if err != nil {
		t.Fatal(err)
	}
	methodID, err := ids.CodeEntityIdentifier("widgets", "src/render.py", "Widget.render")
	if err != nil {
		t.Fatal(err)
	}

	if !store.Has(graph.IRI(classID, graph.RDFType, graph.ClassClassDefinition)) {
		t.Error("missing class type statement")
	}
	if !store.Has(graph.Lit(classID, graph.RDFSLabel, "Widget")) {
		t.Error("missing class label")
	}
	if !store.Has(graph.IRI(fileID, graph.PredDeclares, classID)) ||
		!store.Has(graph.IRI(classID, graph.PredIsDeclaredIn, fileID)) {
		t.Error("missing declares/isDeclaredIn pair for class")
	}
	if !store.Has(graph.Lit(classID, graph.PredImplements, "BaseInterface")) {
		t.Error("missing implements attribute")
	}

	if !store.Has(graph.IRI(methodID, graph.RDFType, graph.ClassFunctionDefinition)) {
		t.Error("missing method type statement")
	}
	if !store.Has(graph.IRI(classID, graph.PredHasMember, methodID)) ||
		!store.Has(graph.IRI(methodID, graph.PredIsMemberOf, classID)) {
		t.Error("missing member containment pair")
	}
	if !store.Has(graph.Lit(methodID, graph.PredHasParameter, "depth")) {
		t.Error("missing parameter attribute")
	}
	if !store.Has(graph.Lit(methodID, graph.PredReturns, "str")) {
		t.Error("missing return type attribute")
	}
	if !store.Has(graph.Lit(methodID, graph.PredStartLine, "6")) ||
		!store.Has(graph.Lit(methodID, graph.PredEndLine, "10")) {
		t.Error("missing span attributes")
	}
	if !store.Has(graph.Lit(methodID, graph.PredComplexity, "3")) {
		t.Error("missing complexity attribute")
	}
	if !store.Has(graph.Lit(methodID, graph.PredAccessModifier, "private")) {
		t.Error("missing access modifier attribute")
	}

	callID, err := ids.CodeEntityIdentifier("widgets", "src/render.py", "Widget.render@call0")
	if err != nil {
		t.Fatal(err)
	}
	if !store.Has(graph.IRI(callID, graph.RDFType, graph.ClassFunctionCall)) {
		t.Error("missing call type statement")
	}
	if !store.Has(graph.IRI(methodID, graph.PredCallsFunction, callID)) {
		t.Error("missing calls statement")
	}
	if !store.Has(graph.Lit(callID, graph.PredCallArgument, "self.name")) ||
		!store.Has(graph.Lit(callID, graph.PredCallArgument, "depth")) {
		t.Error("missing call argument attributes")
	}

	attrID, err := ids.CodeEntityIdentifier("widgets", "src/render.py", "Widget.count")
	if err != nil {
		t.Fatal(err)
	}
	if !store.Has(graph.IRI(attrID, graph.RDFType, graph.ClassAttributeDeclaration)) {
		t.Error("missing attribute type statement")
	}
	if !store.Has(graph.IRI(classID, graph.PredHasMember, attrID)) {
		t.Error("missing field containment statement")
	}
}

func TestWriteCodeEntitiesIdempotent(t *testing.T) {
	w, store, _ := newWriter()

	sum := extract.Summary{}
	sum.Add(&extract.Entity{Kind: extract.KindClass, Name: "Widget", StartLine: 1, EndLine: 2})

	if err := w.WriteCodeEntities("widgets", "a.py", sum); err != nil {
		t.Fatal(err)
	}
	before := store.Len()
	if err := w.WriteCodeEntities("widgets", "a.py", sum); err != nil {
		t.Fatal(err)
	}
	if store.Len() != before {
		t.Errorf("second write grew the store from %d to %d", before, store.Len())
	}
}
