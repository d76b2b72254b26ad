package writer

import (
	"fmt"
	"strconv"

	"github.com/shama-llama/semantic-web-kms/internal/extract"
	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/identity"
)

// WriteCodeEntities emits the statements for one file's extraction
// summary: a typed entity per construct, declares/is-declared-in links
// to the file, member containment for parented constructs and the
// attribute statements (span, complexity, access, decorators,
// parameters, bases, calls).
func (w *Writer) WriteCodeEntities(repoName, path string, sum extract.Summary) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	fileID, err := w.ids.IdentifierFor(repoName, identity.File, path)
	if err != nil {
		return fmt.Errorf("code entities of %s: %w", path, err)
	}

	for _, entities := range sum {
		for _, e := range entities {
			if err := w.writeEntity(repoName, path, fileID, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) writeEntity(repoName, path, fileID string, e *extract.Entity) error {
	fragment := entityFragment(e)
	entityID, err := w.ids.CodeEntityIdentifier(repoName, path, fragment)
	if err != nil {
		return fmt.Errorf("entity %q in %s: %w", e.Name, path, err)
	}

	w.ensureTyped(entityID, graph.Namespace+string(e.Kind), e.Name)
	w.store.Add(graph.IRI(fileID, graph.PredDeclares, entityID))
	w.store.Add(graph.IRI(entityID, graph.PredIsDeclaredIn, fileID))

	if e.Parent != "" {
		parentID, err := w.ids.CodeEntityIdentifier(repoName, path, e.Parent)
		if err != nil {
			return fmt.Errorf("parent of %q in %s: %w", e.Name, path, err)
		}
		w.store.Add(graph.IRI(parentID, graph.PredHasMember, entityID))
		w.store.Add(graph.IRI(entityID, graph.PredIsMemberOf, parentID))
	}

	w.store.Add(graph.Lit(entityID, graph.PredStartLine, strconv.Itoa(e.StartLine)))
	w.store.Add(graph.Lit(entityID, graph.PredEndLine, strconv.Itoa(e.EndLine)))
	if e.Complexity > 0 {
		w.store.Add(graph.Lit(entityID, graph.PredComplexity, strconv.Itoa(e.Complexity)))
	}
	if e.Access != "" {
		w.store.Add(graph.Lit(entityID, graph.PredAccessModifier, e.Access))
	}
	if e.Raw != "" {
		w.store.Add(graph.Lit(entityID, graph.PredRawText, e.Raw))
	}
	if e.Returns != "" {
		w.store.Add(graph.Lit(entityID, graph.PredReturns, e.Returns))
	}
	for _, d := range e.Decorators {
		w.store.Add(graph.Lit(entityID, graph.PredHasDecorator, d))
	}
	for _, p := range e.Parameters {
		w.store.Add(graph.Lit(entityID, graph.PredHasParameter, p))
	}
	for _, b := range e.Bases {
		w.store.Add(graph.Lit(entityID, graph.PredExtends, b))
	}
	// Implements targets stay literal: resolving a base name to the
	// interface entity it names would need cross-file analysis.
	for _, impl := range e.Implements {
		w.store.Add(graph.Lit(entityID, graph.PredImplements, impl))
	}

	for i, call := range e.Calls {
		callID, err := w.ids.CodeEntityIdentifier(repoName, path, fmt.Sprintf("%s@call%d", fragment, i))
		if err != nil {
			return fmt.Errorf("call %d of %q in %s: %w", i, e.Name, path, err)
		}
		w.ensureTyped(callID, graph.ClassFunctionCall, call.Name)
		w.store.Add(graph.IRI(entityID, graph.PredCallsFunction, callID))
		w.store.Add(graph.IRI(callID, graph.PredIsDeclaredIn, fileID))
		for _, arg := range call.Args {
			w.store.Add(graph.Lit(callID, graph.PredCallArgument, arg))
		}
	}

	for _, field := range e.Fields {
		attrID, err := w.ids.CodeEntityIdentifier(repoName, path, e.Name+"."+field)
		if err != nil {
			return fmt.Errorf("field %q of %q in %s: %w", field, e.Name, path, err)
		}
		w.ensureTyped(attrID, graph.ClassAttributeDeclaration, field)
		w.store.Add(graph.IRI(entityID, graph.PredHasMember, attrID))
		w.store.Add(graph.IRI(attrID, graph.PredIsMemberOf, entityID))
	}
	return nil
}

// entityFragment builds the construct's fragment within its file:
// parent-qualified names for members, line-disambiguated fragments for
// constructs whose names repeat freely (calls, comments).
func entityFragment(e *extract.Entity) string {
	switch e.Kind {
	case extract.KindComment:
		return fmt.Sprintf("comment#L%d", e.StartLine)
	case extract.KindCall:
		return fmt.Sprintf("%s#L%d", e.Name, e.StartLine)
	}
	if e.Parent != "" {
		return e.Parent + "." + e.Name
	}
	return e.Name
}
