// Package graph holds the statement model and the statement stores the
// extraction pipeline writes into. A statement is a (subject, predicate,
// object) triple; the store is a mathematical set, so re-adding an
// existing statement is a no-op.
package graph

// Statement is a single subject-predicate-object fact. Subject and
// Predicate are always IRIs. Object is an IRI unless Literal is set, in
// which case it is a plain string value.
type Statement struct {
	Subject   string
	Predicate string
	Object    string
	Literal   bool
}

// IRI builds a statement whose object is another entity.
func IRI(subject, predicate, object string) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: object}
}

// Lit builds a statement whose object is a literal value.
func Lit(subject, predicate, value string) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: value, Literal: true}
}

// Store is the surface the graph writer needs from a statement store.
type Store interface {
	// Add inserts a statement, returning true if it was not already present.
	Add(st Statement) bool
	// Has reports whether the exact statement is present.
	Has(st Statement) bool
	// BySubject returns all statements with the given subject.
	BySubject(subject string) []Statement
	// Len returns the number of distinct statements.
	Len() int
	// ForEach visits every statement; iteration stops on the first error.
	ForEach(fn func(st Statement) error) error
}
