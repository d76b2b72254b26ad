package graph

import "testing"

func TestSQLiteSetSemantics(t *testing.T) {
	s, err := OpenSQLiteMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	st := IRI("http://x/r", PredHasCommit, "http://x/r/commit/abc")
	if !s.Add(st) {
		t.Fatal("first Add should report new")
	}
	if s.Add(st) {
		t.Fatal("duplicate Add should report already present")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if !s.Has(st) {
		t.Fatal("Has should find the statement")
	}
	if s.Has(Lit("http://x/r", PredHasCommit, "http://x/r/commit/abc")) {
		t.Fatal("literal variant should be a distinct statement")
	}
}

func TestSQLiteBySubjectAndForEach(t *testing.T) {
	s, err := OpenSQLiteMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.Add(IRI("s1", RDFType, ClassCommit))
	s.Add(Lit("s1", RDFSLabel, "c1"))
	s.Add(Lit("s2", RDFSLabel, "c2"))

	if got := s.BySubject("s1"); len(got) != 2 {
		t.Fatalf("BySubject(s1) = %d statements, want 2", len(got))
	}

	count := 0
	if err := s.ForEach(func(st Statement) error {
		count++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("ForEach visited %d statements, want 3", count)
	}
}
