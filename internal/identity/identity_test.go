package identity

import (
	"strings"
	"sync"
	"testing"
)

func TestNormalizeContributorName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"JANE DOE", "Jane Doe"},
		{"jane doe", "Jane Doe"},
		{"Jane Doe", "Jane Doe"},
		{"  jane \t doe \n", "Jane Doe"},
		{"o'brien", "O'Brien"},
		{"J", "J"},
		{"j", "J"},
		{"JD smith", "Jd Smith"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeContributorName(tc.raw); got != tc.want {
			t.Errorf("NormalizeContributorName(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestContributorIdentifierMergesSpellings(t *testing.T) {
	r := NewRegistry("")
	spellings := []string{"JANE DOE", "jane doe", "Jane   Doe", " jane DOE "}

	first := r.ContributorIdentifier(spellings[0])
	for _, s := range spellings[1:] {
		if got := r.ContributorIdentifier(s); got != first {
			t.Errorf("ContributorIdentifier(%q) = %q, want %q", s, got, first)
		}
	}
	if r.ContributorCount() != 1 {
		t.Fatalf("ContributorCount = %d, want 1", r.ContributorCount())
	}
	snap := r.Contributors()
	if _, ok := snap["Jane Doe"]; !ok {
		t.Fatalf("snapshot missing normalized key, got %v", snap)
	}
}

func TestContributorIdentifierConcurrent(t *testing.T) {
	r := NewRegistry("")
	ids := make([]string, 64)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = r.ContributorIdentifier("ADA LOVELACE")
		}(i)
	}
	wg.Wait()

	for _, id := range ids[1:] {
		if id != ids[0] {
			t.Fatal("concurrent lookups produced divergent identifiers")
		}
	}
	if r.ContributorCount() != 1 {
		t.Fatalf("ContributorCount = %d, want 1", r.ContributorCount())
	}
}

func TestIdentifierForScheme(t *testing.T) {
	r := NewRegistry("http://kg.example/base")
	cases := []struct {
		kind Kind
		key  string
		want string
	}{
		{Repository, "", "http://kg.example/base/demo"},
		{File, "src/main.py", "http://kg.example/base/demo/src%2Fmain.py"},
		{Commit, "abc123", "http://kg.example/base/demo/commit/abc123"},
		{CommitMessage, "abc123", "http://kg.example/base/demo/commit/abc123_msg"},
		{Issue, "42", "http://kg.example/base/demo/issue/42"},
	}
	for _, tc := range cases {
		got, err := r.IdentifierFor("demo", tc.kind, tc.key)
		if err != nil {
			t.Fatalf("IdentifierFor(%d, %q): %v", tc.kind, tc.key, err)
		}
		if got != tc.want {
			t.Errorf("IdentifierFor(%d, %q) = %q, want %q", tc.kind, tc.key, got, tc.want)
		}
	}
}

func TestIdentifierForEmptyKey(t *testing.T) {
	r := NewRegistry("")
	for _, kind := range []Kind{File, Commit, CommitMessage, Issue, Contributor} {
		if _, err := r.IdentifierFor("demo", kind, ""); err == nil {
			t.Errorf("kind %d: empty local key should fail", kind)
		}
	}
	if _, err := r.IdentifierFor("demo", Repository, ""); err != nil {
		t.Errorf("repository identifier should not require a local key: %v", err)
	}
}

func TestEncodingAvoidsCollisions(t *testing.T) {
	r := NewRegistry("")
	a, err := r.IdentifierFor("demo", File, "a/b")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.IdentifierFor("demo", File, "a%2Fb")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("distinct paths collided: %q", a)
	}
	if strings.Contains(a, " ") || strings.Contains(a, "#") {
		t.Errorf("identifier contains unsafe characters: %q", a)
	}
}

func TestCodeEntityIdentifier(t *testing.T) {
	r := NewRegistry("")
	id, err := r.CodeEntityIdentifier("demo", "src/widget.py", "Widget.render")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(id, "#Widget.render") {
		t.Errorf("unexpected code entity identifier %q", id)
	}
	if _, err := r.CodeEntityIdentifier("demo", "src/widget.py", ""); err == nil {
		t.Error("empty fragment should fail")
	}
}
