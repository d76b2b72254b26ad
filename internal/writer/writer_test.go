package writer

import (
	"strings"
	"testing"

	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/history"
	"github.com/shama-llama/semantic-web-kms/internal/identity"
)

func newWriter() (*Writer, graph.Store, *identity.Registry) {
	store := graph.NewMemory()
	ids := identity.NewRegistry("")
	return New(store, ids), store, ids
}

func mustID(t *testing.T, ids *identity.Registry, repo string, kind identity.Kind, key string) string {
	t.Helper()
	id, err := ids.IdentifierFor(repo, kind, key)
	if err != nil {
		t.Fatalf("identifier (%s, %d, %s): %v", repo, kind, key, err)
	}
	return id
}

func TestWriteRepositoryMergesContributors(t *testing.T) {
	w, store, ids := newWriter()

	repo := &history.Repository{
		Name:      "widgets",
		OriginURL: "https://example.com/demo/widgets.git",
		Commits: []history.CommitRecord{
			{Repo: "widgets", Hash: "a", Author: "JANE DOE"},
			{Repo: "widgets", Hash: "b", Author: "Jane Doe"},
		},
	}
	if err := w.WriteRepository(repo); err != nil {
		t.Fatalf("WriteRepository: %v", err)
	}

	repoID := mustID(t, ids, "widgets", identity.Repository, "")
	if !store.Has(graph.IRI(repoID, graph.RDFType, graph.ClassRepository)) {
		t.Error("missing repository type statement")
	}
	if !store.Has(graph.Lit(repoID, graph.RDFSLabel, "widgets")) {
		t.Error("missing repository label")
	}
	if !store.Has(graph.Lit(repoID, graph.PredRepositoryURL, repo.OriginURL)) {
		t.Error("missing origin URL attribute")
	}

	if got := ids.ContributorCount(); got != 1 {
		t.Fatalf("contributor count = %d, want 1 (spellings should merge)", got)
	}
	contribID := ids.ContributorIdentifier("JANE DOE")
	if !store.Has(graph.Lit(contribID, graph.RDFSLabel, "Jane Doe")) {
		t.Error("contributor label should be the normalized name")
	}
	if !store.Has(graph.IRI(repoID, graph.PredHasContributor, contribID)) {
		t.Error("missing hasContributor statement")
	}
	if !store.Has(graph.IRI(contribID, graph.PredContributesTo, repoID)) {
		t.Error("missing contributesTo statement")
	}
}

func TestWriteCommitFixScan(t *testing.T) {
	w, store, ids := newWriter()

	fixing := history.CommitRecord{
		Repo: "widgets", Hash: "abcdef1234567890", Author: "Jane Doe",
		Message: "Fixes #12 and see #34", Timestamp: 1700000000,
		Issues: []int{12, 34},
	}
	mention := history.CommitRecord{
		Repo: "widgets", Hash: "1234567890abcdef", Author: "Jane Doe",
		Message: "See #34 for background", Timestamp: 1700000100,
		Issues: []int{34},
	}
	if err := w.WriteCommit(fixing); err != nil {
		t.Fatalf("WriteCommit: %v", err)
	}
	if err := w.WriteCommit(mention); err != nil {
		t.Fatalf("WriteCommit: %v", err)
	}

	fixCommit := mustID(t, ids, "widgets", identity.Commit, fixing.Hash)
	mentionCommit := mustID(t, ids, "widgets", identity.Commit, mention.Hash)
	issue12 := mustID(t, ids, "widgets", identity.Issue, "12")
	issue34 := mustID(t, ids, "widgets", identity.Issue, "34")

	// One fix keyword anywhere in the message marks every referenced
	// issue as fixed.
	for _, issue := range []string{issue12, issue34} {
		if !store.Has(graph.IRI(fixCommit, graph.PredAddressesIssue, issue)) {
			t.Errorf("fixing commit should address %s", issue)
		}
		if !store.Has(graph.IRI(fixCommit, graph.PredFixesIssue, issue)) {
			t.Errorf("fixing commit should fix %s", issue)
		}
	}

	if !store.Has(graph.IRI(mentionCommit, graph.PredAddressesIssue, issue34)) {
		t.Error("mentioning commit should address #34")
	}
	if store.Has(graph.IRI(mentionCommit, graph.PredFixesIssue, issue34)) {
		t.Error("mentioning commit must not fix #34")
	}

	if !store.Has(graph.IRI(issue12, graph.RDFType, graph.ClassIssue)) {
		t.Error("missing issue type statement")
	}
	if !store.Has(graph.Lit(issue12, graph.PredIssueNumber, "12")) {
		t.Error("missing issue number attribute")
	}
}

func TestWriteCommitEntities(t *testing.T) {
	w, store, ids := newWriter()

	rec := history.CommitRecord{
		Repo: "widgets", Hash: "abcdef1234567890", Author: "Jane Doe",
		Message:  "Refactor renderer\n\nLonger body.",
		Modified: []string{"src/render.py"},
	}
	if err := w.WriteCommit(rec); err != nil {
		t.Fatalf("WriteCommit: %v", err)
	}

	repoID := mustID(t, ids, "widgets", identity.Repository, "")
	commitID := mustID(t, ids, "widgets", identity.Commit, rec.Hash)
	msgID := mustID(t, ids, "widgets", identity.CommitMessage, rec.Hash)
	fileID := mustID(t, ids, "widgets", identity.File, "src/render.py")

	if !store.Has(graph.Lit(commitID, graph.RDFSLabel, "abcdef1 Refactor renderer")) {
		t.Error("commit label should be short hash plus first message line")
	}
	if !store.Has(graph.Lit(commitID, graph.PredCommitHash, rec.Hash)) {
		t.Error("missing commit hash attribute")
	}
	if !store.Has(graph.IRI(repoID, graph.PredHasCommit, commitID)) ||
		!store.Has(graph.IRI(commitID, graph.PredIsCommitIn, repoID)) {
		t.Error("missing hasCommit/isCommitIn pair")
	}
	if !store.Has(graph.Lit(msgID, graph.PredMessageText, rec.Message)) {
		t.Error("message entity should carry the full message text")
	}
	if !store.Has(graph.IRI(commitID, graph.PredHasMessage, msgID)) ||
		!store.Has(graph.IRI(msgID, graph.PredIsMessageOf, commitID)) {
		t.Error("missing commit/message pair")
	}

	if !store.Has(graph.IRI(commitID, graph.PredModifies, fileID)) ||
		!store.Has(graph.IRI(fileID, graph.PredIsModifiedBy, commitID)) {
		t.Error("missing modifies/isModifiedBy pair")
	}
	// The file pass owns file type statements; the writer must not
	// create them from a modifies reference.
	if store.Has(graph.IRI(fileID, graph.RDFType, graph.ClassFile)) {
		t.Error("writer must not type files from history records")
	}
}

func TestCommitLabelTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := commitLabel("abcdef1234567890", long+"\nsecond line")
	want := "abcdef1 " + strings.Repeat("x", 60)
	if got != want {
		t.Errorf("commitLabel = %q, want %q", got, want)
	}
	if got := commitLabel("abc", "msg"); got != "abc msg" {
		t.Errorf("short hash label = %q, want %q", got, "abc msg")
	}
}

func TestMessageFixesIssues(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Fixes #12", true},
		{"RESOLVED the flake in #3", true},
		{"close #1", true},
		{"prefix #3 only mentions", false},
		{"refactoring, no refs", false},
	}
	for _, tt := range tests {
		if got := messageFixesIssues(tt.message); got != tt.want {
			t.Errorf("messageFixesIssues(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestEnsureIssueCompleteness(t *testing.T) {
	w, store, ids := newWriter()

	issueID := mustID(t, ids, "widgets", identity.Issue, "9")
	w.issueLabels[issueID] = "#9"

	w.EnsureIssueCompleteness()

	if !store.Has(graph.IRI(issueID, graph.RDFType, graph.ClassIssue)) {
		t.Error("post-pass should add the missing type statement")
	}
	if !store.Has(graph.Lit(issueID, graph.RDFSLabel, "#9")) {
		t.Error("post-pass should add the missing label statement")
	}

	before := store.Len()
	w.EnsureIssueCompleteness()
	if store.Len() != before {
		t.Error("post-pass must be idempotent")
	}
}
