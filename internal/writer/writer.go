// Package writer applies extracted history and code records to the
// graph store, minting identifiers through the identity registry and
// keeping type/label emission idempotent.
package writer

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/history"
	"github.com/shama-llama/semantic-web-kms/internal/identity"
)

// Writer serializes all statement insertion behind one mutex: the
// "already typed?" check followed by an insert must be atomic per
// identifier, and workers call the writer concurrently.
type Writer struct {
	mu    sync.Mutex
	store graph.Store
	ids   *identity.Registry

	// issueLabels remembers every issue identifier referenced during
	// the run, for the completeness post-pass.
	issueLabels map[string]string
}

// New creates a writer over the given store and identity registry.
func New(store graph.Store, ids *identity.Registry) *Writer {
	return &Writer{
		store:       store,
		ids:         ids,
		issueLabels: make(map[string]string),
	}
}

// fixKeywords mark a commit message as fixing the issues it references
// rather than merely mentioning them.
var fixKeywords = map[string]bool{
	"fix": true, "fixes": true, "fixed": true,
	"close": true, "closes": true, "closed": true,
	"resolve": true, "resolves": true, "resolved": true,
}

// messageFixesIssues reports whether any word of the message is a fix
// keyword. The scan covers the whole message, so a message naming two
// issues near one "fixes" marks both as fixed.
func messageFixesIssues(message string) bool {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
	for _, w := range words {
		if fixKeywords[w] {
			return true
		}
	}
	return false
}

// WriteRepository emits the repository's own statements: type, label,
// normalized origin URL and the contributor enumeration over its full
// history.
func (w *Writer) WriteRepository(repo *history.Repository) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	repoID, err := w.ids.IdentifierFor(repo.Name, identity.Repository, "")
	if err != nil {
		return fmt.Errorf("repository %s: %w", repo.Name, err)
	}
	w.ensureTyped(repoID, graph.ClassRepository, repo.Name)

	if repo.OriginURL != "" {
		w.store.Add(graph.Lit(repoID, graph.PredRepositoryURL, repo.OriginURL))
	}

	for _, c := range repo.Commits {
		if c.Author == "" {
			continue
		}
		contribID := w.ids.ContributorIdentifier(c.Author)
		w.ensureTyped(contribID, graph.ClassContributor, identity.NormalizeContributorName(c.Author))
		w.store.Add(graph.IRI(repoID, graph.PredHasContributor, contribID))
		w.store.Add(graph.IRI(contribID, graph.PredContributesTo, repoID))
	}
	return nil
}

// WriteCommit emits one commit's statements: the commit entity and its
// message entity, the committer and repository links, issue references
// and per-file modifies pairs. File identifiers are linked without
// creating file type or label statements; the file pass owns those.
func (w *Writer) WriteCommit(rec history.CommitRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	repoID, err := w.ids.IdentifierFor(rec.Repo, identity.Repository, "")
	if err != nil {
		return fmt.Errorf("commit %s: %w", rec.Hash, err)
	}
	commitID, err := w.ids.IdentifierFor(rec.Repo, identity.Commit, rec.Hash)
	if err != nil {
		return fmt.Errorf("commit %s: %w", rec.Hash, err)
	}

	w.ensureTyped(commitID, graph.ClassCommit, commitLabel(rec.Hash, rec.Message))
	w.store.Add(graph.Lit(commitID, graph.PredCommitHash, rec.Hash))
	w.store.Add(graph.Lit(commitID, graph.PredCommitTimestamp, strconv.FormatInt(rec.Timestamp, 10)))

	if rec.Author != "" {
		contribID := w.ids.ContributorIdentifier(rec.Author)
		w.ensureTyped(contribID, graph.ClassContributor, identity.NormalizeContributorName(rec.Author))
		w.store.Add(graph.IRI(commitID, graph.PredCommittedBy, contribID))
		w.store.Add(graph.IRI(contribID, graph.PredCommitted, commitID))
	}

	msgID, err := w.ids.IdentifierFor(rec.Repo, identity.CommitMessage, rec.Hash)
	if err != nil {
		return fmt.Errorf("commit %s: %w", rec.Hash, err)
	}
	w.ensureTyped(msgID, graph.ClassCommitMessage, commitLabel(rec.Hash, rec.Message))
	w.store.Add(graph.Lit(msgID, graph.PredMessageText, rec.Message))
	w.store.Add(graph.IRI(commitID, graph.PredHasMessage, msgID))
	w.store.Add(graph.IRI(msgID, graph.PredIsMessageOf, commitID))

	w.store.Add(graph.IRI(repoID, graph.PredHasCommit, commitID))
	w.store.Add(graph.IRI(commitID, graph.PredIsCommitIn, repoID))

	fixes := messageFixesIssues(rec.Message)
	for _, issue := range rec.Issues {
		number := strconv.Itoa(issue)
		issueID, err := w.ids.IdentifierFor(rec.Repo, identity.Issue, number)
		if err != nil {
			return fmt.Errorf("commit %s issue #%s: %w", rec.Hash, number, err)
		}
		label := "#" + number
		w.issueLabels[issueID] = label
		w.ensureTyped(issueID, graph.ClassIssue, label)
		w.store.Add(graph.Lit(issueID, graph.PredIssueNumber, number))
		w.store.Add(graph.IRI(commitID, graph.PredAddressesIssue, issueID))
		w.store.Add(graph.IRI(issueID, graph.PredIssueAddressedBy, commitID))
		if fixes {
			w.store.Add(graph.IRI(commitID, graph.PredFixesIssue, issueID))
			w.store.Add(graph.IRI(issueID, graph.PredIssueFixedBy, commitID))
		}
	}

	for _, path := range rec.Modified {
		fileID, err := w.ids.IdentifierFor(rec.Repo, identity.File, path)
		if err != nil {
			return fmt.Errorf("commit %s file %s: %w", rec.Hash, path, err)
		}
		w.store.Add(graph.IRI(commitID, graph.PredModifies, fileID))
		w.store.Add(graph.IRI(fileID, graph.PredIsModifiedBy, commitID))
	}
	return nil
}

// EnsureIssueCompleteness re-checks every issue identifier referenced
// during the run and adds any type or label statement still missing, so
// processing order can never leave a dangling issue reference.
func (w *Writer) EnsureIssueCompleteness() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for issueID, label := range w.issueLabels {
		typeStmt := graph.IRI(issueID, graph.RDFType, graph.ClassIssue)
		if !w.store.Has(typeStmt) {
			w.store.Add(typeStmt)
		}
		if !w.hasLabel(issueID) {
			w.store.Add(graph.Lit(issueID, graph.RDFSLabel, label))
		}
	}
}

// ensureTyped emits type and label statements for an identifier unless
// it already carries them. Callers hold w.mu.
func (w *Writer) ensureTyped(id, class, label string) {
	typeStmt := graph.IRI(id, graph.RDFType, class)
	if !w.store.Has(typeStmt) {
		w.store.Add(typeStmt)
	}
	if label != "" && !w.hasLabel(id) {
		w.store.Add(graph.Lit(id, graph.RDFSLabel, label))
	}
}

func (w *Writer) hasLabel(id string) bool {
	for _, st := range w.store.BySubject(id) {
		if st.Predicate == graph.RDFSLabel {
			return true
		}
	}
	return false
}

// commitLabel renders a commit's human-readable label: the 7-character
// short hash plus the first message line truncated at 60 runes.
func commitLabel(hash, message string) string {
	short := hash
	if len(short) > 7 {
		short = short[:7]
	}
	line, _, _ := strings.Cut(message, "\n")
	runes := []rune(strings.TrimSpace(line))
	if len(runes) > 60 {
		runes = runes[:60]
	}
	if len(runes) == 0 {
		return short
	}
	return short + " " + string(runes)
}
