// Package history extracts commit records from local git repositories.
package history

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitRecord is one commit's extracted history: its identifying
// metadata, the files it touched and the issue numbers its message
// references.
type CommitRecord struct {
	Repo      string
	Hash      string
	Message   string
	Timestamp int64
	Author    string
	Modified  []string
	Issues    []int
}

// Repository is the full extracted history of one local repository.
type Repository struct {
	Name      string
	Path      string
	OriginURL string
	Commits   []CommitRecord
}

// ScanRoot returns the immediate subdirectories of root that contain a
// .git directory, sorted by directory listing order.
func ScanRoot(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if info, err := os.Stat(filepath.Join(path, ".git")); err == nil && info.IsDir() {
			repos = append(repos, path)
		}
	}
	return repos, nil
}

// ExtractRepository reads every commit reachable from any ref of the
// repository at path. The repository name is the directory's base name.
func ExtractRepository(path string) (*Repository, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	name := filepath.Base(path)
	out := &Repository{
		Name:      name,
		Path:      path,
		OriginURL: originURL(repo),
	}

	iter, err := repo.Log(&gogit.LogOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", path, err)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		modified, err := modifiedFiles(c)
		if err != nil {
			slog.Warn("history.diff.skip", "repo", name, "commit", c.Hash.String(), "error", err)
		}
		out.Commits = append(out.Commits, CommitRecord{
			Repo:      name,
			Hash:      c.Hash.String(),
			Message:   c.Message,
			Timestamp: c.Author.When.Unix(),
			Author:    c.Author.Name,
			Modified:  modified,
			Issues:    IssueRefs(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits of %s: %w", path, err)
	}
	return out, nil
}

// modifiedFiles lists the paths a commit changed. Root commits report
// every file in their tree; merge commits report the union of the
// per-parent diffs.
func modifiedFiles(c *object.Commit) ([]string, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	if c.NumParents() == 0 {
		var files []string
		err := tree.Files().ForEach(func(f *object.File) error {
			files = append(files, f.Name)
			return nil
		})
		return files, err
	}

	seen := make(map[string]bool)
	var files []string
	err = c.Parents().ForEach(func(parent *object.Commit) error {
		parentTree, err := parent.Tree()
		if err != nil {
			return err
		}
		changes, err := parentTree.Diff(tree)
		if err != nil {
			return err
		}
		for _, ch := range changes {
			path := ch.To.Name
			if path == "" {
				path = ch.From.Name
			}
			if path == "" || seen[path] {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

var issueRef = regexp.MustCompile(`#(\d+)`)

// IssueRefs returns every #N reference in a commit message, in order of
// appearance. Duplicates are preserved.
func IssueRefs(message string) []int {
	var issues []int
	for _, m := range issueRef.FindAllStringSubmatch(message, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		issues = append(issues, n)
	}
	return issues
}

func originURL(repo *gogit.Repository) string {
	remote, err := repo.Remote("origin")
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return NormalizeRemoteURL(urls[0])
}

// NormalizeRemoteURL rewrites SSH-style remote URLs (git@host:path and
// ssh://git@host/path) to their HTTPS form. Other URLs pass through
// unchanged.
func NormalizeRemoteURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "ssh://git@"); ok {
		return "https://" + rest
	}
	if rest, ok := strings.CutPrefix(raw, "git@"); ok {
		if host, path, ok := strings.Cut(rest, ":"); ok {
			return "https://" + host + "/" + path
		}
	}
	return raw
}
