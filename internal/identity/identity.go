// Package identity mints the stable IRIs that name every entity in the
// graph. The same logical entity always maps to the same IRI, within a
// run and across re-runs over the same inputs.
//
// Scheme:
//   - repository:  <base>/<repo>
//   - file:        <base>/<repo>/<path>
//   - commit:      <base>/<repo>/commit/<hash>   (message entity: +"_msg")
//   - issue:       <base>/<repo>/issue/<n>
//   - contributor: <base>/contributor_<normalizedName>
//
// Every variable segment is percent-encoded, so distinct inputs cannot
// collide (a path containing "/" never merges with a nested path).
package identity

import (
	"errors"
	"fmt"
	"net/url"
)

// DefaultBase is the IRI prefix used when no base is configured.
const DefaultBase = "http://semantic-web-kms.org/wdo"

// Kind selects the identifier layout for an entity.
type Kind int

const (
	Repository Kind = iota
	File
	Commit
	CommitMessage
	Issue
	Contributor
)

// ErrEmptyKey is returned when a non-repository identifier is requested
// with an empty local key.
var ErrEmptyKey = errors.New("identity: empty local key")

// IdentifierFor builds the IRI for a (repository, kind, localKey) tuple.
// The local key is the entity's name within the repository: the file
// path, commit hash, issue number or raw contributor name. It must be
// non-empty for every kind except Repository.
func (r *Registry) IdentifierFor(repoName string, kind Kind, localKey string) (string, error) {
	if kind != Repository && localKey == "" {
		return "", fmt.Errorf("%w (repo %q, kind %d)", ErrEmptyKey, repoName, kind)
	}
	repo := r.base + "/" + encode(repoName)
	switch kind {
	case Repository:
		return repo, nil
	case File:
		return repo + "/" + encode(localKey), nil
	case Commit:
		return repo + "/commit/" + encode(localKey), nil
	case CommitMessage:
		return repo + "/commit/" + encode(localKey) + "_msg", nil
	case Issue:
		return repo + "/issue/" + encode(localKey), nil
	case Contributor:
		return r.ContributorIdentifier(localKey), nil
	}
	return "", fmt.Errorf("identity: unknown kind %d", kind)
}

// CodeEntityIdentifier names a code construct inside a file. The
// fragment is the construct's qualified name within the file, e.g.
// "Widget.render" for a method or "parse#L42" for an anonymous capture.
func (r *Registry) CodeEntityIdentifier(repoName, path, fragment string) (string, error) {
	if path == "" || fragment == "" {
		return "", fmt.Errorf("%w (repo %q, path %q, fragment %q)", ErrEmptyKey, repoName, path, fragment)
	}
	fileID, err := r.IdentifierFor(repoName, File, path)
	if err != nil {
		return "", err
	}
	return fileID + "#" + encode(fragment), nil
}

// encode percent-encodes a path segment. url.PathEscape escapes "/",
// " ", "#" and every other byte unsafe inside an IRI segment, and is
// invertible, so distinct raw keys stay distinct.
func encode(s string) string {
	return url.PathEscape(s)
}
