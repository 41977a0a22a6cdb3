// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// AIClassifier is the optional text-classification capability used to
// break keyword ties. Implementations must treat every failure as
// recoverable: callers fall back to rule-based results and never
// propagate classifier errors.
type AIClassifier interface {
	// Classify maps an epic's title and description onto a taxonomy
	// category. An empty category with a nil error is treated the same
	// as an error: no usable answer.
	Classify(ctx context.Context, title, description string) (schema.Category, error)
}

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

// String returns the canonical owner/name form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// CommitSource defines the operations needed to retrieve a developer's
// commit history from a version-control host. This keeps the collection
// logic testable without network access.
type CommitSource interface {
	// UserRepos lists a user's repositories, most recently pushed first,
	// bounded to limit entries.
	UserRepos(ctx context.Context, username string, limit int) ([]RepoRef, error)

	// RepoCommits lists commits authored by author in the given
	// repository, newest first, bounded to max entries. The returned
	// records carry no file-level detail.
	RepoCommits(ctx context.Context, repo RepoRef, author string, max int) ([]schema.CommitRecord, error)

	// CommitDetail fetches one commit with its file list and line stats.
	CommitDetail(ctx context.Context, repo RepoRef, sha string) (*schema.CommitRecord, error)
}

// ProfileStore persists analyzed developer profiles and assignment runs
// across CLI invocations. Implementations backed by NoneBackend are
// no-ops that never error.
type ProfileStore interface {
	// SaveProfile upserts a developer's analysis, replacing any previous
	// one wholesale.
	SaveProfile(profile *schema.DeveloperProfile) error

	// GetProfile returns the stored profile for a username, or nil when
	// none exists.
	GetProfile(username string) (*schema.DeveloperProfile, error)

	// ListProfiles returns all stored usernames.
	ListProfiles() ([]string, error)

	// SaveAssignmentRun records a completed assignment run with its
	// flattened per-assignment rows and returns the run identifier.
	SaveAssignmentRun(result *schema.AssignmentResult) (int64, error)

	// Close releases the underlying database handle.
	Close() error
}
