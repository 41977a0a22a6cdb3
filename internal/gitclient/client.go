// Package gitclient retrieves commit histories from GitHub and turns them
// into developer profiles. The GitHub dependency sits behind
// contract.CommitSource so the collection logic stays testable offline.
package gitclient

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/time/rate"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// maxPerPage is the GitHub API page size ceiling.
const maxPerPage = 100

// Client talks to the GitHub REST API with client-side rate limiting.
// It implements contract.CommitSource.
type Client struct {
	client  *github.Client
	limiter *rate.Limiter
}

var _ contract.CommitSource = (*Client)(nil)

// NewClient builds a GitHub client. An empty token falls back to
// unauthenticated access with its much lower API quota.
func NewClient(token string, rateLimit int) *Client {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if rateLimit <= 0 {
		rateLimit = contract.DefaultRateLimit
	}
	return &Client{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
	}
}

// UserRepos lists the user's repositories, most recently pushed first.
func (c *Client) UserRepos(ctx context.Context, username string, limit int) ([]contract.RepoRef, error) {
	opts := &github.RepositoryListOptions{
		Sort:        "pushed",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: pageSize(limit)},
	}

	var refs []contract.RepoRef
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		repos, resp, err := c.client.Repositories.List(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("list repos for %s: %w", username, err)
		}

		for _, repo := range repos {
			refs = append(refs, contract.RepoRef{
				Owner: repo.GetOwner().GetLogin(),
				Name:  repo.GetName(),
			})
			if len(refs) == limit {
				return refs, nil
			}
		}

		if resp.NextPage == 0 {
			return refs, nil
		}
		opts.Page = resp.NextPage
	}
}

// RepoCommits lists commits authored by author in repo, newest first.
func (c *Client) RepoCommits(ctx context.Context, repo contract.RepoRef, author string, max int) ([]schema.CommitRecord, error) {
	opts := &github.CommitsListOptions{
		Author:      author,
		ListOptions: github.ListOptions{PerPage: pageSize(max)},
	}

	var records []schema.CommitRecord
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		commits, resp, err := c.client.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("list commits in %s: %w", repo, err)
		}

		for _, commit := range commits {
			records = append(records, mapCommit(commit))
			if len(records) == max {
				return records, nil
			}
		}

		if resp.NextPage == 0 {
			return records, nil
		}
		opts.Page = resp.NextPage
	}
}

// CommitDetail fetches one commit including its file list and line stats.
func (c *Client) CommitDetail(ctx context.Context, repo contract.RepoRef, sha string) (*schema.CommitRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	commit, _, err := c.client.Repositories.GetCommit(ctx, repo.Owner, repo.Name, sha, nil)
	if err != nil {
		return nil, fmt.Errorf("get commit %s in %s: %w", sha, repo, err)
	}

	record := mapCommit(commit)
	if commit.Stats != nil {
		record.Stats = &schema.CommitStats{
			Additions: commit.Stats.GetAdditions(),
			Deletions: commit.Stats.GetDeletions(),
		}
	}
	for _, f := range commit.Files {
		record.Files = append(record.Files, schema.FileChange{
			Filename:  f.GetFilename(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
		})
	}
	return &record, nil
}

// mapCommit converts the API commit into the shallow record form. The
// GitHub account login is preferred as author; commits pushed under an
// unlinked email fall back to the git author name.
func mapCommit(commit *github.RepositoryCommit) schema.CommitRecord {
	author := commit.GetAuthor().GetLogin()
	if author == "" {
		author = commit.GetCommit().GetAuthor().GetName()
	}
	return schema.CommitRecord{
		SHA:       commit.GetSHA(),
		Author:    author,
		Timestamp: commit.GetCommit().GetAuthor().GetDate().Time,
		Message:   commit.GetCommit().GetMessage(),
	}
}

func pageSize(want int) int {
	if want > 0 && want < maxPerPage {
		return want
	}
	return maxPerPage
}
