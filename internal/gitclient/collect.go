package gitclient

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abdulahadd002/epic-dev-assignment/core"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// sourcedCommit pairs a commit with the repository it came from, so the
// detail pass knows where to fetch from in multi-repo mode.
type sourcedCommit struct {
	repo   contract.RepoRef
	record schema.CommitRecord
}

// CollectCommits gathers a developer's commit history. With Owner and Repo
// configured it scans that single repository up to MaxCommits; otherwise it
// walks the developer's ReposPerUser most recently pushed repositories,
// taking CommitsPerRepo from each. The first DetailCap commits are then
// upgraded with file-level detail. Per-repo and per-commit failures degrade
// with a warning instead of aborting the whole collection.
func CollectCommits(ctx context.Context, src contract.CommitSource, cfg *contract.Config, username string) ([]schema.CommitRecord, []string, error) {
	var (
		commits []sourcedCommit
		repos   []string
	)

	if cfg.Owner != "" && cfg.Repo != "" {
		repo := contract.RepoRef{Owner: cfg.Owner, Name: cfg.Repo}
		records, err := src.RepoCommits(ctx, repo, username, cfg.MaxCommits)
		if err != nil {
			return nil, nil, err
		}
		for _, record := range records {
			commits = append(commits, sourcedCommit{repo: repo, record: record})
		}
		repos = append(repos, repo.String())
	} else {
		refs, err := src.UserRepos(ctx, username, cfg.ReposPerUser)
		if err != nil {
			return nil, nil, err
		}
		for _, repo := range refs {
			records, err := src.RepoCommits(ctx, repo, username, cfg.CommitsPerRepo)
			if err != nil {
				contract.LogWarn(fmt.Sprintf("skipping %s for %s", repo, username), err)
				continue
			}
			for _, record := range records {
				commits = append(commits, sourcedCommit{repo: repo, record: record})
			}
			repos = append(repos, repo.String())
		}
	}

	detailLimit := cfg.DetailCap
	if detailLimit > len(commits) {
		detailLimit = len(commits)
	}
	for i := 0; i < detailLimit; i++ {
		detail, err := src.CommitDetail(ctx, commits[i].repo, commits[i].record.SHA)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("no detail for %s in %s", commits[i].record.SHA, commits[i].repo), err)
			continue
		}
		commits[i].record = *detail
	}

	records := make([]schema.CommitRecord, 0, len(commits))
	for i := range commits {
		records = append(records, commits[i].record)
	}
	return records, repos, nil
}

// AnalyzeDeveloper builds one developer's full profile from their commit
// history.
func AnalyzeDeveloper(ctx context.Context, src contract.CommitSource, cfg *contract.Config, username string) (*schema.DeveloperProfile, error) {
	records, repos, err := CollectCommits(ctx, src, cfg, username)
	if err != nil {
		return nil, fmt.Errorf("collect commits for %s: %w", username, err)
	}

	profile := &schema.DeveloperProfile{
		Username: username,
		Avatar:   "https://github.com/" + username + ".png",
		Analysis: core.AnalyzeCommits(records, cfg.DetailCap),
	}
	if cfg.Owner != "" && cfg.Repo != "" {
		profile.Owner = cfg.Owner
		profile.Repo = cfg.Repo
	} else {
		profile.ReposAnalyzed = repos
	}
	return profile, nil
}

// AnalyzeDevelopers profiles a batch of developers concurrently, bounded to
// cfg.Workers fetches in flight. A developer whose analysis fails is logged
// and dropped; input order is preserved among the survivors. All developers
// failing is an error.
func AnalyzeDevelopers(ctx context.Context, src contract.CommitSource, cfg *contract.Config, usernames []string) ([]schema.DeveloperProfile, error) {
	results := make([]*schema.DeveloperProfile, len(usernames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, username := range usernames {
		g.Go(func() error {
			profile, err := AnalyzeDeveloper(ctx, src, cfg, username)
			if err != nil {
				contract.LogWarn("skipping developer "+username, err)
				return nil
			}
			results[i] = profile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profiles := make([]schema.DeveloperProfile, 0, len(usernames))
	for _, profile := range results {
		if profile != nil {
			profiles = append(profiles, *profile)
		}
	}
	if len(profiles) == 0 {
		return nil, errors.New("no developer could be analyzed")
	}
	return profiles, nil
}
