package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v69/github"
	"golang.org/x/oauth2"
)

// StatSync pulls commit activity from a GitHub repository so per-member
// output can show delivery evidence next to completion rates.
type StatSync struct {
	client *gh.Client
}

// NewStatSync builds a client. An empty token yields an unauthenticated
// client, which works for public repositories at a lower rate limit.
func NewStatSync(ctx context.Context, token string) *StatSync {
	if token == "" {
		return &StatSync{client: gh.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &StatSync{client: gh.NewClient(oauth2.NewClient(ctx, ts))}
}

// CommitActivity returns commit counts per author login for the repository
// since the given cutoff. Commits without a resolvable GitHub user are
// grouped under the commit author name.
func (s *StatSync) CommitActivity(ctx context.Context, owner, repo string, since time.Time) (map[string]int, error) {
	counts := make(map[string]int)

	opts := &gh.CommitsListOptions{
		Since:       since,
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		commits, resp, err := s.client.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list commits for %s/%s: %w", owner, repo, err)
		}

		for _, c := range commits {
			login := c.GetAuthor().GetLogin()
			if login == "" {
				login = c.GetCommit().GetAuthor().GetName()
			}
			if login == "" {
				continue
			}
			counts[login]++
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return counts, nil
}
