package fetcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/devimpact/impactboard/internal/models"
	"github.com/devimpact/impactboard/pkg/logger"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const (
	defaultRepo  = "PostHog/posthog"
	listPageSize = 30
)

// Fetcher collects merged pull requests and their reviews from the
// GitHub API and produces the snapshot document the scoring engine
// consumes.
type Fetcher struct {
	client *github.Client
	owner  string
	repo   string
}

// New creates a fetcher for the given repository. The token is optional
// but unauthenticated requests hit GitHub's low rate limit quickly.
func New(token, repo string) *Fetcher {
	client := github.NewClient(nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	}

	owner, name := parseRepo(repo)
	return &Fetcher{
		client: client,
		owner:  owner,
		repo:   name,
	}
}

// parseRepo accepts "https://github.com/owner/repo" or "owner/repo" and
// falls back to a default repository when the input is unusable
func parseRepo(repo string) (string, string) {
	repo = strings.TrimSuffix(strings.TrimSpace(repo), "/")
	if idx := strings.Index(repo, "github.com/"); idx != -1 {
		repo = repo[idx+len("github.com/"):]
	}
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		parts = strings.SplitN(defaultRepo, "/", 2)
	}
	return parts[0], parts[1]
}

// Repo returns the owner/repo the fetcher targets
func (f *Fetcher) Repo() string {
	return f.owner + "/" + f.repo
}

// FetchSnapshot fetches the merged PRs of the last days days (capped at
// limit), their reviews, and aggregates contributor stats into a
// snapshot document.
func (f *Fetcher) FetchSnapshot(ctx context.Context, days, limit int) (*models.Snapshot, error) {
	activities, err := f.fetchMergedPRs(ctx, days, limit)
	if err != nil {
		return nil, err
	}

	prs := make([]*models.PullRequest, len(activities))
	for i, activity := range activities {
		prs[i] = activity.PR
	}

	return &models.Snapshot{
		FetchedAt:    time.Now().UTC().Format(time.RFC3339),
		Repo:         f.Repo(),
		Contributors: AggregateContributors(activities),
		PRs:          prs,
	}, nil
}

// fetchMergedPRs pages through closed PRs in most-recently-updated order
// and keeps the merged ones until the cutoff or the limit is reached
func (f *Fetcher) fetchMergedPRs(ctx context.Context, days, limit int) ([]PullRequestActivity, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	activities := make([]PullRequestActivity, 0, limit)

	opts := &github.PullRequestListOptions{
		State:     "closed",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: listPageSize,
		},
	}

	for len(activities) < limit {
		var (
			prs  []*github.PullRequest
			resp *github.Response
		)
		err := f.withRateLimitRetry(ctx, func() error {
			var listErr error
			prs, resp, listErr = f.client.PullRequests.List(ctx, f.owner, f.repo, opts)
			return listErr
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s: %w", f.Repo(), err)
		}
		if len(prs) == 0 {
			break
		}

		for _, pr := range prs {
			if len(activities) >= limit {
				break
			}
			if pr.MergedAt == nil {
				continue
			}
			if pr.MergedAt.Time.Before(cutoff) {
				// Listing is newest-first, so everything beyond this point
				// is outside the observation window.
				return activities, nil
			}

			activity, err := f.fetchPullRequestActivity(ctx, pr.GetNumber())
			if err != nil {
				logger.WithError(err).Warnf("Skipping PR #%d", pr.GetNumber())
				continue
			}
			activities = append(activities, activity)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return activities, nil
}

// fetchPullRequestActivity fetches the full PR (the list endpoint omits
// additions/deletions/changed_files) and its review events
func (f *Fetcher) fetchPullRequestActivity(ctx context.Context, number int) (PullRequestActivity, error) {
	var pr *github.PullRequest
	err := f.withRateLimitRetry(ctx, func() error {
		var getErr error
		pr, _, getErr = f.client.PullRequests.Get(ctx, f.owner, f.repo, number)
		return getErr
	})
	if err != nil {
		return PullRequestActivity{}, fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	reviews, err := f.fetchReviews(ctx, number)
	if err != nil {
		return PullRequestActivity{}, err
	}

	return newPullRequestActivity(pr, reviews), nil
}

// fetchReviews pages through all review events of a PR
func (f *Fetcher) fetchReviews(ctx context.Context, number int) ([]*github.PullRequestReview, error) {
	var allReviews []*github.PullRequestReview
	opts := &github.ListOptions{
		PerPage: 100,
	}

	for {
		var (
			reviews []*github.PullRequestReview
			resp    *github.Response
		)
		err := f.withRateLimitRetry(ctx, func() error {
			var listErr error
			reviews, resp, listErr = f.client.PullRequests.ListReviews(ctx, f.owner, f.repo, number, opts)
			return listErr
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch reviews for PR #%d: %w", number, err)
		}
		allReviews = append(allReviews, reviews...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allReviews, nil
}

// withRateLimitRetry runs fn and, when GitHub reports a rate limit,
// sleeps until the reported reset time before retrying
func (f *Fetcher) withRateLimitRetry(ctx context.Context, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}

		var rateErr *github.RateLimitError
		if !errors.As(err, &rateErr) {
			return err
		}

		wait := time.Until(rateErr.Rate.Reset.Time) + time.Second
		if wait < time.Second {
			wait = time.Second
		}
		logger.Warnf("GitHub rate limit reached, waiting %s", wait.Round(time.Second))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// newPullRequestActivity converts a GitHub PR and its reviews into the
// snapshot record plus the review attribution the aggregation needs
func newPullRequestActivity(pr *github.PullRequest, reviews []*github.PullRequestReview) PullRequestActivity {
	record := &models.PullRequest{
		AuthorUsername: pr.GetUser().GetLogin(),
		Title:          pr.GetTitle(),
		FilesChanged:   pr.GetChangedFiles(),
		Additions:      pr.GetAdditions(),
		Deletions:      pr.GetDeletions(),
		CommentsCount:  pr.GetComments(),
		ReviewsCount:   len(reviews),
	}

	if pr.CreatedAt != nil {
		record.CreatedAt = &pr.CreatedAt.Time
	}
	if pr.MergedAt != nil {
		record.MergedAt = &pr.MergedAt.Time
		if pr.CreatedAt != nil {
			hours := pr.MergedAt.Time.Sub(pr.CreatedAt.Time).Hours()
			record.TimeToMergeHours = math.Round(hours*100) / 100
		}
	}

	events := make([]ReviewEvent, 0, len(reviews))
	seen := make(map[string]bool)
	for _, review := range reviews {
		login := review.GetUser().GetLogin()
		if login == "" {
			continue
		}
		events = append(events, ReviewEvent{
			Login:     login,
			Name:      review.GetUser().GetName(),
			AvatarURL: review.GetUser().GetAvatarURL(),
		})
		if !seen[login] {
			seen[login] = true
			record.Reviewers = append(record.Reviewers, login)
		}
	}

	return PullRequestActivity{
		PR:           record,
		Number:       pr.GetNumber(),
		AuthorName:   authorName(pr.GetUser()),
		AuthorAvatar: pr.GetUser().GetAvatarURL(),
		Reviews:      events,
	}
}

// authorName prefers the display name and falls back to the login
func authorName(user *github.User) string {
	if user.GetName() != "" {
		return user.GetName()
	}
	return user.GetLogin()
}
