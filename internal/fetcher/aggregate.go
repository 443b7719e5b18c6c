package fetcher

import (
	"math"
	"strings"

	"github.com/devimpact/impactboard/internal/models"
)

// ReviewEvent is one review submission on a pull request. The same
// reviewer appears once per event, repeats included.
type ReviewEvent struct {
	Login     string
	Name      string
	AvatarURL string
}

// PullRequestActivity pairs a snapshot PR record with the attribution
// details the contributor aggregation needs
type PullRequestActivity struct {
	PR           *models.PullRequest
	Number       int
	AuthorName   string
	AuthorAvatar string
	Reviews      []ReviewEvent
}

// contributorAccumulator collects per-login counters while the corpus is
// scanned. Finalized into an immutable ContributorStats once scanning
// completes; the published records are never mutated afterwards.
type contributorAccumulator struct {
	name              string
	avatarURL         string
	prsCreated        int
	totalFilesChanged int
	totalAdditions    int
	totalDeletions    int
	mergeTimes        []float64
	reviewsGiven      int
	prsReviewed       map[int]struct{}
}

func newContributorAccumulator() *contributorAccumulator {
	return &contributorAccumulator{
		prsReviewed: make(map[int]struct{}),
	}
}

// finalize publishes the accumulated counters as a ContributorStats.
// The average merge time covers authored PRs only and is 0 for
// contributors who only review.
func (a *contributorAccumulator) finalize() *models.ContributorStats {
	var avgMergeTime float64
	if len(a.mergeTimes) > 0 {
		total := 0.0
		for _, hours := range a.mergeTimes {
			total += hours
		}
		avgMergeTime = math.Round(total/float64(len(a.mergeTimes))*100) / 100
	}

	return &models.ContributorStats{
		Name:                a.name,
		AvatarURL:           a.avatarURL,
		PRsCreated:          a.prsCreated,
		TotalFilesChanged:   a.totalFilesChanged,
		TotalAdditions:      a.totalAdditions,
		TotalDeletions:      a.totalDeletions,
		AvgTimeToMergeHours: avgMergeTime,
		ReviewsGiven:        a.reviewsGiven,
		PRsReviewed:         len(a.prsReviewed),
	}
}

// AggregateContributors builds the per-login contributor stats from the
// fetched corpus. Entries are created with zero counters on first
// reference through an explicit upsert-or-initialize step; bot accounts
// and PRs without a resolvable author are skipped for authorship.
func AggregateContributors(activities []PullRequestActivity) map[string]*models.ContributorStats {
	accumulators := make(map[string]*contributorAccumulator)

	getOrCreate := func(login string) *contributorAccumulator {
		acc, exists := accumulators[login]
		if !exists {
			acc = newContributorAccumulator()
			accumulators[login] = acc
		}
		return acc
	}

	for _, activity := range activities {
		login := activity.PR.AuthorUsername
		if login != "" && !strings.HasSuffix(login, "[bot]") {
			acc := getOrCreate(login)
			if acc.name == "" {
				acc.name = activity.AuthorName
			}
			if acc.avatarURL == "" {
				acc.avatarURL = activity.AuthorAvatar
			}
			acc.prsCreated++
			acc.totalFilesChanged += activity.PR.FilesChanged
			acc.totalAdditions += activity.PR.Additions
			acc.totalDeletions += activity.PR.Deletions
			acc.mergeTimes = append(acc.mergeTimes, activity.PR.TimeToMergeHours)
		}

		for _, review := range activity.Reviews {
			if review.Login == "" {
				continue
			}
			acc := getOrCreate(review.Login)
			acc.reviewsGiven++
			acc.prsReviewed[activity.Number] = struct{}{}
			if acc.name == "" {
				if review.Name != "" {
					acc.name = review.Name
				} else {
					acc.name = review.Login
				}
			}
			if acc.avatarURL == "" {
				acc.avatarURL = review.AvatarURL
			}
		}
	}

	contributors := make(map[string]*models.ContributorStats, len(accumulators))
	for login, acc := range accumulators {
		contributors[login] = acc.finalize()
	}
	return contributors
}
