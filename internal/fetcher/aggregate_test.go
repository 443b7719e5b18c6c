package fetcher

import (
	"testing"

	"github.com/devimpact/impactboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateContributorsAuthorCounters(t *testing.T) {
	activities := []PullRequestActivity{
		{
			PR: &models.PullRequest{
				AuthorUsername:   "ada",
				FilesChanged:     5,
				Additions:        100,
				Deletions:        20,
				TimeToMergeHours: 10,
			},
			Number:       1,
			AuthorName:   "Ada Lovelace",
			AuthorAvatar: "https://example.com/ada.png",
		},
		{
			PR: &models.PullRequest{
				AuthorUsername:   "ada",
				FilesChanged:     3,
				Additions:        50,
				Deletions:        10,
				TimeToMergeHours: 20,
			},
			Number: 2,
		},
	}

	contributors := AggregateContributors(activities)

	require.Contains(t, contributors, "ada")
	ada := contributors["ada"]
	assert.Equal(t, "Ada Lovelace", ada.Name)
	assert.Equal(t, "https://example.com/ada.png", ada.AvatarURL)
	assert.Equal(t, 2, ada.PRsCreated)
	assert.Equal(t, 8, ada.TotalFilesChanged)
	assert.Equal(t, 150, ada.TotalAdditions)
	assert.Equal(t, 30, ada.TotalDeletions)
	assert.InDelta(t, 15.0, ada.AvgTimeToMergeHours, 0.001)
}

func TestAggregateContributorsReviewCounters(t *testing.T) {
	activities := []PullRequestActivity{
		{
			PR:     &models.PullRequest{AuthorUsername: "ada"},
			Number: 1,
			Reviews: []ReviewEvent{
				{Login: "bob", Name: "Bob"},
				{Login: "bob"}, // second event on the same PR
				{Login: "carol", AvatarURL: "https://example.com/carol.png"},
			},
		},
		{
			PR:     &models.PullRequest{AuthorUsername: "ada"},
			Number: 2,
			Reviews: []ReviewEvent{
				{Login: "bob"},
			},
		},
	}

	contributors := AggregateContributors(activities)

	bob := contributors["bob"]
	require.NotNil(t, bob)
	assert.Equal(t, 3, bob.ReviewsGiven)
	assert.Equal(t, 2, bob.PRsReviewed, "the same PR counts once no matter how many events")
	assert.Equal(t, "Bob", bob.Name)
	assert.LessOrEqual(t, bob.PRsReviewed, bob.ReviewsGiven)

	carol := contributors["carol"]
	require.NotNil(t, carol)
	assert.Equal(t, 1, carol.ReviewsGiven)
	assert.Equal(t, 1, carol.PRsReviewed)
	assert.Equal(t, "carol", carol.Name, "reviewers without a display name fall back to the login")
	assert.Equal(t, "https://example.com/carol.png", carol.AvatarURL)
}

func TestAggregateContributorsReviewerOnlyDefaults(t *testing.T) {
	activities := []PullRequestActivity{
		{
			PR:     &models.PullRequest{AuthorUsername: "ada"},
			Number: 7,
			Reviews: []ReviewEvent{
				{Login: "silentbob"},
			},
		},
	}

	contributors := AggregateContributors(activities)

	reviewer := contributors["silentbob"]
	require.NotNil(t, reviewer)
	assert.Equal(t, 0, reviewer.PRsCreated)
	assert.Equal(t, 0, reviewer.TotalAdditions)
	assert.InDelta(t, 0.0, reviewer.AvgTimeToMergeHours, 0.001, "no authored PRs means no merge time average")
}

func TestAggregateContributorsSkipsBots(t *testing.T) {
	activities := []PullRequestActivity{
		{
			PR:     &models.PullRequest{AuthorUsername: "dependabot[bot]", Additions: 500},
			Number: 1,
			Reviews: []ReviewEvent{
				{Login: "ada"},
			},
		},
		{
			PR:     &models.PullRequest{AuthorUsername: ""},
			Number: 2,
		},
	}

	contributors := AggregateContributors(activities)

	assert.NotContains(t, contributors, "dependabot[bot]")
	assert.NotContains(t, contributors, "")

	// Reviews on a bot's PR still count for the human reviewer
	require.Contains(t, contributors, "ada")
	assert.Equal(t, 1, contributors["ada"].ReviewsGiven)
}

func TestParseRepo(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedOwner string
		expectedRepo  string
	}{
		{name: "Owner slash repo", input: "acme/widgets", expectedOwner: "acme", expectedRepo: "widgets"},
		{name: "Full URL", input: "https://github.com/acme/widgets", expectedOwner: "acme", expectedRepo: "widgets"},
		{name: "Trailing slash", input: "https://github.com/acme/widgets/", expectedOwner: "acme", expectedRepo: "widgets"},
		{name: "Empty falls back to default", input: "", expectedOwner: "PostHog", expectedRepo: "posthog"},
		{name: "No slash falls back to default", input: "widgets", expectedOwner: "PostHog", expectedRepo: "posthog"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo := parseRepo(tc.input)
			assert.Equal(t, tc.expectedOwner, owner)
			assert.Equal(t, tc.expectedRepo, repo)
		})
	}
}
