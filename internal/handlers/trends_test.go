package handlers

import (
	"testing"
	"time"

	"github.com/devimpact/impactboard/internal/models"
	"github.com/devimpact/impactboard/internal/repositories"
	"github.com/devimpact/impactboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrendsRouter(contributors map[string]*models.ContributorStats, prs []*models.PullRequest) *gin.Engine {
	snapshot := &models.Snapshot{
		Repo:         "acme/widgets",
		Contributors: contributors,
		PRs:          prs,
	}
	repo := repositories.NewSnapshotRepository(snapshot)
	rankingService := services.NewRankingService(repo, services.NewImpactScoreService())
	trendsHandler := NewTrendsHandler(rankingService, services.NewTrendService(repo))

	router := gin.New()
	router.GET("/api/trends", trendsHandler.Trends)
	return router
}

func mergedAt(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func TestTrendsDefaultTop(t *testing.T) {
	contributors := make(map[string]*models.ContributorStats)
	for _, username := range []string{"ada", "bob", "cleo", "dan", "eve", "fin", "gus"} {
		contributors[username] = &models.ContributorStats{
			PRsCreated:     3,
			TotalAdditions: 300,
			ReviewsGiven:   5,
			PRsReviewed:    4,
		}
	}
	router := newTrendsRouter(contributors, []*models.PullRequest{
		{AuthorUsername: "ada", MergedAt: mergedAt(t, "2024-03-05T10:00:00Z")},
		{AuthorUsername: "gus", MergedAt: mergedAt(t, "2024-03-06T10:00:00Z")},
	})

	var response models.TrendsResponse
	getJSON(t, router, "/api/trends", &response)

	// Default keeps the top five ranked engineers only
	require.Len(t, response.Engineers, 5)
	require.Len(t, response.Series, 1)
	assert.Equal(t, "Mar 04", response.Series[0].Week)
}

func TestTrendsTopClamped(t *testing.T) {
	contributors := make(map[string]*models.ContributorStats)
	for i := 0; i < 15; i++ {
		contributors[string(rune('a'+i))+"-dev"] = &models.ContributorStats{
			PRsCreated:     2 + i,
			TotalAdditions: 100 * i,
			ReviewsGiven:   i,
			PRsReviewed:    i,
		}
	}
	router := newTrendsRouter(contributors, []*models.PullRequest{})

	var response models.TrendsResponse
	getJSON(t, router, "/api/trends?top=50", &response)

	assert.Len(t, response.Engineers, 10)
	assert.Empty(t, response.Series)
}

func TestTrendsDenseRows(t *testing.T) {
	contributors := map[string]*models.ContributorStats{
		"ada": {PRsCreated: 5, TotalAdditions: 500, ReviewsGiven: 5, PRsReviewed: 4},
		"bob": {PRsCreated: 3, TotalAdditions: 200, ReviewsGiven: 2, PRsReviewed: 2},
	}
	router := newTrendsRouter(contributors, []*models.PullRequest{
		{AuthorUsername: "ada", MergedAt: mergedAt(t, "2024-03-05T10:00:00Z")},
		{AuthorUsername: "ada", MergedAt: mergedAt(t, "2024-03-07T10:00:00Z")},
		{AuthorUsername: "bob", MergedAt: mergedAt(t, "2024-03-12T10:00:00Z")},
	})

	var response models.TrendsResponse
	getJSON(t, router, "/api/trends?top=2", &response)

	require.Len(t, response.Series, 2)
	// Every row carries a count for every tracked engineer
	assert.Equal(t, map[string]int{"ada": 2, "bob": 0}, response.Series[0].Counts)
	assert.Equal(t, map[string]int{"ada": 0, "bob": 1}, response.Series[1].Counts)
}
