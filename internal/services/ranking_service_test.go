package services

import (
	"testing"

	"github.com/devimpact/impactboard/internal/models"
	"github.com/devimpact/impactboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRankingService(contributors map[string]*models.ContributorStats) *RankingService {
	snapshot := &models.Snapshot{
		Contributors: contributors,
		PRs:          []*models.PullRequest{},
	}
	return NewRankingService(repositories.NewSnapshotRepository(snapshot), NewImpactScoreService())
}

func TestGetAllEngineersActivityFloor(t *testing.T) {
	service := newRankingService(map[string]*models.ContributorStats{
		"prolific": {
			PRsCreated:          10,
			TotalAdditions:      3000,
			AvgTimeToMergeHours: 12,
			ReviewsGiven:        20,
			PRsReviewed:         15,
		},
		"bot-like": {
			// High scores everywhere, but a single PR is below the floor
			PRsCreated:          1,
			TotalAdditions:      400,
			TotalFilesChanged:   500,
			AvgTimeToMergeHours: 1,
			ReviewsGiven:        50,
			PRsReviewed:         40,
		},
		"reviewer-only": {
			ReviewsGiven: 30,
			PRsReviewed:  25,
		},
	})

	ranked := service.GetAllEngineers()

	require.Len(t, ranked, 1)
	assert.Equal(t, "prolific", ranked[0].Username)
}

func TestGetAllEngineersSortedDescending(t *testing.T) {
	service := newRankingService(map[string]*models.ContributorStats{
		"low": {
			PRsCreated:          2,
			AvgTimeToMergeHours: 71,
		},
		"high": {
			PRsCreated:          20,
			TotalAdditions:      6000,
			TotalFilesChanged:   200,
			AvgTimeToMergeHours: 6,
			ReviewsGiven:        30,
			PRsReviewed:         12,
		},
		"mid": {
			PRsCreated:          5,
			TotalAdditions:      1500,
			TotalFilesChanged:   40,
			AvgTimeToMergeHours: 30,
			ReviewsGiven:        5,
			PRsReviewed:         5,
		},
	})

	ranked := service.GetAllEngineers()

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Username)
	assert.Equal(t, "mid", ranked[1].Username)
	assert.Equal(t, "low", ranked[2].Username)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].ImpactScore, ranked[i].ImpactScore)
	}
}

func TestGetAllEngineersStableTies(t *testing.T) {
	identical := func() *models.ContributorStats {
		return &models.ContributorStats{
			PRsCreated:          4,
			TotalAdditions:      1200,
			TotalFilesChanged:   30,
			AvgTimeToMergeHours: 20,
			ReviewsGiven:        8,
			PRsReviewed:         6,
		}
	}

	service := newRankingService(map[string]*models.ContributorStats{
		"zoe":   identical(),
		"alice": identical(),
		"mia":   identical(),
	})

	ranked := service.GetAllEngineers()

	require.Len(t, ranked, 3)
	assert.Equal(t, ranked[0].ImpactScore, ranked[1].ImpactScore)
	assert.Equal(t, ranked[1].ImpactScore, ranked[2].ImpactScore)

	// Contributors are scored in lexical username order; the stable sort
	// keeps that relative order for identical scores.
	assert.Equal(t, "alice", ranked[0].Username)
	assert.Equal(t, "mia", ranked[1].Username)
	assert.Equal(t, "zoe", ranked[2].Username)
}

func TestGetTopEngineersIsPrefixOfFullRanking(t *testing.T) {
	service := newRankingService(map[string]*models.ContributorStats{
		"a": {PRsCreated: 2, TotalAdditions: 400, AvgTimeToMergeHours: 10},
		"b": {PRsCreated: 8, TotalAdditions: 2500, AvgTimeToMergeHours: 8, ReviewsGiven: 10, PRsReviewed: 8},
		"c": {PRsCreated: 4, TotalAdditions: 900, AvgTimeToMergeHours: 40},
		"d": {PRsCreated: 3, AvgTimeToMergeHours: 60},
	})

	all := service.GetAllEngineers()
	require.Len(t, all, 4)

	for limit := 0; limit <= 6; limit++ {
		top := service.GetTopEngineers(limit)

		expected := len(all)
		if limit < expected {
			expected = limit
		}
		require.Len(t, top, expected, "limit %d", limit)

		for i, result := range top {
			assert.Equal(t, all[i].Username, result.Username)
		}
	}
}

func TestGetTopEngineersNegativeLimit(t *testing.T) {
	service := newRankingService(map[string]*models.ContributorStats{
		"a": {PRsCreated: 2},
	})

	assert.Empty(t, service.GetTopEngineers(-1))
}
