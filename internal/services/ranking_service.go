package services

import (
	"sort"

	"github.com/devimpact/impactboard/internal/models"
	"github.com/devimpact/impactboard/internal/repositories"
)

// minPRsForRanking is the activity floor: contributors with fewer
// authored PRs have too few data points for the scores to mean anything
// and are easy to game, so they are excluded from the ranking entirely.
const minPRsForRanking = 2

// RankingService computes the impact ranking from the loaded snapshot.
// Every call recomputes from scratch; nothing is cached or stored.
type RankingService struct {
	snapshotRepo *repositories.SnapshotRepository
	impactScore  *ImpactScoreService
}

func NewRankingService(snapshotRepo *repositories.SnapshotRepository, impactScore *ImpactScoreService) *RankingService {
	return &RankingService{
		snapshotRepo: snapshotRepo,
		impactScore:  impactScore,
	}
}

// GetAllEngineers returns every eligible contributor ranked by impact
// score, descending. Contributors are scored in lexical username order
// and sorted with a stable sort, so two contributors with identical
// impact keep that underlying order.
func (s *RankingService) GetAllEngineers() []*models.ImpactResult {
	results := make([]*models.ImpactResult, 0, len(s.snapshotRepo.Usernames()))

	for _, username := range s.snapshotRepo.Usernames() {
		contributor, err := s.snapshotRepo.GetContributor(username)
		if err != nil {
			continue
		}
		if contributor.PRsCreated < minPRsForRanking {
			continue
		}
		results = append(results, s.impactScore.CalculateImpact(username, contributor))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ImpactScore > results[j].ImpactScore
	})

	return results
}

// GetTopEngineers returns the first limit entries of the full ranking.
// Callers are expected to clamp limit to a sane maximum before calling.
func (s *RankingService) GetTopEngineers(limit int) []*models.ImpactResult {
	ranked := s.GetAllEngineers()
	if limit < 0 {
		limit = 0
	}
	if limit < len(ranked) {
		return ranked[:limit]
	}
	return ranked
}
