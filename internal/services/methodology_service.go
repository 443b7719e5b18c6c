package services

import (
	"github.com/devimpact/impactboard/internal/models"
)

// MethodologyService serves the static description of the scoring
// methodology for UI display. The payload is a literal constant, not
// derived from data.
type MethodologyService struct{}

func NewMethodologyService() *MethodologyService {
	return &MethodologyService{}
}

var methodology = &models.Methodology{
	Overview: "Impact measured across four dimensions with weighted scoring. Avoids vanity metrics like lines of code.",
	Dimensions: []models.MethodologyDimension{
		{
			Name:        "Code Quality",
			Weight:      0.3,
			Description: "Fast merge time, reasonable PR size, review activity",
			Signals: []string{
				"Merge efficiency (lower time = higher quality)",
				"PR size optimization (200-500 lines sweet spot)",
				"Review engagement (understands quality standards)",
			},
		},
		{
			Name:        "Delivery Velocity",
			Weight:      0.3,
			Description: "Consistent delivery of complex work",
			Signals: []string{
				"PRs per month (consistency)",
				"Files changed per PR (complexity handling)",
			},
		},
		{
			Name:        "Collaboration",
			Weight:      0.2,
			Description: "Helping teammates through code reviews",
			Signals: []string{
				"Reviews given (volume)",
				"Comments per PR reviewed (depth)",
			},
		},
		{
			Name:        "Technical Leadership",
			Weight:      0.2,
			Description: "Code ownership and balanced contributions",
			Signals: []string{
				"Files touched (ownership breadth)",
				"Both authoring and reviewing (technical authority)",
			},
		},
	},
	Philosophy: "This approach resists gaming. You can't just spam commits, make tiny PRs, or rubber-stamp reviews. Real impact requires quality code, consistent delivery, helpful reviews, and technical ownership.",
}

// GetMethodology returns the scoring methodology document
func (s *MethodologyService) GetMethodology() *models.Methodology {
	return methodology
}
