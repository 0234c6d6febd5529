package services

import (
	"farm-advisor/internal/artifact"
	"farm-advisor/internal/models"
)

// RainfallService serves the informational rainfall view. The regressor is
// optional; without it the view stays purely informational.
type RainfallService struct {
	model *artifact.RainfallModel
}

func NewRainfallService(model *artifact.RainfallModel) *RainfallService {
	return &RainfallService{model: model}
}

// Ready reports whether the rainfall regressor was loaded.
func (s *RainfallService) Ready() bool {
	return s.model != nil
}

// EstimateYear returns the per-month rainfall estimates for a year, or nil
// when no regressor is available.
func (s *RainfallService) EstimateYear(year int) []models.MonthlyRainfall {
	if s.model == nil {
		return nil
	}
	estimates := make([]models.MonthlyRainfall, 0, 12)
	for month := 1; month <= 12; month++ {
		estimates = append(estimates, models.MonthlyRainfall{
			Month:    month,
			Rainfall: s.model.Predict(year, month),
		})
	}
	return estimates
}
