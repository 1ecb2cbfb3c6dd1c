package services

import (
	"context"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// PredictionService requests online predictions. An empty version name
// targets the model's default version.
type PredictionService struct {
	platform ports.PlatformClient
	project  string
}

func NewPredictionService(platform ports.PlatformClient, project string) *PredictionService {
	return &PredictionService{platform: platform, project: project}
}

func (s *PredictionService) Predict(ctx context.Context, model, version string, instances [][]float64) ([]ports.Prediction, error) {
	if s.project == "" {
		return nil, domain.ErrMissingProject
	}
	if model == "" {
		return nil, domain.ErrInvalidModelName
	}
	if len(instances) == 0 {
		return nil, domain.ErrNoInstances
	}
	return s.platform.Predict(ctx, s.project, model, version, instances)
}
