package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// TrainingService submits training jobs to the managed platform and
// waits for them to reach a terminal state.
type TrainingService struct {
	platform ports.PlatformClient
	project  string
	poll     PollSettings
}

func NewTrainingService(platform ports.PlatformClient, project string, poll PollSettings) *TrainingService {
	return &TrainingService{platform: platform, project: project, poll: poll.withDefaults()}
}

// Submit sends a training job to the platform. The job ID is generated
// here so callers can poll before the platform echoes the job back.
func (s *TrainingService) Submit(ctx context.Context, input domain.TrainingInput) (*domain.TrainingJob, error) {
	if s.project == "" {
		return nil, domain.ErrMissingProject
	}
	if len(input.PackageURIs) == 0 || input.PythonModule == "" {
		return nil, domain.ErrInvalidJobSpec
	}

	job := &domain.TrainingJob{
		ID:        fmt.Sprintf("train_%s_%s", time.Now().UTC().Format("20060102_150405"), uuid.New().String()[:8]),
		State:     domain.JobStateQueued,
		Input:     input,
		CreatedAt: time.Now(),
	}

	submitted, err := s.platform.SubmitJob(ctx, s.project, job)
	if err != nil {
		return nil, fmt.Errorf("submit training job: %w", err)
	}

	log.WithField("job", submitted.ID).Info("training job submitted")
	return submitted, nil
}

func (s *TrainingService) Get(ctx context.Context, jobID string) (*domain.TrainingJob, error) {
	if s.project == "" {
		return nil, domain.ErrMissingProject
	}
	return s.platform.GetJob(ctx, s.project, jobID)
}

// Wait polls the job until it reaches a terminal state. A failed job
// returns ErrTrainingFailed wrapping the platform's message; the last
// observed job is returned either way.
func (s *TrainingService) Wait(ctx context.Context, jobID string) (*domain.TrainingJob, error) {
	if s.project == "" {
		return nil, domain.ErrMissingProject
	}

	var last *domain.TrainingJob
	err := pollUntil(ctx, s.poll, domain.ErrJobTimeout, func(ctx context.Context) (bool, error) {
		job, err := s.platform.GetJob(ctx, s.project, jobID)
		if err != nil {
			return false, fmt.Errorf("get training job %s: %w", jobID, err)
		}
		last = job
		return job.State.Terminal(), nil
	})
	if err != nil {
		return last, err
	}

	trainingJobsTotal.WithLabelValues(string(last.State)).Inc()

	switch last.State {
	case domain.JobStateFailed:
		return last, fmt.Errorf("%w: %s", domain.ErrTrainingFailed, last.ErrorMessage)
	case domain.JobStateCancelled:
		return last, fmt.Errorf("%w: cancelled", domain.ErrTrainingFailed)
	}
	return last, nil
}
