package ports

import (
	"context"

	"ml-lifecycle-service/internal/core/domain"
)

// Prediction is one scored instance from the online prediction API.
type Prediction struct {
	Probability float64 `json:"probability"`
	Class       int     `json:"class"`
}

// PlatformClient is the management and prediction surface of the
// managed ML platform. Deletes are asynchronous: DeleteVersion returns
// an operation handle to poll, DeleteModel completes on acceptance.
type PlatformClient interface {
	ListModels(ctx context.Context, project string) ([]*domain.Model, error)
	GetModel(ctx context.Context, project, name string) (*domain.Model, error)
	CreateModel(ctx context.Context, project string, model *domain.Model) error
	DeleteModel(ctx context.Context, project, name string) error

	ListVersions(ctx context.Context, project, model string) ([]*domain.Version, error)
	GetVersion(ctx context.Context, project, model, version string) (*domain.Version, error)
	CreateVersion(ctx context.Context, project, model string, version *domain.Version) (*domain.Operation, error)
	DeleteVersion(ctx context.Context, project, model, version string) (*domain.Operation, error)
	SetDefaultVersion(ctx context.Context, project, model, version string) error

	GetOperation(ctx context.Context, name string) (*domain.Operation, error)

	SubmitJob(ctx context.Context, project string, job *domain.TrainingJob) (*domain.TrainingJob, error)
	GetJob(ctx context.Context, project, id string) (*domain.TrainingJob, error)

	Predict(ctx context.Context, project, model, version string, instances [][]float64) ([]Prediction, error)
}
