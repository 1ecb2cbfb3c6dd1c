package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// MockPlatformClient is a mock of PlatformClient.
type MockPlatformClient struct {
	mock.Mock
}

func (m *MockPlatformClient) ListModels(ctx context.Context, project string) ([]*domain.Model, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Model), args.Error(1)
}

func (m *MockPlatformClient) GetModel(ctx context.Context, project, name string) (*domain.Model, error) {
	args := m.Called(ctx, project, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

func (m *MockPlatformClient) CreateModel(ctx context.Context, project string, model *domain.Model) error {
	args := m.Called(ctx, project, model)
	return args.Error(0)
}

func (m *MockPlatformClient) DeleteModel(ctx context.Context, project, name string) error {
	args := m.Called(ctx, project, name)
	return args.Error(0)
}

func (m *MockPlatformClient) ListVersions(ctx context.Context, project, model string) ([]*domain.Version, error) {
	args := m.Called(ctx, project, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Version), args.Error(1)
}

func (m *MockPlatformClient) GetVersion(ctx context.Context, project, model, version string) (*domain.Version, error) {
	args := m.Called(ctx, project, model, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

func (m *MockPlatformClient) CreateVersion(ctx context.Context, project, model string, version *domain.Version) (*domain.Operation, error) {
	args := m.Called(ctx, project, model, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockPlatformClient) DeleteVersion(ctx context.Context, project, model, version string) (*domain.Operation, error) {
	args := m.Called(ctx, project, model, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockPlatformClient) SetDefaultVersion(ctx context.Context, project, model, version string) error {
	args := m.Called(ctx, project, model, version)
	return args.Error(0)
}

func (m *MockPlatformClient) GetOperation(ctx context.Context, name string) (*domain.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockPlatformClient) SubmitJob(ctx context.Context, project string, job *domain.TrainingJob) (*domain.TrainingJob, error) {
	args := m.Called(ctx, project, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingJob), args.Error(1)
}

func (m *MockPlatformClient) GetJob(ctx context.Context, project, id string) (*domain.TrainingJob, error) {
	args := m.Called(ctx, project, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingJob), args.Error(1)
}

func (m *MockPlatformClient) Predict(ctx context.Context, project, model, version string, instances [][]float64) ([]ports.Prediction, error) {
	args := m.Called(ctx, project, model, version, instances)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Prediction), args.Error(1)
}

// MockExampleRepo is a mock of ExampleRepository.
type MockExampleRepo struct {
	mock.Mock
}

func (m *MockExampleRepo) Fetch(ctx context.Context, filter ports.ExampleFilter) ([]*domain.Example, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Example), args.Error(1)
}

func (m *MockExampleRepo) LabelBalance(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockArtifactStore is a mock of ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArtifactStore) Upload(ctx context.Context, key string, data []byte) (string, error) {
	args := m.Called(ctx, key, data)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockArtifactStore) DeleteAll(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockArtifactStore) DeleteBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
