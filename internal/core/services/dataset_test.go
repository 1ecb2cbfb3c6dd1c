package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
	"ml-lifecycle-service/internal/testutil"
)

func makeExamples(n int) []*domain.Example {
	examples := make([]*domain.Example, 0, n)
	for i := 0; i < n; i++ {
		examples = append(examples, &domain.Example{
			SessionID:   fmt.Sprintf("s-%03d", i),
			Pageviews:   int64(i + 1),
			TimeOnSite:  int64(30 * (i + 1)),
			IsMobile:    i%2 == 0,
			AddedToCart: i%3 == 0,
		})
	}
	return examples
}

func TestDatasetExport(t *testing.T) {
	repo := new(testutil.MockExampleRepo)
	repo.On("Fetch", mock.Anything, ports.ExampleFilter{Limit: 100}).Return(makeExamples(10), nil)

	uploads := map[string][]byte{}
	store := new(testutil.MockArtifactStore)
	store.On("EnsureBucket", mock.Anything).Return(nil)
	store.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			uploads[args.String(1)] = args.Get(2).([]byte)
		}).
		Return("s3://artifacts/key", nil)

	svc := NewDatasetService(repo, store)
	result, err := svc.Export(context.Background(), ports.ExampleFilter{Limit: 100}, "data", 0.2)
	require.NoError(t, err)

	assert.Equal(t, 8, result.TrainRows)
	assert.Equal(t, 2, result.EvalRows)
	assert.Equal(t, "s3://artifacts/key", result.TrainURI)

	train := uploads["data/train.csv"]
	require.NotNil(t, train)
	lines := strings.Split(strings.TrimSpace(string(train)), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "session_id,pageviews,time_on_site,is_mobile,added_to_cart", lines[0])
	assert.Equal(t, "s-000,1,30,true,true", lines[1])

	eval := uploads["data/eval.csv"]
	require.NotNil(t, eval)
	evalLines := strings.Split(strings.TrimSpace(string(eval)), "\n")
	require.Len(t, evalLines, 3)
	assert.True(t, strings.HasPrefix(evalLines[1], "s-008,"))

	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestDatasetExport_DefaultEvalFraction(t *testing.T) {
	repo := new(testutil.MockExampleRepo)
	repo.On("Fetch", mock.Anything, ports.ExampleFilter{}).Return(makeExamples(10), nil)

	store := new(testutil.MockArtifactStore)
	store.On("EnsureBucket", mock.Anything).Return(nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("s3://artifacts/key", nil)

	svc := NewDatasetService(repo, store)
	result, err := svc.Export(context.Background(), ports.ExampleFilter{}, "data", 0)
	require.NoError(t, err)
	assert.Equal(t, 8, result.TrainRows)
	assert.Equal(t, 2, result.EvalRows)
}

func TestDatasetExport_NoData(t *testing.T) {
	repo := new(testutil.MockExampleRepo)
	repo.On("Fetch", mock.Anything, ports.ExampleFilter{}).Return([]*domain.Example{}, nil)

	svc := NewDatasetService(repo, new(testutil.MockArtifactStore))
	_, err := svc.Export(context.Background(), ports.ExampleFilter{}, "data", 0.2)
	assert.ErrorIs(t, err, domain.ErrNoTrainingData)
}

func TestLabelBalance(t *testing.T) {
	repo := new(testutil.MockExampleRepo)
	repo.On("LabelBalance", mock.Anything).Return(int64(120), int64(880), nil)

	svc := NewDatasetService(repo, new(testutil.MockArtifactStore))
	positive, negative, err := svc.LabelBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), positive)
	assert.Equal(t, int64(880), negative)
}
