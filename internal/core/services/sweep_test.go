package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
	"ml-lifecycle-service/internal/testutil"
)

// fakePlatform is a stateful platform stand-in: version deletes return
// operations that complete after a configured number of polls, and
// every call is recorded in order.
type fakePlatform struct {
	models   []*domain.Model
	versions map[string][]*domain.Version

	// pollsUntilDone maps "model/version" to how many GetOperation
	// calls its delete operation needs before reporting done.
	pollsUntilDone map[string]int
	// payloadErrs maps "model/version" to an error payload the
	// finished operation carries.
	payloadErrs map[string]*domain.OperationError

	ops   map[string]*fakeOp
	calls []string
	opSeq int
}

type fakeOp struct {
	remaining int
	polled    int
	err       *domain.OperationError
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		versions:       map[string][]*domain.Version{},
		pollsUntilDone: map[string]int{},
		payloadErrs:    map[string]*domain.OperationError{},
		ops:            map[string]*fakeOp{},
	}
}

func (f *fakePlatform) addModel(name string, versions ...*domain.Version) {
	f.models = append(f.models, &domain.Model{Name: name})
	f.versions[name] = versions
}

func (f *fakePlatform) ListModels(ctx context.Context, project string) ([]*domain.Model, error) {
	f.calls = append(f.calls, "list-models")
	return append([]*domain.Model(nil), f.models...), nil
}

func (f *fakePlatform) ListVersions(ctx context.Context, project, model string) ([]*domain.Version, error) {
	f.calls = append(f.calls, "list-versions "+model)
	return append([]*domain.Version(nil), f.versions[model]...), nil
}

func (f *fakePlatform) DeleteVersion(ctx context.Context, project, model, version string) (*domain.Operation, error) {
	key := model + "/" + version
	f.calls = append(f.calls, "delete-version "+key)

	f.opSeq++
	name := fmt.Sprintf("projects/%s/operations/op-%d", project, f.opSeq)
	op := &fakeOp{remaining: f.pollsUntilDone[key], err: f.payloadErrs[key]}
	f.ops[name] = op

	if op.remaining == 0 {
		return &domain.Operation{Name: name, Done: true, Error: op.err}, nil
	}
	return &domain.Operation{Name: name, Done: false}, nil
}

func (f *fakePlatform) GetOperation(ctx context.Context, name string) (*domain.Operation, error) {
	f.calls = append(f.calls, "get-operation "+name)
	op, ok := f.ops[name]
	if !ok {
		return nil, domain.ErrOperationNotFound
	}
	op.polled++
	if op.polled >= op.remaining {
		return &domain.Operation{Name: name, Done: true, Error: op.err}, nil
	}
	return &domain.Operation{Name: name, Done: false}, nil
}

func (f *fakePlatform) DeleteModel(ctx context.Context, project, name string) error {
	f.calls = append(f.calls, "delete-model "+name)
	return nil
}

func (f *fakePlatform) GetModel(ctx context.Context, project, name string) (*domain.Model, error) {
	return nil, domain.ErrModelNotFound
}

func (f *fakePlatform) CreateModel(ctx context.Context, project string, model *domain.Model) error {
	return nil
}

func (f *fakePlatform) GetVersion(ctx context.Context, project, model, version string) (*domain.Version, error) {
	return nil, domain.ErrVersionNotFound
}

func (f *fakePlatform) CreateVersion(ctx context.Context, project, model string, version *domain.Version) (*domain.Operation, error) {
	return nil, nil
}

func (f *fakePlatform) SetDefaultVersion(ctx context.Context, project, model, version string) error {
	return nil
}

func (f *fakePlatform) SubmitJob(ctx context.Context, project string, job *domain.TrainingJob) (*domain.TrainingJob, error) {
	return job, nil
}

func (f *fakePlatform) GetJob(ctx context.Context, project, id string) (*domain.TrainingJob, error) {
	return nil, domain.ErrJobNotFound
}

func (f *fakePlatform) Predict(ctx context.Context, project, model, version string, instances [][]float64) ([]ports.Prediction, error) {
	return nil, nil
}

var _ ports.PlatformClient = (*fakePlatform)(nil)

func (f *fakePlatform) indexOf(call string) int {
	for i, c := range f.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (f *fakePlatform) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func testPoll() PollSettings {
	return PollSettings{
		Interval:    time.Millisecond,
		MaxInterval: 2 * time.Millisecond,
		Timeout:     2 * time.Second,
	}
}

func newTestSweep(platform ports.PlatformClient) *SweepService {
	return NewSweepService(platform, SweepConfig{Project: "proj", Poll: testPoll()})
}

func TestSweep_DefaultVersionDeletedLast(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1",
		&domain.Version{Name: "v1", IsDefault: true},
		&domain.Version{Name: "v2"},
		&domain.Version{Name: "v3"},
	)
	platform.pollsUntilDone["m1/v2"] = 2
	platform.pollsUntilDone["m1/v3"] = 1

	report, err := newTestSweep(platform).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.ModelsSeen)
	assert.Equal(t, 3, report.VersionsDeleted)
	assert.Equal(t, 1, report.ModelsDeleted)

	// Exactly one delete per version, and the default strictly after
	// the others have completed.
	assert.Equal(t, 1, platform.count("delete-version m1/v1"))
	assert.Equal(t, 1, platform.count("delete-version m1/v2"))
	assert.Equal(t, 1, platform.count("delete-version m1/v3"))

	defaultIdx := platform.indexOf("delete-version m1/v1")
	assert.Greater(t, defaultIdx, platform.indexOf("delete-version m1/v2"))
	assert.Greater(t, defaultIdx, platform.indexOf("delete-version m1/v3"))
	for _, op := range platform.ops {
		if op.remaining > 0 {
			assert.GreaterOrEqual(t, op.polled, op.remaining)
		}
	}

	// Model goes only after its versions.
	assert.Greater(t, platform.indexOf("delete-model m1"), defaultIdx)
}

func TestSweep_SingleDefaultVersion(t *testing.T) {
	// A model holding only its default version skips the non-default
	// phase entirely.
	platform := newFakePlatform()
	platform.addModel("clf_add_to_cart", &domain.Version{Name: "v1", IsDefault: true})

	report, err := newTestSweep(platform).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.VersionsDeleted)
	assert.Equal(t, 1, report.ModelsDeleted)
	assert.Equal(t, 1, platform.count("delete-version clf_add_to_cart/v1"))
	assert.Equal(t, []string{
		"list-models",
		"list-versions clf_add_to_cart",
		"delete-version clf_add_to_cart/v1",
		"delete-model clf_add_to_cart",
	}, platform.calls)
}

func TestSweep_PollsOnlyPendingOperations(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1",
		&domain.Version{Name: "fast"},
		&domain.Version{Name: "slow"},
	)
	platform.pollsUntilDone["m1/fast"] = 1
	platform.pollsUntilDone["m1/slow"] = 3

	_, err := newTestSweep(platform).Sweep(context.Background())
	require.NoError(t, err)

	// The fast operation completes on the first round and must not be
	// re-checked afterwards.
	var fast, slow *fakeOp
	for name, op := range platform.ops {
		if op.remaining == 1 {
			fast = platform.ops[name]
		} else {
			slow = platform.ops[name]
		}
	}
	require.NotNil(t, fast)
	require.NotNil(t, slow)
	assert.Equal(t, 1, fast.polled)
	assert.Equal(t, 3, slow.polled)
}

func TestSweep_OperationErrorPayloadIsNotFatal(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1",
		&domain.Version{Name: "v1", IsDefault: true},
		&domain.Version{Name: "v2"},
	)
	platform.pollsUntilDone["m1/v2"] = 1
	platform.payloadErrs["m1/v2"] = &domain.OperationError{Code: 13, Message: "backend error"}

	report, err := newTestSweep(platform).Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.ModelsDeleted)
	assert.Equal(t, 1, platform.count("delete-model m1"))
}

func TestSweep_ModelsDeletedAfterAllVersionsCleared(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1", &domain.Version{Name: "v1", IsDefault: true})
	platform.addModel("m2", &domain.Version{Name: "v1", IsDefault: true})

	_, err := newTestSweep(platform).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, platform.count("delete-model m1"))
	assert.Equal(t, 1, platform.count("delete-model m2"))
	assert.Greater(t, platform.indexOf("delete-model m1"), platform.indexOf("delete-version m2/v1"))
}

func TestSweep_Timeout(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1", &domain.Version{Name: "stuck"})
	platform.pollsUntilDone["m1/stuck"] = 1 << 30

	svc := NewSweepService(platform, SweepConfig{
		Project: "proj",
		Poll: PollSettings{
			Interval:    time.Millisecond,
			MaxInterval: 2 * time.Millisecond,
			Timeout:     25 * time.Millisecond,
		},
	})

	_, err := svc.Sweep(context.Background())
	assert.ErrorIs(t, err, domain.ErrSweepTimeout)
	assert.Equal(t, 0, platform.count("delete-model m1"))
}

func TestSweep_ContextCancelled(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1", &domain.Version{Name: "stuck"})
	platform.pollsUntilDone["m1/stuck"] = 1 << 30

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTestSweep(platform).Sweep(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSweep_MissingProject(t *testing.T) {
	svc := NewSweepService(newFakePlatform(), SweepConfig{Poll: testPoll()})
	_, err := svc.Sweep(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingProject)
}

func TestSweep_ListModelsError(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("ListModels", mock.Anything, "proj").Return(nil, assert.AnError)

	_, err := newTestSweep(platform).Sweep(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInventory(t *testing.T) {
	platform := newFakePlatform()
	platform.addModel("m1",
		&domain.Version{Name: "v1", IsDefault: true},
		&domain.Version{Name: "v2"},
	)

	inventory, err := newTestSweep(platform).Inventory(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory, 1)
	assert.Equal(t, "m1", inventory[0].Model.Name)
	assert.Len(t, inventory[0].Versions, 2)

	// Enumeration is read-only.
	assert.Equal(t, 0, platform.count("delete-version m1/v1"))
	assert.Equal(t, 0, platform.count("delete-version m1/v2"))
}

func TestPartitionVersions(t *testing.T) {
	v1 := &domain.Version{Name: "v1", IsDefault: true}
	v2 := &domain.Version{Name: "v2"}
	v3 := &domain.Version{Name: "v3"}

	nonDefault, def := partitionVersions([]*domain.Version{v2, v1, v3})
	assert.Equal(t, []*domain.Version{v2, v3}, nonDefault)
	assert.Equal(t, v1, def)

	nonDefault, def = partitionVersions(nil)
	assert.Empty(t, nonDefault)
	assert.Nil(t, def)
}
