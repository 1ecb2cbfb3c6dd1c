package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/testutil"
)

func validDeploy() DeployVersionRequest {
	return DeployVersionRequest{
		ModelName:      "clf_add_to_cart",
		VersionName:    "v1",
		DeploymentURI:  "s3://bucket/jobs/export",
		RuntimeVersion: "1.14",
		Framework:      "tensorflow",
	}
}

func TestCreateModel(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("CreateModel", mock.Anything, "proj", mock.AnythingOfType("*domain.Model")).Return(nil)
	platform.On("GetModel", mock.Anything, "proj", "clf_add_to_cart").
		Return(&domain.Model{Name: "clf_add_to_cart"}, nil)

	svc := NewDeploymentService(platform, "proj", testPoll())
	model, err := svc.CreateModel(context.Background(), "clf_add_to_cart", "demand prediction", []string{"us-central1"})
	require.NoError(t, err)
	assert.Equal(t, "clf_add_to_cart", model.Name)
	platform.AssertExpectations(t)
}

func TestCreateModel_EmptyName(t *testing.T) {
	svc := NewDeploymentService(new(testutil.MockPlatformClient), "proj", testPoll())
	_, err := svc.CreateModel(context.Background(), "", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidModelName)
}

func TestDeployVersion_Validation(t *testing.T) {
	svc := NewDeploymentService(new(testutil.MockPlatformClient), "proj", testPoll())

	req := validDeploy()
	req.DeploymentURI = ""
	_, err := svc.DeployVersion(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidDeploymentURI)

	req = validDeploy()
	req.Framework = "caffe"
	_, err = svc.DeployVersion(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFramework)

	req = validDeploy()
	req.VersionName = ""
	_, err = svc.DeployVersion(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidVersionName)
}

func TestDeployVersion_WaitsForOperation(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("CreateVersion", mock.Anything, "proj", "clf_add_to_cart", mock.AnythingOfType("*domain.Version")).
		Return(&domain.Operation{Name: "projects/proj/operations/op-1", Done: false}, nil)
	platform.On("GetOperation", mock.Anything, "projects/proj/operations/op-1").
		Return(&domain.Operation{Name: "projects/proj/operations/op-1", Done: false}, nil).Once()
	platform.On("GetOperation", mock.Anything, "projects/proj/operations/op-1").
		Return(&domain.Operation{Name: "projects/proj/operations/op-1", Done: true}, nil).Once()
	platform.On("GetVersion", mock.Anything, "proj", "clf_add_to_cart", "v1").
		Return(&domain.Version{Name: "v1", ModelName: "clf_add_to_cart", State: domain.VersionStateReady}, nil)

	svc := NewDeploymentService(platform, "proj", testPoll())
	version, err := svc.DeployVersion(context.Background(), validDeploy())
	require.NoError(t, err)
	assert.Equal(t, domain.VersionStateReady, version.State)
	assert.False(t, version.IsDefault)
	platform.AssertExpectations(t)
}

func TestDeployVersion_MakeDefault(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("CreateVersion", mock.Anything, "proj", "clf_add_to_cart", mock.AnythingOfType("*domain.Version")).
		Return(&domain.Operation{Name: "op-1", Done: true}, nil)
	platform.On("GetVersion", mock.Anything, "proj", "clf_add_to_cart", "v1").
		Return(&domain.Version{Name: "v1", State: domain.VersionStateReady}, nil)
	platform.On("SetDefaultVersion", mock.Anything, "proj", "clf_add_to_cart", "v1").Return(nil)

	req := validDeploy()
	req.MakeDefault = true

	svc := NewDeploymentService(platform, "proj", testPoll())
	version, err := svc.DeployVersion(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, version.IsDefault)
	platform.AssertExpectations(t)
}

func TestDeployVersion_OperationError(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("CreateVersion", mock.Anything, "proj", "clf_add_to_cart", mock.AnythingOfType("*domain.Version")).
		Return(&domain.Operation{
			Name: "op-1",
			Done: true,
			Error: &domain.OperationError{
				Code:    3,
				Message: "deployment uri not found",
			},
		}, nil)

	svc := NewDeploymentService(platform, "proj", testPoll())
	_, err := svc.DeployVersion(context.Background(), validDeploy())
	var opErr *domain.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 3, opErr.Code)
}

func TestDeployVersion_NotReady(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("CreateVersion", mock.Anything, "proj", "clf_add_to_cart", mock.AnythingOfType("*domain.Version")).
		Return(&domain.Operation{Name: "op-1", Done: true}, nil)
	platform.On("GetVersion", mock.Anything, "proj", "clf_add_to_cart", "v1").
		Return(&domain.Version{Name: "v1", State: domain.VersionStateFailed}, nil)

	svc := NewDeploymentService(platform, "proj", testPoll())
	version, err := svc.DeployVersion(context.Background(), validDeploy())
	assert.ErrorIs(t, err, domain.ErrVersionNotReady)
	require.NotNil(t, version)
	assert.Equal(t, domain.VersionStateFailed, version.State)
}

func TestSetDefault(t *testing.T) {
	platform := new(testutil.MockPlatformClient)
	platform.On("SetDefaultVersion", mock.Anything, "proj", "m1", "v2").Return(nil)

	svc := NewDeploymentService(platform, "proj", testPoll())
	require.NoError(t, svc.SetDefault(context.Background(), "m1", "v2"))

	assert.ErrorIs(t, svc.SetDefault(context.Background(), "", "v2"), domain.ErrInvalidModelName)
	assert.ErrorIs(t, svc.SetDefault(context.Background(), "m1", ""), domain.ErrInvalidVersionName)
}
