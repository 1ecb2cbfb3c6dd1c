package domain

import "errors"

// Not found errors
var (
	ErrModelNotFound     = errors.New("model not found")
	ErrVersionNotFound   = errors.New("model version not found")
	ErrOperationNotFound = errors.New("operation not found")
	ErrJobNotFound       = errors.New("training job not found")
)

// Conflict errors
var (
	ErrModelAlreadyExists   = errors.New("model with this name already exists in the project")
	ErrVersionAlreadyExists = errors.New("version with this name already exists for this model")
)

// Validation errors
var (
	ErrMissingProject       = errors.New("project ID is required")
	ErrInvalidModelName     = errors.New("model name is required")
	ErrInvalidVersionName   = errors.New("version name is required")
	ErrInvalidDeploymentURI = errors.New("deployment URI is required")
	ErrUnsupportedFramework = errors.New("unsupported model framework")
	ErrInvalidJobSpec       = errors.New("training package URI and entry module are required")
	ErrNoInstances          = errors.New("at least one prediction instance is required")
)

// Lifecycle errors
var (
	ErrVersionNotReady = errors.New("model version is not ready")
	ErrTrainingFailed  = errors.New("training job failed")
	ErrNoTrainingData  = errors.New("warehouse query returned no training examples")
)

// Wait errors
var (
	ErrSweepTimeout  = errors.New("timed out waiting for delete operations")
	ErrJobTimeout    = errors.New("timed out waiting for training job")
	ErrDeployTimeout = errors.New("timed out waiting for version deployment")
)
