package mlengine

import (
	"time"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// Wire types for the platform's management API. List responses may
// carry an error payload alongside partial results; callers log it and
// keep whatever came back.

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type modelPayload struct {
	Name                    string            `json:"name"`
	Description             string            `json:"description,omitempty"`
	Regions                 []string          `json:"regions,omitempty"`
	DefaultVersion          *versionPayload   `json:"defaultVersion,omitempty"`
	OnlinePredictionLogging bool              `json:"onlinePredictionLogging,omitempty"`
	Labels                  map[string]string `json:"labels,omitempty"`
	CreateTime              time.Time         `json:"createTime,omitempty"`
}

type versionPayload struct {
	Name           string    `json:"name"`
	IsDefault      bool      `json:"isDefault,omitempty"`
	DeploymentURI  string    `json:"deploymentUri,omitempty"`
	RuntimeVersion string    `json:"runtimeVersion,omitempty"`
	Framework      string    `json:"framework,omitempty"`
	MachineType    string    `json:"machineType,omitempty"`
	State          string    `json:"state,omitempty"`
	CreateTime     time.Time `json:"createTime,omitempty"`
}

type operationPayload struct {
	Name  string    `json:"name"`
	Done  bool      `json:"done"`
	Error *apiError `json:"error,omitempty"`
}

type jobPayload struct {
	JobID         string           `json:"jobId"`
	State         string           `json:"state"`
	TrainingInput trainingInput    `json:"trainingInput"`
	ErrorMessage  string           `json:"errorMessage,omitempty"`
	CreateTime    time.Time        `json:"createTime,omitempty"`
	StartTime     *time.Time       `json:"startTime,omitempty"`
	EndTime       *time.Time       `json:"endTime,omitempty"`
}

type trainingInput struct {
	PackageURIs    []string `json:"packageUris,omitempty"`
	PythonModule   string   `json:"pythonModule,omitempty"`
	Region         string   `json:"region,omitempty"`
	JobDir         string   `json:"jobDir,omitempty"`
	RuntimeVersion string   `json:"runtimeVersion,omitempty"`
	ScaleTier      string   `json:"scaleTier,omitempty"`
}

type listModelsResponse struct {
	Models        []modelPayload `json:"models"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
	Error         *apiError      `json:"error,omitempty"`
}

type listVersionsResponse struct {
	Versions      []versionPayload `json:"versions"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
	Error         *apiError        `json:"error,omitempty"`
}

type deleteModelResponse struct {
	Error *apiError `json:"error,omitempty"`
}

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions []predictionPayload `json:"predictions"`
	Error       *apiError           `json:"error,omitempty"`
}

type predictionPayload struct {
	Probability float64 `json:"probability"`
	Class       int     `json:"class"`
}

func (p *modelPayload) toDomain() *domain.Model {
	m := &domain.Model{
		Name:                    p.Name,
		Description:             p.Description,
		Regions:                 p.Regions,
		OnlinePredictionLogging: p.OnlinePredictionLogging,
		Labels:                  p.Labels,
		CreatedAt:               p.CreateTime,
	}
	if p.DefaultVersion != nil {
		m.DefaultVersionName = p.DefaultVersion.Name
	}
	return m
}

func (p *versionPayload) toDomain(model string) *domain.Version {
	return &domain.Version{
		Name:           p.Name,
		ModelName:      model,
		IsDefault:      p.IsDefault,
		DeploymentURI:  p.DeploymentURI,
		RuntimeVersion: p.RuntimeVersion,
		Framework:      p.Framework,
		MachineType:    p.MachineType,
		State:          domain.VersionState(p.State),
		CreatedAt:      p.CreateTime,
	}
}

func versionToPayload(v *domain.Version) versionPayload {
	return versionPayload{
		Name:           v.Name,
		IsDefault:      v.IsDefault,
		DeploymentURI:  v.DeploymentURI,
		RuntimeVersion: v.RuntimeVersion,
		Framework:      v.Framework,
		MachineType:    v.MachineType,
		State:          string(v.State),
	}
}

func (p *operationPayload) toDomain() *domain.Operation {
	op := &domain.Operation{Name: p.Name, Done: p.Done}
	if p.Error != nil {
		op.Error = &domain.OperationError{Code: p.Error.Code, Message: p.Error.Message}
	}
	return op
}

func (p *jobPayload) toDomain() *domain.TrainingJob {
	return &domain.TrainingJob{
		ID:    p.JobID,
		State: domain.JobState(p.State),
		Input: domain.TrainingInput{
			PackageURIs:    p.TrainingInput.PackageURIs,
			PythonModule:   p.TrainingInput.PythonModule,
			Region:         p.TrainingInput.Region,
			JobDir:         p.TrainingInput.JobDir,
			RuntimeVersion: p.TrainingInput.RuntimeVersion,
			ScaleTier:      p.TrainingInput.ScaleTier,
		},
		ErrorMessage: p.ErrorMessage,
		CreatedAt:    p.CreateTime,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
	}
}

func jobToPayload(j *domain.TrainingJob) jobPayload {
	return jobPayload{
		JobID: j.ID,
		State: string(j.State),
		TrainingInput: trainingInput{
			PackageURIs:    j.Input.PackageURIs,
			PythonModule:   j.Input.PythonModule,
			Region:         j.Input.Region,
			JobDir:         j.Input.JobDir,
			RuntimeVersion: j.Input.RuntimeVersion,
			ScaleTier:      j.Input.ScaleTier,
		},
	}
}

func (p *predictionPayload) toDomain() ports.Prediction {
	return ports.Prediction{Probability: p.Probability, Class: p.Class}
}
