package dto

import (
	"time"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
	"ml-lifecycle-service/internal/core/services"
)

// ============================================================================
// Requests
// ============================================================================

type CreateModelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Regions     []string `json:"regions"`
}

type DeployVersionRequest struct {
	Name           string `json:"name" binding:"required"`
	DeploymentURI  string `json:"deployment_uri" binding:"required"`
	RuntimeVersion string `json:"runtime_version"`
	Framework      string `json:"framework"`
	MachineType    string `json:"machine_type"`
	MakeDefault    bool   `json:"make_default"`
}

type SubmitJobRequest struct {
	PackageURIs    []string `json:"package_uris" binding:"required"`
	PythonModule   string   `json:"python_module" binding:"required"`
	Region         string   `json:"region"`
	JobDir         string   `json:"job_dir"`
	RuntimeVersion string   `json:"runtime_version"`
	ScaleTier      string   `json:"scale_tier"`
}

type PredictRequest struct {
	Instances [][]float64 `json:"instances" binding:"required"`
}

type ExportDatasetRequest struct {
	Prefix       string  `json:"prefix"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Limit        int     `json:"limit"`
	EvalFraction float64 `json:"eval_fraction"`
}

// ============================================================================
// Responses
// ============================================================================

type ModelResponse struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	Regions            []string          `json:"regions,omitempty"`
	DefaultVersionName string            `json:"default_version_name,omitempty"`
	Labels             map[string]string `json:"labels,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

type VersionResponse struct {
	Name           string    `json:"name"`
	ModelName      string    `json:"model_name"`
	IsDefault      bool      `json:"is_default"`
	DeploymentURI  string    `json:"deployment_uri,omitempty"`
	RuntimeVersion string    `json:"runtime_version,omitempty"`
	Framework      string    `json:"framework,omitempty"`
	MachineType    string    `json:"machine_type,omitempty"`
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
}

type JobResponse struct {
	ID           string     `json:"id"`
	State        string     `json:"state"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

type InventoryEntryResponse struct {
	Model    ModelResponse     `json:"model"`
	Versions []VersionResponse `json:"versions"`
}

type InventoryResponse struct {
	Items []InventoryEntryResponse `json:"items"`
	Total int                      `json:"total"`
}

type SweepReportResponse struct {
	ModelsSeen      int       `json:"models_seen"`
	VersionsDeleted int       `json:"versions_deleted"`
	ModelsDeleted   int       `json:"models_deleted"`
	Started         time.Time `json:"started"`
	Finished        time.Time `json:"finished"`
}

type PredictResponse struct {
	Predictions []ports.Prediction `json:"predictions"`
}

type LabelBalanceResponse struct {
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToModelResponse(m *domain.Model) ModelResponse {
	return ModelResponse{
		Name:               m.Name,
		Description:        m.Description,
		Regions:            m.Regions,
		DefaultVersionName: m.DefaultVersionName,
		Labels:             m.Labels,
		CreatedAt:          m.CreatedAt,
	}
}

func ToVersionResponse(v *domain.Version) VersionResponse {
	return VersionResponse{
		Name:           v.Name,
		ModelName:      v.ModelName,
		IsDefault:      v.IsDefault,
		DeploymentURI:  v.DeploymentURI,
		RuntimeVersion: v.RuntimeVersion,
		Framework:      v.Framework,
		MachineType:    v.MachineType,
		State:          string(v.State),
		CreatedAt:      v.CreatedAt,
	}
}

func ToJobResponse(j *domain.TrainingJob) JobResponse {
	return JobResponse{
		ID:           j.ID,
		State:        string(j.State),
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		StartTime:    j.StartTime,
		EndTime:      j.EndTime,
	}
}

func ToInventoryResponse(inventory []*services.ModelInventory) InventoryResponse {
	items := make([]InventoryEntryResponse, 0, len(inventory))
	for _, entry := range inventory {
		versions := make([]VersionResponse, 0, len(entry.Versions))
		for _, v := range entry.Versions {
			versions = append(versions, ToVersionResponse(v))
		}
		items = append(items, InventoryEntryResponse{
			Model:    ToModelResponse(entry.Model),
			Versions: versions,
		})
	}
	return InventoryResponse{Items: items, Total: len(items)}
}

func ToSweepReportResponse(r *services.SweepReport) SweepReportResponse {
	return SweepReportResponse{
		ModelsSeen:      r.ModelsSeen,
		VersionsDeleted: r.VersionsDeleted,
		ModelsDeleted:   r.ModelsDeleted,
		Started:         r.Started,
		Finished:        r.Finished,
	}
}
