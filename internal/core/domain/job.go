package domain

import "time"

type JobState string

const (
	JobStateQueued    JobState = "QUEUED"
	JobStatePreparing JobState = "PREPARING"
	JobStateRunning   JobState = "RUNNING"
	JobStateSucceeded JobState = "SUCCEEDED"
	JobStateFailed    JobState = "FAILED"
	JobStateCancelled JobState = "CANCELLED"
)

// Terminal reports whether the job will make no further progress.
func (s JobState) Terminal() bool {
	switch s {
	case JobStateSucceeded, JobStateFailed, JobStateCancelled:
		return true
	}
	return false
}

// TrainingInput describes what the platform should run: a packaged
// trainer and where to put its output.
type TrainingInput struct {
	PackageURIs    []string `json:"package_uris"`
	PythonModule   string   `json:"python_module"`
	Region         string   `json:"region"`
	JobDir         string   `json:"job_dir"`
	RuntimeVersion string   `json:"runtime_version"`
	ScaleTier      string   `json:"scale_tier"`
}

// TrainingJob is one submitted training run on the managed platform.
type TrainingJob struct {
	ID           string        `json:"id"`
	State        JobState      `json:"state"`
	Input        TrainingInput `json:"input"`
	ErrorMessage string        `json:"error_message,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	StartTime    *time.Time    `json:"start_time,omitempty"`
	EndTime      *time.Time    `json:"end_time,omitempty"`
}
