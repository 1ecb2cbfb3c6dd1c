package domain

import (
	"strings"
	"time"
)

type VersionState string

const (
	VersionStateCreating VersionState = "CREATING"
	VersionStateReady    VersionState = "READY"
	VersionStateDeleting VersionState = "DELETING"
	VersionStateFailed   VersionState = "FAILED"
)

// Frameworks the platform can serve online predictions for.
var SupportedFrameworks = map[string]bool{
	"tensorflow": true,
	"sklearn":    true,
	"xgboost":    true,
}

func ValidateFramework(framework string) error {
	if framework == "" {
		return nil
	}
	if !SupportedFrameworks[strings.ToLower(framework)] {
		return ErrUnsupportedFramework
	}
	return nil
}

// Version is one trained artifact bound to a Model.
type Version struct {
	Name           string       `json:"name"`
	ModelName      string       `json:"model_name"`
	IsDefault      bool         `json:"is_default"`
	DeploymentURI  string       `json:"deployment_uri"`
	RuntimeVersion string       `json:"runtime_version"`
	Framework      string       `json:"framework"`
	MachineType    string       `json:"machine_type"`
	State          VersionState `json:"state"`
	CreatedAt      time.Time    `json:"created_at"`
}
