package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// DeploymentService creates models and deploys trained artifacts as
// servable versions.
type DeploymentService struct {
	platform ports.PlatformClient
	project  string
	poll     PollSettings
}

func NewDeploymentService(platform ports.PlatformClient, project string, poll PollSettings) *DeploymentService {
	return &DeploymentService{platform: platform, project: project, poll: poll.withDefaults()}
}

func (s *DeploymentService) CreateModel(ctx context.Context, name, description string, regions []string) (*domain.Model, error) {
	if s.project == "" {
		return nil, domain.ErrMissingProject
	}
	if name == "" {
		return nil, domain.ErrInvalidModelName
	}

	model := &domain.Model{
		Name:        name,
		Description: description,
		Regions:     regions,
		CreatedAt:   time.Now(),
	}
	if err := s.platform.CreateModel(ctx, s.project, model); err != nil {
		return nil, err
	}
	return s.platform.GetModel(ctx, s.project, name)
}

type DeployVersionRequest struct {
	ModelName      string
	VersionName    string
	DeploymentURI  string
	RuntimeVersion string
	Framework      string
	MachineType    string
	MakeDefault    bool
}

// DeployVersion creates a version from a saved-model artifact and waits
// for the platform's create operation to finish. The version must come
// back READY before it is optionally promoted to default.
func (s *DeploymentService) DeployVersion(ctx context.Context, req DeployVersionRequest) (*domain.Version, error) {
	if s.project == "" {
		return nil, domain.ErrMissingProject
	}
	if req.ModelName == "" {
		return nil, domain.ErrInvalidModelName
	}
	if req.VersionName == "" {
		return nil, domain.ErrInvalidVersionName
	}
	if req.DeploymentURI == "" {
		return nil, domain.ErrInvalidDeploymentURI
	}
	if err := domain.ValidateFramework(req.Framework); err != nil {
		return nil, err
	}

	version := &domain.Version{
		Name:           req.VersionName,
		ModelName:      req.ModelName,
		DeploymentURI:  req.DeploymentURI,
		RuntimeVersion: req.RuntimeVersion,
		Framework:      req.Framework,
		MachineType:    req.MachineType,
		State:          domain.VersionStateCreating,
		CreatedAt:      time.Now(),
	}

	op, err := s.platform.CreateVersion(ctx, s.project, req.ModelName, version)
	if err != nil {
		return nil, fmt.Errorf("create version %s of %s: %w", req.VersionName, req.ModelName, err)
	}

	if op != nil && !op.Done {
		err := pollUntil(ctx, s.poll, domain.ErrDeployTimeout, func(ctx context.Context) (bool, error) {
			got, err := s.platform.GetOperation(ctx, op.Name)
			if err != nil {
				return false, fmt.Errorf("get operation %s: %w", op.Name, err)
			}
			op = got
			return got.Done, nil
		})
		if err != nil {
			return nil, err
		}
	}
	if op != nil && op.Error != nil {
		return nil, op.Error
	}

	deployed, err := s.platform.GetVersion(ctx, s.project, req.ModelName, req.VersionName)
	if err != nil {
		return nil, err
	}
	if deployed.State != domain.VersionStateReady {
		return deployed, domain.ErrVersionNotReady
	}

	if req.MakeDefault {
		if err := s.platform.SetDefaultVersion(ctx, s.project, req.ModelName, req.VersionName); err != nil {
			return deployed, fmt.Errorf("set default version: %w", err)
		}
		deployed.IsDefault = true
	}

	log.WithFields(log.Fields{
		"model":   req.ModelName,
		"version": req.VersionName,
		"default": req.MakeDefault,
	}).Info("version deployed")
	return deployed, nil
}

func (s *DeploymentService) SetDefault(ctx context.Context, model, version string) error {
	if s.project == "" {
		return domain.ErrMissingProject
	}
	if model == "" {
		return domain.ErrInvalidModelName
	}
	if version == "" {
		return domain.ErrInvalidVersionName
	}
	return s.platform.SetDefaultVersion(ctx, s.project, model, version)
}
