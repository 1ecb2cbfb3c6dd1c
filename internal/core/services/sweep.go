package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// SweepConfig carries everything a teardown run needs. The sweep keeps
// no package-level state; the project and polling bounds are fixed at
// construction.
type SweepConfig struct {
	Project string
	Poll    PollSettings
}

// SweepService tears down every model and version the project still
// holds on the managed platform. Versions of a model are removed before
// the model itself, and a default version only after all non-default
// versions of the same model are gone.
type SweepService struct {
	platform ports.PlatformClient
	cfg      SweepConfig
}

func NewSweepService(platform ports.PlatformClient, cfg SweepConfig) *SweepService {
	cfg.Poll = cfg.Poll.withDefaults()
	return &SweepService{platform: platform, cfg: cfg}
}

// SweepReport summarizes one teardown run.
type SweepReport struct {
	ModelsSeen      int       `json:"models_seen"`
	VersionsDeleted int       `json:"versions_deleted"`
	ModelsDeleted   int       `json:"models_deleted"`
	Started         time.Time `json:"started"`
	Finished        time.Time `json:"finished"`
}

// ModelInventory is one model with its versions, as enumerated by a
// dry run.
type ModelInventory struct {
	Model    *domain.Model     `json:"model"`
	Versions []*domain.Version `json:"versions"`
}

// Inventory enumerates every model in the project with its versions
// without deleting anything.
func (s *SweepService) Inventory(ctx context.Context) ([]*ModelInventory, error) {
	if s.cfg.Project == "" {
		return nil, domain.ErrMissingProject
	}

	models, err := s.platform.ListModels(ctx, s.cfg.Project)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	inventory := make([]*ModelInventory, 0, len(models))
	for _, m := range models {
		versions, err := s.platform.ListVersions(ctx, s.cfg.Project, m.Name)
		if err != nil {
			return nil, fmt.Errorf("list versions of %s: %w", m.Name, err)
		}
		inventory = append(inventory, &ModelInventory{Model: m, Versions: versions})
	}
	return inventory, nil
}

// Sweep deletes every version of every model in the project, then the
// models themselves. Enumeration and deletion errors abort the run;
// error payloads on completed operations are logged and do not.
func (s *SweepService) Sweep(ctx context.Context) (*SweepReport, error) {
	if s.cfg.Project == "" {
		return nil, domain.ErrMissingProject
	}

	report := &SweepReport{Started: time.Now()}
	defer func() {
		report.Finished = time.Now()
		sweepDuration.Observe(report.Finished.Sub(report.Started).Seconds())
	}()

	models, err := s.platform.ListModels(ctx, s.cfg.Project)
	if err != nil {
		sweepRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list models: %w", err)
	}
	report.ModelsSeen = len(models)

	for _, m := range models {
		deleted, err := s.clearVersions(ctx, m.Name)
		report.VersionsDeleted += deleted
		if err != nil {
			sweepRunsTotal.WithLabelValues("error").Inc()
			return report, err
		}
	}

	for _, m := range models {
		if err := s.platform.DeleteModel(ctx, s.cfg.Project, m.Name); err != nil {
			sweepRunsTotal.WithLabelValues("error").Inc()
			return report, fmt.Errorf("delete model %s: %w", m.Name, err)
		}
		sweepResourcesDeleted.WithLabelValues("model").Inc()
		report.ModelsDeleted++
		log.WithField("model", m.Name).Info("model deleted")
	}

	sweepRunsTotal.WithLabelValues("success").Inc()
	return report, nil
}

// clearVersions removes all versions of one model: non-default versions
// first, the default version only after their delete operations have
// completed. Returns how many versions finished deleting.
func (s *SweepService) clearVersions(ctx context.Context, model string) (int, error) {
	versions, err := s.platform.ListVersions(ctx, s.cfg.Project, model)
	if err != nil {
		return 0, fmt.Errorf("list versions of %s: %w", model, err)
	}

	nonDefault, def := partitionVersions(versions)

	deleted := 0
	ops := make([]*domain.Operation, 0, len(nonDefault))
	for _, v := range nonDefault {
		op, err := s.platform.DeleteVersion(ctx, s.cfg.Project, model, v.Name)
		if err != nil {
			return deleted, fmt.Errorf("delete version %s of %s: %w", v.Name, model, err)
		}
		ops = append(ops, op)
	}
	if err := s.waitOperations(ctx, ops); err != nil {
		return deleted, err
	}
	deleted += len(nonDefault)
	sweepResourcesDeleted.WithLabelValues("version").Add(float64(len(nonDefault)))

	if def != nil {
		op, err := s.platform.DeleteVersion(ctx, s.cfg.Project, model, def.Name)
		if err != nil {
			return deleted, fmt.Errorf("delete default version %s of %s: %w", def.Name, model, err)
		}
		if err := s.waitOperations(ctx, []*domain.Operation{op}); err != nil {
			return deleted, err
		}
		deleted++
		sweepResourcesDeleted.WithLabelValues("version").Inc()
	}

	log.WithFields(log.Fields{"model": model, "versions": deleted}).Info("versions cleared")
	return deleted, nil
}

// partitionVersions splits the listed versions without mutating the
// slice being walked. At most one version is expected to be default;
// with several, the last one listed wins.
func partitionVersions(versions []*domain.Version) (nonDefault []*domain.Version, def *domain.Version) {
	for _, v := range versions {
		if v.IsDefault {
			def = v
			continue
		}
		nonDefault = append(nonDefault, v)
	}
	return nonDefault, def
}

// waitOperations blocks until every operation reports done. Each round
// re-checks only the still-pending handles. The wait is bounded by the
// configured poll timeout and aborts when ctx is cancelled. An
// operation that completes with an error payload is logged and counted
// as done.
func (s *SweepService) waitOperations(ctx context.Context, ops []*domain.Operation) error {
	pending := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		if op == nil {
			continue
		}
		if op.Done {
			logOperationError(op)
			continue
		}
		pending[op.Name] = struct{}{}
	}
	if len(pending) == 0 {
		return nil
	}

	rounds := 0
	return pollUntil(ctx, s.cfg.Poll, domain.ErrSweepTimeout, func(ctx context.Context) (bool, error) {
		if rounds > 0 {
			sweepPollRounds.Inc()
		}
		rounds++

		for name := range pending {
			op, err := s.platform.GetOperation(ctx, name)
			if err != nil {
				return false, fmt.Errorf("get operation %s: %w", name, err)
			}
			if !op.Done {
				continue
			}
			logOperationError(op)
			delete(pending, name)
		}
		return len(pending) == 0, nil
	})
}

func logOperationError(op *domain.Operation) {
	if op.Error == nil {
		return
	}
	log.WithFields(log.Fields{
		"operation": op.Name,
		"code":      op.Error.Code,
	}).Warn(op.Error.Message)
}
