// Package commands implements the mlctl CLI: the notebook-style
// lifecycle workflow (export-data, train, deploy, predict, teardown)
// against the managed platform.
package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ml-lifecycle-service/internal/adapters/secondary/mlengine"
	"ml-lifecycle-service/internal/config"
	"ml-lifecycle-service/internal/core/services"
)

var (
	cfg *config.Config

	project     string
	platformURL string

	sweepSvc   *services.SweepService
	trainSvc   *services.TrainingService
	deploySvc  *services.DeploymentService
	predictSvc *services.PredictionService
)

func Execute() error {
	root := &cobra.Command{
		Use:           "mlctl",
		Short:         "Drive the ML lifecycle: stage data, train, deploy, predict, tear down",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if project != "" {
				cfg.Platform.Project = project
			}
			if platformURL != "" {
				cfg.Platform.URL = platformURL
			}

			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if level, err := log.ParseLevel(cfg.Logger.Level); err == nil {
				log.SetLevel(level)
			}

			platform := mlengine.NewClient(cfg.Platform.URL, cfg.Platform.Timeout)
			poll := services.PollSettings{
				Interval:    cfg.Sweep.PollInterval,
				MaxInterval: cfg.Sweep.PollMaxInterval,
				Timeout:     cfg.Sweep.PollTimeout,
			}

			sweepSvc = services.NewSweepService(platform, services.SweepConfig{
				Project: cfg.Platform.Project,
				Poll:    poll,
			})
			trainSvc = services.NewTrainingService(platform, cfg.Platform.Project, poll)
			deploySvc = services.NewDeploymentService(platform, cfg.Platform.Project, poll)
			predictSvc = services.NewPredictionService(platform, cfg.Platform.Project)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&project, "project", "", "platform project ID (default $PLATFORM_PROJECT)")
	root.PersistentFlags().StringVar(&platformURL, "platform-url", "", "platform API base URL (default $PLATFORM_URL)")

	root.AddCommand(exportCmd(), trainCmd(), deployCmd(), predictCmd(), teardownCmd())
	return root.Execute()
}
