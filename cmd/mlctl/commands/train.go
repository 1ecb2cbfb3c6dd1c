package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ml-lifecycle-service/internal/core/domain"
)

func trainCmd() *cobra.Command {
	var (
		packageURI     string
		pythonModule   string
		region         string
		jobDir         string
		runtimeVersion string
		scaleTier      string
		wait           bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Submit a training job to the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := trainSvc.Submit(cmd.Context(), domain.TrainingInput{
				PackageURIs:    []string{packageURI},
				PythonModule:   pythonModule,
				Region:         region,
				JobDir:         jobDir,
				RuntimeVersion: runtimeVersion,
				ScaleTier:      scaleTier,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Submitted job %s\n", job.ID)

			if !wait {
				return nil
			}

			job, err = trainSvc.Wait(cmd.Context(), job.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Job %s finished: %s\n", job.ID, job.State)
			return nil
		},
	}

	cmd.Flags().StringVar(&packageURI, "package-uri", "", "blob URI of the packaged trainer")
	cmd.Flags().StringVar(&pythonModule, "module", "", "trainer entry module")
	cmd.Flags().StringVar(&region, "region", "us-central1", "region to run in")
	cmd.Flags().StringVar(&jobDir, "job-dir", "", "blob URI for job output")
	cmd.Flags().StringVar(&runtimeVersion, "runtime-version", "", "platform runtime version")
	cmd.Flags().StringVar(&scaleTier, "scale-tier", "BASIC", "training scale tier")
	cmd.Flags().BoolVar(&wait, "wait", false, "block until the job reaches a terminal state")
	_ = cmd.MarkFlagRequired("package-uri")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}
