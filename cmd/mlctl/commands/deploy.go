package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/services"
)

func deployCmd() *cobra.Command {
	var (
		model          string
		version        string
		deploymentURI  string
		framework      string
		runtimeVersion string
		machineType    string
		makeDefault    bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create the model if needed and deploy an artifact as a version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := deploySvc.CreateModel(cmd.Context(), model, "", nil)
			if err != nil && !errors.Is(err, domain.ErrModelAlreadyExists) {
				return err
			}

			deployed, err := deploySvc.DeployVersion(cmd.Context(), services.DeployVersionRequest{
				ModelName:      model,
				VersionName:    version,
				DeploymentURI:  deploymentURI,
				RuntimeVersion: runtimeVersion,
				Framework:      framework,
				MachineType:    machineType,
				MakeDefault:    makeDefault,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Deployed %s/%s (%s)\n", model, deployed.Name, deployed.State)
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "model name")
	cmd.Flags().StringVar(&version, "version", "", "version name")
	cmd.Flags().StringVar(&deploymentURI, "uri", "", "blob URI of the saved model")
	cmd.Flags().StringVar(&framework, "framework", "tensorflow", "serving framework")
	cmd.Flags().StringVar(&runtimeVersion, "runtime-version", "", "platform runtime version")
	cmd.Flags().StringVar(&machineType, "machine-type", "", "serving machine type")
	cmd.Flags().BoolVar(&makeDefault, "make-default", false, "promote the version to default after deploy")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("uri")

	return cmd
}
