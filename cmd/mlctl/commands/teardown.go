package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ml-lifecycle-service/internal/adapters/secondary/blobstore"
)

func teardownCmd() *cobra.Command {
	var (
		dryRun       bool
		deleteBucket bool
	)

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete every model and version in the project",
		Long: `Delete every model and version in the project. Non-default versions
of a model are deleted first, then the default version, then the model.
With --delete-bucket the artifact bucket is emptied and removed too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				inventory, err := sweepSvc.Inventory(cmd.Context())
				if err != nil {
					return err
				}
				if len(inventory) == 0 {
					fmt.Println("Nothing to delete.")
					return nil
				}
				for _, entry := range inventory {
					fmt.Printf("model %s\n", entry.Model.Name)
					for _, v := range entry.Versions {
						marker := ""
						if v.IsDefault {
							marker = " (default)"
						}
						fmt.Printf("  version %s%s\n", v.Name, marker)
					}
				}
				return nil
			}

			report, err := sweepSvc.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d versions and %d models (%d models seen) in %s\n",
				report.VersionsDeleted, report.ModelsDeleted, report.ModelsSeen,
				report.Finished.Sub(report.Started).Round(time.Second))

			if !deleteBucket {
				return nil
			}
			if !cfg.Artifacts.Enabled {
				return fmt.Errorf("--delete-bucket requires ARTIFACTS_ENABLED")
			}

			store, err := blobstore.NewClient(cmd.Context(),
				cfg.Artifacts.Endpoint, cfg.Artifacts.Region,
				cfg.Artifacts.AccessKey, cfg.Artifacts.SecretKey, cfg.Artifacts.Bucket)
			if err != nil {
				return err
			}
			removed, err := store.DeleteAll(cmd.Context(), "")
			if err != nil {
				return err
			}
			if err := store.DeleteBucket(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Removed %d objects and bucket %s\n", removed, cfg.Artifacts.Bucket)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list what would be deleted without deleting")
	cmd.Flags().BoolVar(&deleteBucket, "delete-bucket", false, "also empty and delete the artifact bucket")

	return cmd
}
