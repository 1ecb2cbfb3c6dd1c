package commands

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"ml-lifecycle-service/internal/adapters/secondary/blobstore"
	"ml-lifecycle-service/internal/adapters/secondary/warehouse"
	"ml-lifecycle-service/internal/core/ports/output"
	"ml-lifecycle-service/internal/core/services"
)

func exportCmd() *cobra.Command {
	var (
		prefix       string
		startDate    string
		endDate      string
		limit        int
		evalFraction float64
	)

	cmd := &cobra.Command{
		Use:   "export-data",
		Short: "Stage labeled warehouse sessions as CSV in the artifact bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Warehouse.Enabled || !cfg.Artifacts.Enabled {
				return fmt.Errorf("export requires WAREHOUSE_ENABLED and ARTIFACTS_ENABLED")
			}

			ctx := cmd.Context()
			pool, err := pgxpool.New(ctx, cfg.Warehouse.DSN())
			if err != nil {
				return fmt.Errorf("connect warehouse: %w", err)
			}
			defer pool.Close()

			store, err := blobstore.NewClient(ctx,
				cfg.Artifacts.Endpoint, cfg.Artifacts.Region,
				cfg.Artifacts.AccessKey, cfg.Artifacts.SecretKey, cfg.Artifacts.Bucket)
			if err != nil {
				return err
			}

			svc := services.NewDatasetService(warehouse.NewExampleRepository(pool), store)
			result, err := svc.Export(ctx, ports.ExampleFilter{
				StartDate: startDate,
				EndDate:   endDate,
				Limit:     limit,
			}, prefix, evalFraction)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d train rows to %s\n", result.TrainRows, result.TrainURI)
			fmt.Printf("Exported %d eval rows to %s\n", result.EvalRows, result.EvalURI)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "data", "object key prefix for the CSV splits")
	cmd.Flags().StringVar(&startDate, "start", "", "first session date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "first session date to exclude (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "cap on fetched rows (0 = no cap)")
	cmd.Flags().Float64Var(&evalFraction, "eval-fraction", 0.2, "fraction of rows held out for eval")

	return cmd
}
