package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func predictCmd() *cobra.Command {
	var (
		model   string
		version string
	)

	cmd := &cobra.Command{
		Use:   "predict [instances-json]",
		Short: "Request online predictions for feature-vector instances",
		Long: `Request online predictions. Instances are a JSON array of feature
vectors, passed as the first argument or on stdin:

  mlctl predict --model clf_add_to_cart '[[12, 340, 1], [3, 45, 0]]'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if len(args) == 1 {
				raw = []byte(args[0])
			} else {
				raw, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read instances from stdin: %w", err)
				}
			}

			var instances [][]float64
			if err := json.Unmarshal(raw, &instances); err != nil {
				return fmt.Errorf("parse instances: %w", err)
			}

			predictions, err := predictSvc.Predict(cmd.Context(), model, version, instances)
			if err != nil {
				return err
			}

			for i, p := range predictions {
				fmt.Printf("instance %d: class=%d probability=%.4f\n", i, p.Class, p.Probability)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "model name")
	cmd.Flags().StringVar(&version, "version", "", "version name (default: the model's default version)")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
