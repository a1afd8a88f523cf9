package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

func (a *App) newMergeCmd() *cobra.Command {
	var req models.MergeRequest

	cmd := &cobra.Command{
		Use:   "merge <dataset-a> <dataset-b>",
		Short: "Merge two uploaded datasets and report their alignment",
		Long: `Merge joins two datasets uploaded in the current server session on a
shared key column and prints a data quality report.

Strategies are inner (default), left, right and outer. --show-sensitive
reveals original values in the merged preview and the unmatched identifier
lists; it needs a token with the "unmask" scope.

Examples:
  privacy-client merge customers purchases
  privacy-client merge -f markdown -o report.md --strategy outer customers purchases`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.DatasetA, req.DatasetB = args[0], args[1]
			if _, err := models.ParseMergeStrategy(req.Strategy); err != nil {
				return err
			}

			result, err := a.adapter.Merge(cmd.Context(), req)
			return a.writeMerge(cmd, result, err)
		},
	}

	cmd.Flags().StringVarP(&req.KeyColumn, "key", "k", "", "Join key column (server default when empty)")
	cmd.Flags().StringVarP(&req.Strategy, "strategy", "s", string(models.MergeInner), "Join strategy: inner, left, right or outer")
	cmd.Flags().BoolVar(&req.ShowSensitive, "show-sensitive", false, "Show original values")

	return cmd
}
