package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

func (a *App) newUploadCmd() *cobra.Command {
	var (
		identifier string
		metadata   map[string]string
	)

	cmd := &cobra.Command{
		Use:   "upload <csv>...",
		Short: "Upload CSV files to the pipeline",
		Long: `Upload reads each CSV file, sends it to the server and prints the
classification result with a masked preview.

A single file is stored under --id, or under its file name without the
extension. Several files are sent as one batch and named after their files.

Examples:
  privacy-client upload customers.csv
  privacy-client upload --id crm --meta source=crm customers.csv
  privacy-client upload -f markdown customers.csv purchases.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if identifier != "" && len(args) > 1 {
				return fmt.Errorf("--id names a single upload, got %d files", len(args))
			}

			meta := make(map[string]any, len(metadata))
			for k, v := range metadata {
				meta[k] = v
			}

			uploads := make([]models.UploadRequest, 0, len(args))
			for _, path := range args {
				table, err := ReadCSVFile(path)
				if err != nil {
					return err
				}
				id := identifier
				if id == "" {
					id = identifierFromPath(path)
				}
				uploads = append(uploads, models.UploadRequest{Identifier: id, Table: table, Metadata: meta})
			}

			if len(uploads) == 1 {
				result, err := a.adapter.Upload(cmd.Context(), uploads[0])
				return a.writePipeline(cmd, result, err)
			}

			resp, err := a.adapter.UploadBatch(cmd.Context(), uploads)
			if err != nil {
				return err
			}
			for _, result := range resp.Results {
				if err = a.writePipeline(cmd, result, nil); err != nil {
					return err
				}
			}
			if resp.Failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", resp.Failed, len(resp.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "id", "", "Dataset identifier (single file only)")
	cmd.Flags().StringToStringVar(&metadata, "meta", nil, "Metadata stored with the dataset, key=value")

	return cmd
}

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.adapter.ListDatasets(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, list)
		},
	}
}

func (a *App) newDisplayCmd() *cobra.Command {
	var unmask bool

	cmd := &cobra.Command{
		Use:   "display <storage-key>",
		Short: "Show a stored dataset, masked unless --unmask is given",
		Long: `Display fetches a stored dataset for viewing. Sensitive values are
masked; --unmask shows them and needs a token with the "unmask" scope.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.adapter.Display(cmd.Context(), args[0], !unmask)
			return a.writePipeline(cmd, result, err)
		},
	}
	cmd.Flags().BoolVar(&unmask, "unmask", false, "Show original values")

	return cmd
}

func (a *App) newPrivacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "privacy <storage-key> <on|off>",
		Short: "Switch the server's display privacy and show the dataset",
		Long: `Privacy switches whether the server masks sensitive values in display
views. Turning it off needs a token with the "unmask" scope.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseSwitch(args[1])
			if err != nil {
				return err
			}
			result, err := a.adapter.SetDisplayPrivacy(cmd.Context(), args[0], enabled)
			return a.writePipeline(cmd, result, err)
		},
	}
}

func (a *App) newPseudonymizedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pseudonymized <storage-key>",
		Short: "Fetch the pseudonymized copy for external processing",
		Long: `Pseudonymized fetches the copy of a dataset in which sensitive values
are replaced with stable tokens. The server withholds the copy when its
self-check finds original values left in it; the verification report is
printed either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.adapter.Pseudonymized(cmd.Context(), args[0])
			return a.writePipeline(cmd, result, err)
		},
	}
}

func (a *App) newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup <identifier>",
		Short: "Delete a dataset and forget its session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.adapter.CleanupSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(cmd, resp)
		},
	}
}

func parseSwitch(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return v, nil
}
