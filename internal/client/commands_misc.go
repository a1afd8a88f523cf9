package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the pipeline's configuration and counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.adapter.Status(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, status)
		},
	}
}

func (a *App) newTokenCmd() *cobra.Command {
	var (
		operator string
		scopes   []string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator token with the shared sign key",
		Long: `Token signs an operator token locally. It works only when the client is
configured with the same sign key and issuer as the server.

Example:
  privacy-client token --operator auditor --scope unmask`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			appCfg := config.App{
				TokenSignKey:  a.cfg.App.TokenSignKey,
				TokenIssuer:   a.cfg.App.TokenIssuer,
				TokenDuration: a.cfg.App.TokenDuration,
			}
			if duration > 0 {
				appCfg.TokenDuration = duration
			}

			token, err := service.NewAuthService(appCfg, a.logger).CreateToken(cmd.Context(), operator, scopes...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "Operator named in the token")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "Granted scope, repeatable (e.g. unmask)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Token lifetime (configured default when zero)")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "client version %s\n", a.build.BuildVersion())
			fmt.Fprintf(out, "  commit: %s\n", a.build.BuildCommit())
			fmt.Fprintf(out, "  built:  %s\n", a.build.BuildDate())

			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			fmt.Fprintf(out, "server version %s\n", serverVersion)
			return nil
		},
	}
}
