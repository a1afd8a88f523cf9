package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-privacy-pipeline/internal/adapter"
	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/report"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// offlineAnnotation marks commands that never contact the server.
const offlineAnnotation = "offline"

var errNilConfig = errors.New("client config is nil")

type adapterFactory func(config.ClientAdapter, config.ClientApp, *logger.Logger) (adapter.ServerAdapter, error)

// App is the command-line client. The server adapter is created once the
// command line has been parsed so that flags can override the configured
// address, timeout and token.
type App struct {
	cfg   *config.ClientConfig
	build models.AppBuildInfo

	newAdapter adapterFactory
	adapter    adapter.ServerAdapter

	format string
	output string

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	return &App{
		cfg:        cfg,
		build:      build,
		newAdapter: adapter.NewHTTPServerAdapter,
		format:     string(report.FormatJSON),
		logger:     logger,
	}, nil
}

// Run executes the command named by the process arguments.
func (a *App) Run() error {
	return a.Execute(context.Background(), os.Args[1:])
}

// Execute runs the command tree with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "privacy-client",
		Short: "Client for the privacy-preserving data pipeline",
		Long: `privacy-client uploads tabular data to the pipeline server and retrieves
masked, unmasked or pseudonymized views of it.

Unmasked views and merges with sensitive values shown need a token carrying
the "unmask" scope. Mint one with "privacy-client token --scope unmask" when
the sign key is shared with the server.`,
		Version:           a.build.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.connect,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Adapter.HTTPAddress, "server", a.cfg.Adapter.HTTPAddress, "Pipeline server address")
	flags.StringVar(&a.cfg.Adapter.Token, "token", a.cfg.Adapter.Token, "Bearer token")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "Request timeout")
	flags.StringVarP(&a.format, "format", "f", a.format, "Output format: json or markdown")
	flags.StringVarP(&a.output, "output", "o", "", "Write output to a file instead of stdout")

	root.AddCommand(
		a.newUploadCmd(),
		a.newListCmd(),
		a.newDisplayCmd(),
		a.newPrivacyCmd(),
		a.newPseudonymizedCmd(),
		a.newMergeCmd(),
		a.newCleanupCmd(),
		a.newStatusCmd(),
		a.newTokenCmd(),
		a.newVersionCmd(),
	)

	return root
}

// connect validates the adapter settings and creates the server adapter.
func (a *App) connect(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[offlineAnnotation] == "true" {
		return nil
	}
	if _, err := report.ParseFormat(a.format); err != nil {
		return err
	}
	if a.adapter != nil {
		return nil
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	serverAdapter, err := a.newAdapter(a.cfg.Adapter, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}
	a.adapter = serverAdapter

	return nil
}

// withOutput runs fn with the command's output: stdout or the --output file.
func (a *App) withOutput(cmd *cobra.Command, fn func(w io.Writer) error) error {
	if a.output == "" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(a.output)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err = fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *App) reportWriter(w io.Writer) (report.Writer, error) {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return report.NewWriter(format, w)
}

// writePipeline renders result and passes callErr through. A failed call is
// rendered too when the server sent a result body.
func (a *App) writePipeline(cmd *cobra.Command, result models.PipelineResult, callErr error) error {
	if callErr != nil && result.Message == "" {
		return callErr
	}

	err := a.withOutput(cmd, func(w io.Writer) error {
		rw, err := a.reportWriter(w)
		if err != nil {
			return err
		}
		_, err = rw.WritePipeline(result)
		return err
	})
	return errors.Join(callErr, err)
}

func (a *App) writeMerge(cmd *cobra.Command, result models.MergeResult, callErr error) error {
	if callErr != nil && result.Message == "" {
		return callErr
	}

	err := a.withOutput(cmd, func(w io.Writer) error {
		rw, err := a.reportWriter(w)
		if err != nil {
			return err
		}
		_, err = rw.WriteMerge(result)
		return err
	})
	return errors.Join(callErr, err)
}

// printJSON writes v indented; used for listings that have no report form.
func (a *App) printJSON(cmd *cobra.Command, v any) error {
	return a.withOutput(cmd, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}
