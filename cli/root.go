package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YuxiangJiangCT/billassistant/client"
	"github.com/YuxiangJiangCT/billassistant/config"
	"github.com/YuxiangJiangCT/billassistant/logging"
	"github.com/YuxiangJiangCT/billassistant/metrics"
	"github.com/YuxiangJiangCT/billassistant/service"
)

// Version is injected at build time via ldflags.
var Version = "dev"

type rootOptions struct {
	logLevel  string
	logFormat string
}

// appContext carries the loaded config and logger through the command tree.
type appContext struct {
	cfg    *config.Config
	logger *zap.Logger
}

type appContextKey struct{}

// NewRootCommand creates the root command. Running it without a subcommand
// starts the HTTP server.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "billassist",
		Short:   "Medical bill decoder and overcharge estimator",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, err := getAppContext(cmd); err == nil {
				_ = app.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, "")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format (json, console); overrides config")

	cmd.AddCommand(newServeCmd(), newDecodeCmd())
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appContextKey{}, &appContext{cfg: cfg, logger: logger}))
	return nil
}

func getAppContext(cmd *cobra.Command) (*appContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if app, ok := ctx.Value(appContextKey{}).(*appContext); ok {
			return app, nil
		}
	}
	return nil, errors.New("application context not initialized")
}

// newTextExtractor builds the OCR and PDF pipeline from config.
func newTextExtractor(app *appContext) *service.TextExtractor {
	ocr := client.NewTesseractClient(app.cfg.TesseractDataPath, app.cfg.TesseractLanguage)
	return service.NewTextExtractor(ocr, service.NewPDFProcessor(), app.logger)
}

func newBillService(app *appContext, uploadDir string, maxFileSize int64, recorder *metrics.Recorder) service.BillService {
	return service.NewBillService(newTextExtractor(app), uploadDir, maxFileSize, recorder, app.logger)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
