package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YuxiangJiangCT/billassistant/eventlog"
	"github.com/YuxiangJiangCT/billassistant/handler"
	"github.com/YuxiangJiangCT/billassistant/metrics"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port; overrides config")
	return cmd
}

func runServe(cmd *cobra.Command, port string) error {
	app, err := getAppContext(cmd)
	if err != nil {
		return err
	}
	cfg, logger := app.cfg, app.logger
	if port == "" {
		port = cfg.ServerPort
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	recorder := metrics.NewRecorder()
	billService := newBillService(app, cfg.UploadDir, cfg.MaxFileSize, recorder)
	events := eventlog.NewRecorder(cfg.WTPLogPath, cfg.EventLogPath)

	router := handler.SetupRouter(
		handler.NewBillHandler(billService, cfg.MaxFileSize, logger),
		handler.NewFeedbackHandler(events, recorder, logger),
		handler.NewDemoHandler(cfg.IndexPath),
		recorder.Handler(),
		cfg.CORSAllowedOrigins,
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting bill assistant",
			zap.String("addr", srv.Addr),
			zap.String("upload_dir", cfg.UploadDir),
			zap.String("tessdata", cfg.TesseractDataPath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
