package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ccurefix/ccurefix-go/internal/handlers"
)

const (
	defaultAddr        = ":8080"
	defaultMaxUploadMB = 32
)

var (
	addr        string
	maxUploadMB int
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload / preview / download web converter",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: $CCUREFIX_ADDR or "+defaultAddr+")")
	cmd.Flags().IntVar(&maxUploadMB, "max-upload-mb", 0, "Upload size limit in MiB (default: $CCUREFIX_MAX_UPLOAD_MB or 32)")
	return cmd
}

// loadServeConfig fills unset flags from the environment, loading .env first
// when present.
func loadServeConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	if addr == "" {
		addr = os.Getenv("CCUREFIX_ADDR")
	}
	if addr == "" {
		addr = defaultAddr
	}

	if maxUploadMB <= 0 {
		if v := os.Getenv("CCUREFIX_MAX_UPLOAD_MB"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return errors.New("CCUREFIX_MAX_UPLOAD_MB must be a positive integer")
			}
			maxUploadMB = n
		}
	}
	if maxUploadMB <= 0 {
		maxUploadMB = defaultMaxUploadMB
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadServeConfig(); err != nil {
		return err
	}

	h := handlers.NewHandler(conversionOptions(), int64(maxUploadMB)<<20, slog.Default())
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", addr, "max_upload_mb", maxUploadMB)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
