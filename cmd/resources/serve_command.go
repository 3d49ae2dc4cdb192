package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sendrec/resources/internal/ratelimit"
	"github.com/sendrec/resources/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(cfg *appConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resources page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	return cmd
}

func runServer(ctx context.Context, cfg appConfig) error {
	loaded, err := loadCatalogWithTimeout(cfg)
	if err != nil {
		return err
	}
	defer loaded.close()
	log.Printf("catalog ready (source: %s, entries: %d)", cfg.CatalogSource, loaded.catalog.Len())

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := ratelimit.NewLimiter(cfg.APIRate, cfg.APIBurst)
	limiter.StartSweeper(ctx, 5*time.Minute)

	srv := server.New(server.Config{
		Catalog:      loaded.catalog,
		Pinger:       loaded.pinger,
		BaseURL:      cfg.BaseURL,
		FrameSources: cfg.FrameSources,
		APILimiter:   limiter,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("resources listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Println("shutdown complete")
	return nil
}
