package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lai_landing_go/config"
	"lai_landing_go/handlers"
	"lai_landing_go/middleware"
	"lai_landing_go/services"
	"lai_landing_go/services/i18n"
	"lai_landing_go/services/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Load translations
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	i18n.SetDefault(cfg.DefaultLocale)

	// Cache-busting versions for static assets
	middleware.InitAssetVersions("static")

	// View state lives only in the visitor's cookie
	services.InitViewStateStore(cfg.SessionSecret, cfg.IsProduction())

	var opts handlers.ServerOptions
	if cfg.MetricsEnabled {
		metrics.Init(prometheus.DefaultRegisterer)
		opts.Gatherer = prometheus.DefaultGatherer
		log.Println("[INFO] Metrics enabled at /metrics")
	}

	e := handlers.NewServer(cfg, opts)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down server")
	middleware.InteractionRateLimiter.Stop()
	middleware.LoginRateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
