package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"museum-shop/internal/catalog"
	"museum-shop/internal/config"
	"museum-shop/internal/handler"
	"museum-shop/internal/listing"
	"museum-shop/internal/museum"
	"museum-shop/internal/order"
	"museum-shop/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting museum-shop API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize listing loader with S3 and local fallback
	fileLoader := listing.NewFileLoader(logger)
	var listingLoader listing.Loader

	featuredRef := cfg.Listing.FeaturedFile
	merchandiseRef := cfg.Listing.MerchandiseFile

	if cfg.Listing.S3.Enabled {
		s3Loader, err := listing.NewS3Loader(ctx, cfg.Listing.S3.Bucket, cfg.Listing.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			listingLoader = fileLoader
		} else {
			listingLoader = s3Loader
			featuredRef = cfg.Listing.S3.FeaturedKey
			merchandiseRef = cfg.Listing.S3.MerchandiseKey
		}
	} else {
		listingLoader = fileLoader
		logger.Info().Msg("using local file system for listing files (S3 disabled)")
	}

	// Resolve the two object-ID lists, independently configured
	featured := listing.Resolve(ctx, listingLoader, featuredRef, listing.DefaultFeatured(), logger)
	merchandise := listing.Resolve(ctx, listingLoader, merchandiseRef, listing.DefaultMerchandise(), logger)

	// Initialize the collection source client
	museumClient := museum.NewClient(
		cfg.Museum.BaseURL,
		time.Duration(cfg.Museum.FetchTimeout)*time.Second,
		logger,
	)

	// Initialize services
	catalogService := catalog.NewService(museumClient, featured, merchandise, logger)
	orderStore := order.NewMemoryStore()
	orderService := order.NewService(orderStore, logger)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(catalogHandler, orderHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
