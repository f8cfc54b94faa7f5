package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"podwave/api"
	"podwave/config"
	"podwave/handlers"
	"podwave/services/catalog"
	"podwave/services/detail"
	"podwave/services/genres"
	"podwave/utils"
)

func main() {
	configPath := flag.String("config", "podwave.toml", "path to TOML config file")
	flag.Parse()

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, *configPath)
	if err != nil {
		log.Fatalf("[main] load config: %v", err)
	}

	setupLogging(cfg.Log)
	log.Printf("[main] starting podwave (catalog=%s listen=%s)", cfg.CatalogBaseURL, cfg.ListenAddr)

	client := catalog.NewClient(cfg.CatalogBaseURL, nil)
	directory := catalog.NewService(client)

	// Load the genre reference and warm the directory in parallel. A
	// failed warm is not fatal: the directory stays empty and the refresh
	// endpoint can recover it once the catalog API is reachable again.
	var (
		genresSvc *genres.Service
		genresErr error
		wg        conc.WaitGroup
	)
	wg.Go(func() {
		genresSvc, genresErr = loadGenres(fs, cfg.GenresFile)
	})
	wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := directory.Refresh(ctx); err != nil {
			log.Printf("[main] catalog warm failed: %v", err)
		}
	})
	wg.Wait()
	if genresErr != nil {
		log.Fatalf("[main] load genres: %v", genresErr)
	}

	resolver := detail.NewResolver(client, genresSvc)

	router := utils.NewRouter()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.AccessLogMiddleware())

	showsHandler := handlers.NewShowsHandler(directory, resolver)
	genresHandler := handlers.NewGenresHandler(genresSvc)
	refreshLimiter := api.NewIPRateLimiter(rate.Every(15*time.Second), 4)

	router.HandleFunc("/api/shows", showsHandler.ListShows).Methods(http.MethodGet)
	router.Handle("/api/shows/refresh",
		api.RateLimitHandler(refreshLimiter, http.HandlerFunc(showsHandler.RefreshShows))).Methods(http.MethodPost)
	router.HandleFunc("/api/shows/{id}", showsHandler.GetShow).Methods(http.MethodGet)
	router.HandleFunc("/api/genres", genresHandler.ListGenres).Methods(http.MethodGet)
	router.HandleFunc("/api/version", handlers.NewVersionHandler().GetVersion).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(handlers.NewStaticHandler())

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()
	log.Printf("[main] listening on %s", cfg.ListenAddr)

	<-ctx.Done()
	log.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}

// setupLogging sends logs to stdout and, when configured, a rotating file.
func setupLogging(cfg config.LogConfig) {
	if cfg.File == "" {
		return
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
}

// loadGenres uses the configured reference file when set, the embedded
// list otherwise.
func loadGenres(fs afero.Fs, path string) (*genres.Service, error) {
	if path == "" {
		return genres.NewService(), nil
	}
	return genres.NewServiceFromFile(fs, path)
}
