//	@title			KathaVichar API
//	@version		1.0
//	@description	Backend for the KathaVichar audio-content app: artist and song registry plus media uploads to CDN-backed object storage.
//
//	@host		localhost:3000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/kathavichar/api/internal/artist"
	"github.com/kathavichar/api/internal/config"
	"github.com/kathavichar/api/internal/db"
	appMiddleware "github.com/kathavichar/api/internal/middleware"
	"github.com/kathavichar/api/internal/song"
	"github.com/kathavichar/api/internal/storage"
	"github.com/kathavichar/api/internal/upload"
	"github.com/kathavichar/api/internal/version"

	_ "github.com/kathavichar/api/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewSpacesStorage(
		cfg.SpacesEndpoint,
		cfg.SpacesAccessKey,
		cfg.SpacesSecretKey,
		cfg.SpacesRegion,
		cfg.CDNDomain,
		cfg.SpacesUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Provision buckets before accepting any request; the server must not
	// come up partially ready.
	buckets := storage.NewBucketSet(cfg.BucketPrefix)
	provisionCtx, cancelProvision := context.WithTimeout(context.Background(), 60*time.Second)
	if err := store.EnsureBuckets(provisionCtx, buckets.Names()...); err != nil {
		log.Fatalf("bucket provisioning failed: %v", err)
	}
	cancelProvision()

	// Wire dependencies: repository → service → handler
	artistRepo := artist.NewRepository(pool)
	artistSvc := artist.NewService(artistRepo)
	artistHandler := artist.NewHandler(artistSvc)

	songRepo := song.NewRepository(pool)
	songSvc := song.NewService(songRepo, artistSvc)
	songHandler := song.NewHandler(songSvc)

	versionRepo := version.NewRepository(pool)
	versionSvc := version.NewService(versionRepo)
	versionHandler := version.NewHandler(versionSvc)

	uploadSvc := upload.NewService(store, buckets, upload.Options{
		AudioExtensions: cfg.AudioExtensions,
		SanitizeArtist:  cfg.SanitizeArtist,
		OnProbeError:    upload.AssumeAbsent,
	})
	uploadHandler := upload.NewHandler(uploadSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:3000/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/upload", uploadHandler.Upload)
	r.Post("/add-artist", artistHandler.Add)
	r.Get("/artists", artistHandler.List)
	r.Get("/artist-image/{artistName}", artistHandler.Image)
	r.Post("/add-song", songHandler.Add)
	r.Get("/songs/{artistId}", songHandler.ListByArtist)
	r.Get("/app-version", versionHandler.Check)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
