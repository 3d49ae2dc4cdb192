package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sendrec/resources/internal/catalog"
	"github.com/sendrec/resources/internal/database"
	"github.com/sendrec/resources/internal/server"
	"github.com/sendrec/resources/internal/storage"
)

const (
	sourceStatic   = "static"
	sourceFile     = "file"
	sourceS3       = "s3"
	sourcePostgres = "postgres"
	sourceSQLite   = "sqlite"
)

type appConfig struct {
	Port          string
	BaseURL       string
	CatalogSource string
	CatalogPath   string
	CatalogKey    string
	DatabaseURL   string
	S3            storage.Config
	FrameSources  []string
	APIRate       float64
	APIBurst      int
}

func configFromEnv() appConfig {
	return appConfig{
		Port:          getEnv("PORT", "8080"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		CatalogSource: getEnv("CATALOG_SOURCE", sourceStatic),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		CatalogKey:    getEnv("CATALOG_KEY", "catalog.toml"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		S3: storage.Config{
			Endpoint:       os.Getenv("S3_ENDPOINT"),
			Bucket:         getEnv("S3_BUCKET", "resources"),
			AccessKey:      os.Getenv("S3_ACCESS_KEY"),
			SecretKey:      os.Getenv("S3_SECRET_KEY"),
			Region:         getEnv("S3_REGION", "eu-central-1"),
			MaxObjectBytes: getEnvInt64("CATALOG_MAX_BYTES", 4*1024*1024),
		},
		FrameSources: strings.Fields(os.Getenv("FRAME_SOURCES")),
		APIRate:      getEnvFloat("API_RATE_LIMIT", 5),
		APIBurst:     int(getEnvInt64("API_RATE_BURST", 20)),
	}
}

// loadedCatalog is the catalog plus whatever backing connection must stay open
// for health checks while the server runs.
type loadedCatalog struct {
	catalog *catalog.Catalog
	pinger  server.Pinger
	close   func()
}

func openCatalog(ctx context.Context, cfg appConfig) (*loadedCatalog, error) {
	loaded := &loadedCatalog{close: func() {}}

	var provider catalog.Provider
	switch cfg.CatalogSource {
	case "", sourceStatic:
		provider = catalog.NewStaticProvider(catalog.SampleEntries())
	case sourceFile:
		if cfg.CatalogPath == "" {
			return nil, fmt.Errorf("CATALOG_PATH is required for the %s source", sourceFile)
		}
		provider = &catalog.FileProvider{Path: cfg.CatalogPath}
	case sourceSQLite:
		if cfg.CatalogPath == "" {
			return nil, fmt.Errorf("CATALOG_PATH is required for the %s source", sourceSQLite)
		}
		provider = &catalog.SQLiteProvider{Path: cfg.CatalogPath}
	case sourceS3:
		store, err := storage.New(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("storage initialization failed: %w", err)
		}
		provider = &catalog.ObjectProvider{Store: store, Key: cfg.CatalogKey}
	case sourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s source", sourcePostgres)
		}
		db, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		log.Println("database migrations applied")
		provider = &catalog.PostgresProvider{DB: db.Pool}
		loaded.pinger = db
		loaded.close = db.Close
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	c, err := catalog.Load(ctx, provider)
	if err != nil {
		loaded.close()
		return nil, err
	}
	loaded.catalog = c
	return loaded, nil
}

func loadCatalogWithTimeout(cfg appConfig) (*loadedCatalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return openCatalog(ctx, cfg)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
