package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garnizeh/scout/api"
	"github.com/garnizeh/scout/internal/cache"
	"github.com/garnizeh/scout/internal/config"
	"github.com/garnizeh/scout/internal/db"
	"github.com/garnizeh/scout/internal/graph"
	"github.com/garnizeh/scout/internal/repository/sqlite"
	"github.com/garnizeh/scout/internal/roadmap"
	"github.com/garnizeh/scout/internal/scout"
	"github.com/garnizeh/scout/pkg/ollama"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)
	ollama.SetLogger(logger)

	log.Printf("Starting Scout server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Durable store
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Bootstrap(ctx, database); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}
	repo := sqlite.New(database, logger)

	// Cache: redis when configured, otherwise in-process
	var store cache.Cache
	var redisCache *cache.Redis
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		store = redisCache
		logger.Info("cache backend: redis")
	} else {
		store = cache.NewMemory()
		logger.Info("cache backend: in-memory")
	}

	// Skill graph: neo4j when configured, otherwise canned demo data
	var skills graph.SkillGraph
	var neo *graph.Neo4j
	if cfg.Neo4j.URI != "" {
		neo, err = graph.NewNeo4j(ctx, cfg.Neo4j)
		if err != nil {
			log.Fatalf("Failed to connect to neo4j: %v", err)
		}
		skills = neo
		logger.Info("skill graph backend: neo4j")
	} else {
		skills = graph.NewCanned()
		logger.Info("skill graph backend: canned")
	}

	// Generation engine
	llm, err := ollama.NewDefaultClient(cfg.Ollama)
	if err != nil {
		log.Fatalf("Failed to create ollama client: %v", err)
	}
	engine, err := scout.NewEngine(llm, cfg.Engine, logger)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	svc := roadmap.NewService(engine, repo, store, cfg.CacheTTL, logger)

	handler := api.SetupRoutes(cfg, version, buildTime, svc, repo, skills)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	sctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(sctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := llm.Close(); err != nil {
		log.Printf("Error closing ollama client: %v", err)
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			log.Printf("Error closing redis: %v", err)
		}
	}
	if neo != nil {
		if err := neo.Close(ctx); err != nil {
			log.Printf("Error closing neo4j: %v", err)
		}
	}
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
