package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/garnizeh/scout/pkg/ollama"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	RedisURL      string        `yaml:"redis_url"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	Neo4j         Neo4jConfig   `yaml:"neo4j"`
	Engine        EngineConfig  `yaml:"engine"`
	Ollama        ollama.Config `yaml:"ollama"`
}

type EngineConfig struct {
	Model string `yaml:"model"`
	// StrictValidation rejects model output that fails the roadmap schema
	// instead of passing loosely structured documents through.
	StrictValidation bool `yaml:"strict_validation"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// LoadConfig builds the configuration from defaults and environment
// variables, then overlays the optional YAML file at path. Backend selection
// (redis vs in-memory cache, neo4j vs canned graph) happens once in main from
// these values; empty connection settings select the in-process variants.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("SCOUT_ADDR", ":8080"),
		JWTSecret:     getEnv("SCOUT_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("SCOUT_DATABASE_PATH", "scout.db"),
		TokenDuration: 1 * time.Hour,
		RedisURL:      getEnv("SCOUT_REDIS_URL", ""),
		CacheTTL:      1 * time.Hour,
		Neo4j: Neo4jConfig{
			URI:      getEnv("SCOUT_NEO4J_URI", ""),
			User:     getEnv("SCOUT_NEO4J_USER", "neo4j"),
			Password: getEnv("SCOUT_NEO4J_PASSWORD", ""),
			Database: getEnv("SCOUT_NEO4J_DATABASE", ""),
		},
		Engine: EngineConfig{
			Model: getEnv("SCOUT_MODEL", "llama3"),
		},
		Ollama: ollama.Config{
			BaseURL: getEnv("SCOUT_OLLAMA_URL", "http://localhost:11434"),
			Timeout: 60 * time.Second,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
