package api

import (
	"github.com/gorilla/mux"

	"github.com/garnizeh/scout/internal/config"
	"github.com/garnizeh/scout/internal/graph"
	"github.com/garnizeh/scout/internal/roadmap"
	"github.com/garnizeh/scout/pkg/repository"
)

// SetupRoutes wires handlers to paths. All collaborators are constructed by
// the caller and injected here; nothing is instantiated behind the scenes.
func SetupRoutes(cfg *config.Config, version, buildTime string, svc *roadmap.Service, users repository.UserRepo, skills graph.SkillGraph) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(users, cfg.JWTSecret, cfg.TokenDuration)
	roadmapsHandler := NewRoadmapsHandler(svc)
	skillsHandler := NewSkillsHandler(skills)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/login", authHandler.Login).Methods("POST")

	// API v1: identity is optional everywhere; an invalid token degrades the
	// caller to anonymous instead of blocking the request.
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(IdentityMiddlewareWithSecret(cfg.JWTSecret))

	apiV1.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Roadmap endpoints
	apiV1.HandleFunc("/roadmaps/generate", roadmapsHandler.Generate).Methods("POST")
	apiV1.HandleFunc("/roadmaps/user/{username}", roadmapsHandler.ListForUser).Methods("GET")
	apiV1.HandleFunc("/roadmaps/{id}", roadmapsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/roadmaps/{id}", roadmapsHandler.Update).Methods("PUT")

	// Skill graph endpoints
	apiV1.HandleFunc("/skills/path", skillsHandler.Path).Methods("GET")
	apiV1.HandleFunc("/skills/search", skillsHandler.Search).Methods("GET")
	apiV1.HandleFunc("/skills/{name}/related", skillsHandler.Related).Methods("GET")
	apiV1.HandleFunc("/skills/{name}/prerequisites", skillsHandler.Prerequisites).Methods("GET")

	return r
}
